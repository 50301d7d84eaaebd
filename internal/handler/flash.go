package handler

import (
	"encoding/base64"
	"net/http"
)

// Flash messages ride in a short-lived cookie: set on redirect, read and
// cleared by the next rendered page, shown exactly once.
const flashCookie = "flash"

func (h *Handler) setFlash(w http.ResponseWriter, message string) {
	encoded := base64.StdEncoding.EncodeToString([]byte(message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, targetURL, message string) {
	h.setFlash(w, message)
	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// popFlash reads the pending flash message, if any, and clears the cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}
