package handler

import (
	"errors"
	"net/http"

	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/service"
	"github.com/quillpad-dev/quillpad/internal/session"
	"github.com/quillpad-dev/quillpad/internal/web"
)

type registerForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (h *Handler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "register", nil)
}

func (h *Handler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}
	if err := web.ValidateStruct(form); err != nil {
		h.redirectWithFlash(w, r, "/register", err.Error())
		return
	}

	_, token, err := h.auth.Register(form.Email, form.Password, form.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailRegistered) {
			h.redirectWithFlash(w, r, "/login", "You have already signed up with that email, log in instead!")
			return
		}
		logger.Log.Error("registration failed", "error", err)
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	// Auto-login: the freshly registered user is immediately authenticated.
	http.SetCookie(w, session.Cookie(token, h.cfg.SessionTTL(), h.cfg.Public.SecureCookies))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) LoginGet(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login", nil)
}

func (h *Handler) LoginPost(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := web.ValidateStruct(form); err != nil {
		h.redirectWithFlash(w, r, "/login", err.Error())
		return
	}

	_, token, err := h.auth.Login(form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			h.redirectWithFlash(w, r, "/login", "The email doesn't exist, please try again!")
		case errors.Is(err, service.ErrWrongPassword):
			h.redirectWithFlash(w, r, "/login", "The password is not correct, please try again!")
		default:
			logger.Log.Error("login failed", "error", err)
			web.WriteErrorAndStatusCode(w, err)
		}
		return
	}

	http.SetCookie(w, session.Cookie(token, h.cfg.SessionTTL(), h.cfg.Public.SecureCookies))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session cookie unconditionally; logging out while
// anonymous is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, session.ExpiredCookie(h.cfg.Public.SecureCookies))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
