package handler

import "net/http"

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "about", nil)
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "contact", nil)
}

// Forbidden is served by the admin gate for non-admin requests.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.renderTemplateStatus(w, r, "403", nil, http.StatusForbidden)
}
