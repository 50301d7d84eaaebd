// Package router wires handlers and middleware into the http mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quillpad-dev/quillpad/internal/handler"
	"github.com/quillpad-dev/quillpad/internal/middleware"
	"github.com/quillpad-dev/quillpad/internal/middleware/metrics"
)

func New(h *handler.Handler, auth *middleware.Auth, secure bool, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_middleware.RequestID)
	r.Use(chi_middleware.RealIP)
	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(secure))
	r.Use(auth.Resolve)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", h.Index)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)

	r.Get("/register", h.RegisterGet)
	r.Post("/register", h.RegisterPost)
	r.Get("/login", h.LoginGet)
	r.Post("/login", h.LoginPost)
	r.Get("/logout", h.Logout)

	r.Get("/post/{id}", h.ShowPost)
	r.Post("/post/{id}", h.CreateComment)

	// Post management is admin only.
	r.Group(func(r chi.Router) {
		r.Use(auth.AdminOnly(http.HandlerFunc(h.Forbidden)))
		r.Get("/new-post", h.NewPostGet)
		r.Post("/new-post", h.NewPostPost)
		r.Get("/edit-post/{id}", h.EditPostGet)
		r.Post("/edit-post/{id}", h.EditPostPost)
		r.Get("/delete/{id}", h.DeletePost)
	})

	return r
}
