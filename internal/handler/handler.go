package handler

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/quillpad-dev/quillpad/internal/config"
	"github.com/quillpad-dev/quillpad/internal/markdown"
	"github.com/quillpad-dev/quillpad/internal/service"
)

type Handler struct {
	templates map[string]*template.Template
	auth      service.AuthService
	posts     service.PostService
	comments  service.CommentService
	markdown  *markdown.Renderer
	cfg       *config.Config
}

func New(templates map[string]*template.Template, auth service.AuthService, posts service.PostService, comments service.CommentService, md *markdown.Renderer, cfg *config.Config) *Handler {
	return &Handler{
		templates: templates,
		auth:      auth,
		posts:     posts,
		comments:  comments,
		markdown:  md,
		cfg:       cfg,
	}
}

// LoadTemplates parses every page template against the shared layout.
func LoadTemplates(dir string) (map[string]*template.Template, error) {
	templates := map[string]*template.Template{}
	layout := filepath.Join(dir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		templates[strings.TrimSuffix(name, ".html")] = t
	}
	return templates, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
