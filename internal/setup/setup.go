package setup

import (
	"github.com/quillpad-dev/quillpad/internal/config"
	"github.com/quillpad-dev/quillpad/internal/handler"
	"github.com/quillpad-dev/quillpad/internal/markdown"
	"github.com/quillpad-dev/quillpad/internal/middleware"
	"github.com/quillpad-dev/quillpad/internal/service"
	"github.com/quillpad-dev/quillpad/internal/session"
	"github.com/quillpad-dev/quillpad/internal/storage/pg"
)

// Dependencies holds everything the server needs, fully wired.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.New(cfg.SessionKey(), cfg.SessionTTL())

	auth := service.NewAuth(storage, sessions)
	posts := service.NewPosts(storage)
	comments := service.NewComments(storage, cfg.Public.CommentMaxLen)

	templates, err := handler.LoadTemplates(cfg.Public.TemplateDir)
	if err != nil {
		return nil, err
	}

	h := handler.New(templates, auth, posts, comments, markdown.New(), cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Auth:    middleware.NewAuth(sessions, storage),
	}, nil
}
