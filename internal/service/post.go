package service

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

type PostService interface {
	All() ([]domain.BlogPost, error)
	Get(id int64) (domain.BlogPost, error)
	Create(draft domain.PostDraft, author domain.User) (domain.BlogPost, error)
	Update(id int64, draft domain.PostDraft) (domain.BlogPost, error)
	Delete(id int64) error
}

type PostStorage interface {
	Posts() ([]domain.BlogPost, error)
	Post(id int64) (domain.BlogPost, error)
	CreatePost(draft domain.PostDraft, authorId int64) (domain.BlogPost, error)
	UpdatePost(id int64, draft domain.PostDraft) (domain.BlogPost, error)
	DeletePost(id int64) error
}

type Posts struct {
	storage PostStorage
}

func NewPosts(storage PostStorage) *Posts {
	return &Posts{storage: storage}
}

func (p *Posts) All() ([]domain.BlogPost, error) {
	return p.storage.Posts()
}

func (p *Posts) Get(id int64) (domain.BlogPost, error) {
	return p.storage.Post(id)
}

func (p *Posts) Create(draft domain.PostDraft, author domain.User) (domain.BlogPost, error) {
	if err := validateDraft(&draft); err != nil {
		return domain.BlogPost{}, err
	}
	return p.storage.CreatePost(draft, author.Id)
}

func (p *Posts) Update(id int64, draft domain.PostDraft) (domain.BlogPost, error) {
	if err := validateDraft(&draft); err != nil {
		return domain.BlogPost{}, err
	}
	return p.storage.UpdatePost(id, draft)
}

func (p *Posts) Delete(id int64) error {
	return p.storage.DeletePost(id)
}

// validateDraft normalizes and checks the editable fields. Field-level form
// validation happens in the handlers; this is the service-level backstop so
// no write path can slip an empty title or a bogus image URL into storage.
func validateDraft(draft *domain.PostDraft) error {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Subtitle = strings.TrimSpace(draft.Subtitle)
	draft.ImgUrl = strings.TrimSpace(draft.ImgUrl)

	if draft.Title == "" {
		return &internal_errors.ErrorWithStatusCode{Message: "Title must not be empty", StatusCode: http.StatusBadRequest}
	}
	if draft.Body == "" {
		return &internal_errors.ErrorWithStatusCode{Message: "Body must not be empty", StatusCode: http.StatusBadRequest}
	}
	if u, err := url.Parse(draft.ImgUrl); err != nil || u.Scheme == "" || u.Host == "" {
		return &internal_errors.ErrorWithStatusCode{Message: "Image URL must be a valid absolute URL", StatusCode: http.StatusBadRequest}
	}
	return nil
}
