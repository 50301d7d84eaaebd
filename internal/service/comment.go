package service

import (
	"net/http"
	"strings"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

type CommentService interface {
	Create(author domain.User, text string, postId int64) (domain.Comment, error)
	ForPost(postId int64) ([]domain.Comment, error)
}

type CommentStorage interface {
	CreateComment(authorName, text string, userId, postId int64) (domain.Comment, error)
	CommentsForPost(postId int64) ([]domain.Comment, error)
}

type Comments struct {
	storage CommentStorage
	maxLen  int
}

func NewComments(storage CommentStorage, maxLen int) *Comments {
	return &Comments{storage: storage, maxLen: maxLen}
}

// Create attributes the comment with the author's display name as it is
// right now; the stored copy is what gets rendered from then on.
func (c *Comments) Create(author domain.User, text string, postId int64) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, &internal_errors.ErrorWithStatusCode{Message: "Comment must not be empty", StatusCode: http.StatusBadRequest}
	}
	if len(text) > c.maxLen {
		return domain.Comment{}, &internal_errors.ErrorWithStatusCode{Message: "Comment is too long", StatusCode: http.StatusBadRequest}
	}
	return c.storage.CreateComment(author.Name, text, author.Id, postId)
}

func (c *Comments) ForPost(postId int64) ([]domain.Comment, error) {
	return c.storage.CommentsForPost(postId)
}
