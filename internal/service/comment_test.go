package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpad-dev/quillpad/internal/domain"
)

type MockCommentStorage struct {
	MockCreateComment   func(authorName, text string, userId, postId int64) (domain.Comment, error)
	MockCommentsForPost func(postId int64) ([]domain.Comment, error)
}

func (m *MockCommentStorage) CreateComment(authorName, text string, userId, postId int64) (domain.Comment, error) {
	if m.MockCreateComment != nil {
		return m.MockCreateComment(authorName, text, userId, postId)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentStorage) CommentsForPost(postId int64) ([]domain.Comment, error) {
	if m.MockCommentsForPost != nil {
		return m.MockCommentsForPost(postId)
	}
	return nil, nil
}

func TestCommentCreate(t *testing.T) {
	author := domain.User{Id: 5, Name: "Ann", Email: "ann@example.com"}

	t.Run("captures the author name at submission time", func(t *testing.T) {
		var gotName string
		var gotUserId int64
		storage := &MockCommentStorage{
			MockCreateComment: func(authorName, text string, userId, postId int64) (domain.Comment, error) {
				gotName, gotUserId = authorName, userId
				return domain.Comment{Id: 1, AuthorName: authorName, Text: text, PostId: postId}, nil
			},
		}
		comments := NewComments(storage, 1000)

		comment, err := comments.Create(author, "nice post", 3)
		require.NoError(t, err)
		assert.Equal(t, "Ann", gotName)
		assert.Equal(t, int64(5), gotUserId)
		assert.Equal(t, "nice post", comment.Text)
	})

	t.Run("rejects empty and whitespace-only text", func(t *testing.T) {
		comments := NewComments(&MockCommentStorage{}, 1000)

		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := comments.Create(author, text, 3)
			assert.Error(t, err)
		}
	})

	t.Run("rejects text over the limit", func(t *testing.T) {
		comments := NewComments(&MockCommentStorage{}, 10)

		_, err := comments.Create(author, strings.Repeat("a", 11), 3)
		assert.Error(t, err)

		_, err = comments.Create(author, strings.Repeat("a", 10), 3)
		assert.NoError(t, err)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		var gotText string
		storage := &MockCommentStorage{
			MockCreateComment: func(authorName, text string, userId, postId int64) (domain.Comment, error) {
				gotText = text
				return domain.Comment{}, nil
			},
		}
		comments := NewComments(storage, 1000)

		_, err := comments.Create(author, "  tidy  ", 3)
		require.NoError(t, err)
		assert.Equal(t, "tidy", gotText)
	})
}
