package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

func TestCreatePost(t *testing.T) {
	resetTables(t)
	author := mustCreateUser(t, "admin@example.com", "Admin")

	t.Run("success", func(t *testing.T) {
		post, err := storage.CreatePost(domain.PostDraft{
			Title:    "Hello World",
			Subtitle: "First post",
			Body:     "Some text.",
			ImgUrl:   "https://example.com/cover.jpg",
		}, author.Id)
		require.NoError(t, err)

		assert.Greater(t, post.Id, int64(0))
		assert.Equal(t, "Hello World", post.Title)
		require.NotNil(t, post.AuthorId)
		assert.Equal(t, author.Id, *post.AuthorId)
		assert.WithinDuration(t, time.Now(), post.CreatedAt, 5*time.Second)
	})

	t.Run("duplicate title is a conflict", func(t *testing.T) {
		_, err := storage.CreatePost(domain.PostDraft{
			Title:    "Hello World",
			Subtitle: "Other sub",
			Body:     "Other text.",
			ImgUrl:   "https://example.com/other.jpg",
		}, author.Id)
		require.Error(t, err)
		assert.True(t, internal_errors.IsConflict(err))
	})
}

func TestPosts(t *testing.T) {
	resetTables(t)
	author := mustCreateUser(t, "admin@example.com", "Admin")

	t.Run("empty table lists nothing", func(t *testing.T) {
		posts, err := storage.Posts()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("lists in creation order", func(t *testing.T) {
		mustCreatePost(t, "First", author.Id)
		mustCreatePost(t, "Second", author.Id)
		mustCreatePost(t, "Third", author.Id)

		posts, err := storage.Posts()
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "First", posts[0].Title)
		assert.Equal(t, "Second", posts[1].Title)
		assert.Equal(t, "Third", posts[2].Title)
	})
}

func TestUpdatePost(t *testing.T) {
	resetTables(t)
	author := mustCreateUser(t, "admin@example.com", "Admin")
	post := mustCreatePost(t, "Original", author.Id)
	mustCreatePost(t, "Occupied", author.Id)

	t.Run("success keeps author and creation time", func(t *testing.T) {
		updated, err := storage.UpdatePost(post.Id, domain.PostDraft{
			Title:    "Renamed",
			Subtitle: "New sub",
			Body:     "New body.",
			ImgUrl:   "https://example.com/new.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, post.CreatedAt, updated.CreatedAt)
		require.NotNil(t, updated.AuthorId)
		assert.Equal(t, author.Id, *updated.AuthorId)
	})

	t.Run("renaming onto an existing title is a conflict", func(t *testing.T) {
		_, err := storage.UpdatePost(post.Id, domain.PostDraft{
			Title:    "Occupied",
			Subtitle: "sub",
			Body:     "body",
			ImgUrl:   "https://example.com/img.png",
		})
		require.Error(t, err)
		assert.True(t, internal_errors.IsConflict(err))
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, err := storage.UpdatePost(99999, domain.PostDraft{
			Title:    "Ghost",
			Subtitle: "sub",
			Body:     "body",
			ImgUrl:   "https://example.com/img.png",
		})
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestDeletePost(t *testing.T) {
	resetTables(t)
	author := mustCreateUser(t, "admin@example.com", "Admin")

	t.Run("delete removes the post and its comments", func(t *testing.T) {
		post := mustCreatePost(t, "Doomed", author.Id)
		_, err := storage.CreateComment("Ann", "soon gone", author.Id, post.Id)
		require.NoError(t, err)

		require.NoError(t, storage.DeletePost(post.Id))

		_, err = storage.Post(post.Id)
		assert.True(t, internal_errors.IsNotFound(err))

		comments, err := storage.CommentsForPost(post.Id)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		err := storage.DeletePost(99999)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestDeletedAuthorKeepsPosts(t *testing.T) {
	resetTables(t)
	author := mustCreateUser(t, "admin@example.com", "Admin")
	post := mustCreatePost(t, "Orphaned", author.Id)

	// There is no delete-user endpoint, but the schema must keep content when
	// an account row disappears.
	_, err := storage.db.Exec("DELETE FROM users WHERE id = $1", author.Id)
	require.NoError(t, err)

	survivor, err := storage.Post(post.Id)
	require.NoError(t, err)
	assert.Equal(t, "Orphaned", survivor.Title)
	assert.Nil(t, survivor.AuthorId)
}
