package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

const postColumns = "id, title, subtitle, body, img_url, author_id, created_at"

func scanPost(row interface{ Scan(...interface{}) error }) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := row.Scan(&post.Id, &post.Title, &post.Subtitle, &post.Body, &post.ImgUrl, &post.AuthorId, &post.CreatedAt)
	return post, err
}

// Posts returns every post in creation (id) order.
func (s *Storage) Posts() ([]domain.BlogPost, error) {
	rows, err := s.db.Query("SELECT " + postColumns + " FROM blog_posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (s *Storage) Post(id int64) (domain.BlogPost, error) {
	post, err := scanPost(s.db.QueryRow("SELECT "+postColumns+" FROM blog_posts WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BlogPost{}, notFound("Post")
		}
		return domain.BlogPost{}, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

func (s *Storage) CreatePost(draft domain.PostDraft, authorId int64) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		var err error
		post, err = scanPost(tx.QueryRow(`
		INSERT INTO blog_posts(title, subtitle, body, img_url, author_id)
		VALUES($1, $2, $3, $4, $5)
		RETURNING `+postColumns,
			draft.Title, draft.Subtitle, draft.Body, draft.ImgUrl, authorId,
		))
		return err
	})
	if err != nil {
		if isUniqueViolation(err, "blog_posts_title_key") {
			return domain.BlogPost{}, internal_errors.Conflict("A post with this title already exists")
		}
		return domain.BlogPost{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

func (s *Storage) UpdatePost(id int64, draft domain.PostDraft) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		var err error
		post, err = scanPost(tx.QueryRow(`
		UPDATE blog_posts
		SET title = $1, subtitle = $2, body = $3, img_url = $4
		WHERE id = $5
		RETURNING `+postColumns,
			draft.Title, draft.Subtitle, draft.Body, draft.ImgUrl, id,
		))
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Post")
		}
		return err
	})
	if err != nil {
		if isUniqueViolation(err, "blog_posts_title_key") {
			return domain.BlogPost{}, internal_errors.Conflict("A post with this title already exists")
		}
		if internal_errors.IsNotFound(err) {
			return domain.BlogPost{}, err
		}
		return domain.BlogPost{}, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *Storage) DeletePost(id int64) error {
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM blog_posts WHERE id = $1", id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for post deletion: %w", err)
		}
		if deleted == 0 {
			return notFound("Post")
		}
		return nil
	})
	if err != nil && !internal_errors.IsNotFound(err) {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return err
}
