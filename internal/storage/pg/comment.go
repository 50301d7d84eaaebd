package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quillpad-dev/quillpad/internal/domain"
)

// CreateComment stores a comment with the author's display name captured at
// submission time. A violation of the post foreign key means the post was
// deleted between the page load and the submit, which reads as NotFound.
func (s *Storage) CreateComment(authorName, text string, userId, postId int64) (domain.Comment, error) {
	var comment domain.Comment
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(`
		INSERT INTO comments(author_name, text, user_id, post_id)
		VALUES($1, $2, $3, $4)
		RETURNING id, author_name, text, user_id, post_id, created_at`,
			authorName, text, userId, postId,
		).Scan(&comment.Id, &comment.AuthorName, &comment.Text, &comment.UserId, &comment.PostId, &comment.CreatedAt)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Comment{}, notFound("Post")
		}
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return comment, nil
}

// CommentsForPost returns a post's comments in creation (id) order.
func (s *Storage) CommentsForPost(postId int64) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
	SELECT c.id, c.author_name, c.text, c.user_id, COALESCE(u.email, ''), c.post_id, c.created_at
	FROM comments c
	LEFT JOIN users u ON u.id = c.user_id
	WHERE c.post_id = $1
	ORDER BY c.id`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.Id, &comment.AuthorName, &comment.Text, &comment.UserId, &comment.AuthorEmail, &comment.PostId, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}
