package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

// is_admin expressions for insertUser. The NOT EXISTS check alone is racy
// under READ COMMITTED: two overlapping first inserts each see an empty
// table and both evaluate TRUE. The partial unique index users_one_admin_idx
// makes the loser's commit fail instead, and CreateUser retries it as a
// regular user.
const (
	adminIfFirst = "NOT EXISTS (SELECT 1 FROM users)"
	neverAdmin   = "FALSE"
)

// CreateUser inserts a new account. The first account ever created becomes
// the administrator; at most one admin row can exist, enforced by schema.
func (s *Storage) CreateUser(email, passHash, name string) (domain.User, error) {
	user, err := s.insertUser(email, passHash, name, adminIfFirst)
	if isUniqueViolation(err, "users_one_admin_idx") {
		user, err = s.insertUser(email, passHash, name, neverAdmin)
	}
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.User{}, internal_errors.Conflict("A user with this email already exists")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) insertUser(email, passHash, name, adminExpr string) (domain.User, error) {
	var user domain.User
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(`
		INSERT INTO users(email, name, password_hash, is_admin)
		VALUES($1, $2, $3, `+adminExpr+`)
		RETURNING id, email, name, password_hash, is_admin, created_at`,
			email, name, passHash,
		).Scan(&user.Id, &user.Email, &user.Name, &user.PassHash, &user.Admin, &user.CreatedAt)
	})
	return user, err
}

func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.user("email = $1", email)
}

func (s *Storage) UserById(id int64) (domain.User, error) {
	return s.user("id = $1", id)
}

func (s *Storage) user(where string, arg interface{}) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE "+where,
		arg,
	).Scan(&user.Id, &user.Email, &user.Name, &user.PassHash, &user.Admin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, notFound("User")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
