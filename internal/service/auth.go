// Package service holds the blog's application logic between the HTTP
// handlers and the storage layer. Storage dependencies are declared here,
// consumer-side, so tests can swap in mocks.
package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/session"
)

// Login failures are distinguished so the handlers can show the matching
// flash message. Neither is surfaced as an HTTP error status.
var (
	ErrEmailNotFound   = errors.New("email not registered")
	ErrWrongPassword   = errors.New("wrong password")
	ErrEmailRegistered = errors.New("email already registered")
)

type AuthService interface {
	Register(email, password, name string) (domain.User, string, error)
	Login(email, password string) (domain.User, string, error)
}

type AuthStorage interface {
	CreateUser(email, passHash, name string) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
}

type Auth struct {
	storage  AuthStorage
	sessions session.Manager
}

func NewAuth(storage AuthStorage, sessions session.Manager) *Auth {
	return &Auth{storage: storage, sessions: sessions}
}

// Register creates the account and immediately logs it in, returning the new
// user and a session token. A duplicate email comes back as
// ErrEmailRegistered; the database constraint is the only duplicate check,
// so two concurrent registrations cannot both succeed.
func (a *Auth) Register(email, password, name string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user, err := a.storage.CreateUser(email, string(passHash), name)
	if err != nil {
		if internal_errors.IsConflict(err) {
			return domain.User{}, "", ErrEmailRegistered
		}
		return domain.User{}, "", err
	}

	token, err := a.sessions.NewToken(user.Id)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh session
// token. bcrypt comparison failures of any kind read as a wrong password,
// never as an internal error.
func (a *Auth) Login(email, password string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.User{}, "", ErrEmailNotFound
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return domain.User{}, "", ErrWrongPassword
	}

	token, err := a.sessions.NewToken(user.Id)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}
