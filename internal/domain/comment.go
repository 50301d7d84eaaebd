package domain

import "time"

// Comment keeps the author's display name as it was at submission time.
// It is never re-derived from the users table, so renaming or deleting the
// account does not rewrite old comments.
type Comment struct {
	Id         int64
	AuthorName string
	Text       string
	// UserId is nil when the commenting account has been removed.
	UserId *int64
	// AuthorEmail is joined from users at read time for avatar display.
	// Empty when the account is gone. Never rendered directly.
	AuthorEmail string
	PostId      int64
	CreatedAt   time.Time
}
