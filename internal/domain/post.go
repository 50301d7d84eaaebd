package domain

import "time"

type BlogPost struct {
	Id       int64
	Title    string
	Subtitle string
	Body     string
	ImgUrl   string
	// AuthorId is nil when the authoring account has been removed.
	AuthorId  *int64
	CreatedAt time.Time
}

// PostDraft holds the editable fields of a post, as submitted by the
// new-post and edit-post forms.
type PostDraft struct {
	Title    string
	Subtitle string
	Body     string
	ImgUrl   string
}
