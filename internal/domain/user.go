package domain

import "time"

type User struct {
	Id        int64
	Email     string
	Name      string
	PassHash  string
	Admin     bool
	CreatedAt time.Time
}
