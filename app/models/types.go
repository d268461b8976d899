package models

import "time"

// User represents a registered account. It extends the usual credential
// pair with an optional display name and the account/privilege flags.
type User struct {
	ID       int    `json:"id" validate:"gte=0"`
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=150"`
	// PasswordHash is the bcrypt hash; plaintext is never stored. The
	// hash stays out of API responses because handlers serialize public
	// view structs, never this type.
	PasswordHash string `json:"password_hash" validate:"required"`
	IsActive     bool   `json:"is_active"`
	IsStaff      bool   `json:"is_staff"`
}

// Post represents a blog post written by exactly one author.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required,max=200"`
	AuthorID  int       `json:"author_id" validate:"required,gte=1"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	Author    *User     `json:"-" validate:"-"`
}
