package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// SetAuthor sets the author and updates the AuthorID
func (p *Post) SetAuthor(user *User) error {
	if user == nil {
		return errors.New("author cannot be nil")
	}

	p.Author = user
	p.AuthorID = user.ID
	return nil
}

// String returns the post title (used for display/debugging).
func (p *Post) String() string {
	return p.Title
}
