package controllers

import (
	"time"

	"inkwell/app/models"
)

// UserView is the public serialization of a user: id and username only.
// Email, display name, password material, and account flags are never
// exposed through this shape.
type UserView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PostView is the public serialization of a post. The author is rendered as
// a nested public user view and created_at as an ISO-8601 timestamp.
type PostView struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    *UserView `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView builds the public view of a user
func NewUserView(user *models.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		ID:       user.ID,
		Username: user.Username,
	}
}

// NewUserViews builds public views for a list of users
func NewUserViews(users []*models.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}
	return views
}

// NewPostView builds the public view of a post
func NewPostView(post *models.Post) *PostView {
	return &PostView{
		ID:        post.ID,
		Title:     post.Title,
		Author:    NewUserView(post.Author),
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
	}
}

// NewPostViews builds public views for a list of posts
func NewPostViews(posts []*models.Post) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(post))
	}
	return views
}
