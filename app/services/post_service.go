package services

import (
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// PostUpdate carries a partial update; nil fields are left unchanged.
// Only title and body are editable after creation.
type PostUpdate struct {
	Title *string
	Body  *string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a new post authored by the given user. The repository
// resolves the author reference atomically with the insert.
func (s *PostService) CreatePost(authorID int, title, body string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		AuthorID: authorID,
		Body:     body,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.attachAuthor(post)
}

// GetPost retrieves a post by ID with its author attached
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.attachAuthor(post)
}

// ListPosts retrieves all posts ordered by creation time ascending
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if _, err := s.attachAuthor(post); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// UpdatePost applies a partial update to a post's title and body. Author and
// creation time are immutable. Only the author or a staff user may edit.
func (s *PostService) UpdatePost(id int, caller *models.User, update PostUpdate) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := authorize(caller, post); err != nil {
		return nil, err
	}

	// Work on a copy so a failed validation leaves the record untouched.
	updated := *post
	if update.Title != nil {
		updated.Title = *update.Title
	}
	if update.Body != nil {
		updated.Body = *update.Body
	}

	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.postRepo.Update(&updated); err != nil {
		return nil, err
	}

	return s.attachAuthor(&updated)
}

// DeletePost deletes a post. Only the author or a staff user may delete.
func (s *PostService) DeletePost(id int, caller *models.User) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := authorize(caller, post); err != nil {
		return err
	}

	return s.postRepo.Delete(id)
}

// authorize checks that the caller owns the post or has staff privilege.
func authorize(caller *models.User, post *models.Post) error {
	if caller == nil {
		return fmt.Errorf("%w: no caller identity", ErrForbidden)
	}
	if caller.ID != post.AuthorID && !caller.IsStaff {
		return fmt.Errorf("%w: post %d belongs to another user", ErrForbidden, post.ID)
	}
	return nil
}

// attachAuthor loads the referenced author onto the post. A dangling
// reference is tolerated here; the cascade on user deletion keeps it from
// happening in practice.
func (s *PostService) attachAuthor(post *models.Post) (*models.Post, error) {
	author, err := s.userRepo.GetByID(post.AuthorID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load author for post %d: %v", post.ID, err)
	}
	post.Author = author
	return post, nil
}
