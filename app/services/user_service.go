package services

import (
	"fmt"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// UserService handles business logic for user accounts
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// CreateUser registers a new user. The password is hashed before anything is
// persisted; this path never accepts a pre-hashed password. New accounts are
// active and have no staff privilege.
func (s *UserService) CreateUser(username, email, name, password string) (*models.User, error) {
	user := &models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}

	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalid)
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByUsername retrieves a user by username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// ListUsers retrieves all users in insertion order
func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.userRepo.List()
}

// DeleteUser deletes a user and all posts they authored. The cascade is
// deliberate: a post must never outlive its author.
func (s *UserService) DeleteUser(id int) error {
	posts, err := s.postRepo.ListByAuthor(id)
	if err != nil {
		return fmt.Errorf("failed to list posts for user %d: %v", id, err)
	}

	for _, post := range posts {
		if err := s.postRepo.Delete(post.ID); err != nil {
			return fmt.Errorf("failed to delete post %d: %v", post.ID, err)
		}
	}

	return s.userRepo.Delete(id)
}
