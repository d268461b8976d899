package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/services"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Index handles listing all users as public views
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, NewUserViews(users))
}

// Show handles displaying a single user as a public view
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid user ID")
		return
	}

	user, err := uc.userService.GetUser(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, NewUserView(user))
}

// Create handles user registration
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid JSON: "+err.Error())
		return
	}

	user, err := uc.userService.CreateUser(req.Username, req.Email, req.Name, req.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, NewUserView(user))
}

// Delete handles deleting a user and, by cascade, all posts they authored.
// Staff privilege is required.
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid user ID")
		return
	}

	caller, err := currentUser(r, uc.userService)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if caller == nil || !caller.IsStaff {
		sendError(w, http.StatusForbidden, reasonForbidden, "staff privilege required")
		return
	}

	if err := uc.userService.DeleteUser(id); err != nil {
		sendServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
