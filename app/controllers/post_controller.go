package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	userService *services.UserService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, userService *services.UserService) *PostController {
	return &PostController{
		postService: postService,
		userService: userService,
	}
}

// createPostRequest is the write-path shape. The author is derived from the
// caller identity, never from the request body.
type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// updatePostRequest carries a partial update; absent fields stay unchanged.
type updatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, NewPostViews(posts))
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, NewPostView(post))
}

// Create handles creating a new post authored by the calling user
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r, pc.userService)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if caller == nil {
		sendError(w, http.StatusForbidden, reasonForbidden, "no caller identity")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(caller.ID, req.Title, req.Body)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, NewPostView(post))
}

// Edit handles partial updates of a post's title and body
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid post ID")
		return
	}

	caller, err := currentUser(r, pc.userService)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(id, caller, services.PostUpdate{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, NewPostView(post))
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, reasonValidation, "invalid post ID")
		return
	}

	caller, err := currentUser(r, pc.userService)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	if err := pc.postService.DeletePost(id, caller); err != nil {
		sendServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID extracts the numeric id path variable.
func pathID(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", vars["id"])
	}
	return id, nil
}
