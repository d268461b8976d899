package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*mux.Router, *mock.UserRepository, *services.UserService, *services.PostService) {
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository(userRepo)
	userService := services.NewUserService(userRepo, postRepo)
	postService := services.NewPostService(postRepo, userRepo)

	postController := NewPostController(postService, userService)
	userController := NewUserController(userService)

	router := mux.NewRouter()
	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.HandleFunc("/posts", postController.Create).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Edit).Methods("PUT", "PATCH")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	router.HandleFunc("/users", userController.Index).Methods("GET")
	router.HandleFunc("/users", userController.Create).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", userController.Show).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", userController.Delete).Methods("DELETE")

	return router, userRepo, userService, postService
}

func doRequest(router *mux.Router, method, path, body string, callerID int) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if callerID > 0 {
		req.Header.Set(CallerHeader, strconv.Itoa(callerID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostControllerCreate(t *testing.T) {
	router, _, userService, _ := setupTestRouter(t)

	author, err := userService.CreateUser("test", "test@gmail.com", "", "12345")
	require.NoError(t, err)

	t.Run("create post", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/posts",
			`{"title": "A good title", "body": "Nice Body Content"}`, author.ID)

		assert.Equal(t, http.StatusCreated, w.Code)

		var view PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.NotZero(t, view.ID)
		assert.Equal(t, "A good title", view.Title)
		assert.Equal(t, "Nice Body Content", view.Body)
		require.NotNil(t, view.Author)
		assert.Equal(t, "test", view.Author.Username)
		assert.False(t, view.CreatedAt.IsZero())
	})

	t.Run("no caller identity", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/posts",
			`{"title": "t", "body": "b"}`, 0)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, reasonForbidden, resp.Reason)
	})

	t.Run("missing title", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/posts", `{"body": "b"}`, author.ID)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, reasonValidation, resp.Reason)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/posts", `{not json`, author.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerShow(t *testing.T) {
	router, _, userService, postService := setupTestRouter(t)

	author, err := userService.CreateUser("test", "test@gmail.com", "Hidden Name", "12345")
	require.NoError(t, err)
	post, err := postService.CreatePost(author.ID, "A good title", "Nice Body Content")
	require.NoError(t, err)

	t.Run("get post", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/posts/"+strconv.Itoa(post.ID), "", 0)
		assert.Equal(t, http.StatusOK, w.Code)

		var view PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "A good title", view.Title)
	})

	t.Run("author leaks nothing private", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/posts/"+strconv.Itoa(post.ID), "", 0)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

		var authorFields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw["author"], &authorFields))
		assert.Len(t, authorFields, 2)
		assert.Contains(t, authorFields, "id")
		assert.Contains(t, authorFields, "username")
	})

	t.Run("missing post", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/posts/999", "", 0)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, reasonNotFound, resp.Reason)
	})
}

func TestPostControllerEdit(t *testing.T) {
	router, _, userService, postService := setupTestRouter(t)

	author, err := userService.CreateUser("test", "test@gmail.com", "", "12345")
	require.NoError(t, err)
	stranger, err := userService.CreateUser("stranger", "stranger@example.com", "", "pw")
	require.NoError(t, err)
	post, err := postService.CreatePost(author.ID, "A good title", "Nice Body Content")
	require.NoError(t, err)
	path := "/posts/" + strconv.Itoa(post.ID)

	t.Run("partial update keeps body", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, path, `{"title": "Updated"}`, author.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		var view PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "Updated", view.Title)
		assert.Equal(t, "Nice Body Content", view.Body)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, path, `{"title": "Hijacked"}`, stranger.ID)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing post", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/posts/999", `{"title": "x"}`, author.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerDelete(t *testing.T) {
	router, _, userService, postService := setupTestRouter(t)

	author, err := userService.CreateUser("test", "test@gmail.com", "", "12345")
	require.NoError(t, err)
	post, err := postService.CreatePost(author.ID, "A good title", "Nice Body Content")
	require.NoError(t, err)
	path := "/posts/" + strconv.Itoa(post.ID)

	t.Run("no caller identity", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, path, "", 0)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("author deletes", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, path, "", author.ID)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(router, http.MethodGet, path, "", 0)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing post", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/posts/999", "", author.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	router, _, userService, postService := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/posts", "", 0)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	author, err := userService.CreateUser("test", "test@gmail.com", "", "12345")
	require.NoError(t, err)
	_, err = postService.CreatePost(author.ID, "A good title", "Nice Body Content")
	require.NoError(t, err)

	w = doRequest(router, http.MethodGet, "/posts", "", 0)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []*PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "A good title", views[0].Title)
}
