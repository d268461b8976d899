package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"inkwell/app/admin"
	"inkwell/app/models"
	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(t *testing.T) (*mux.Router, *mock.UserRepository, *services.UserService) {
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository(userRepo)
	userService := services.NewUserService(userRepo, postRepo)

	registry := admin.NewRegistry()
	registry.Register(admin.Resource{
		Name:   "users",
		Fields: []string{"id", "email", "username", "name", "is_staff"},
		List: func() ([]map[string]interface{}, error) {
			users, err := userService.ListUsers()
			if err != nil {
				return nil, err
			}
			rows := make([]map[string]interface{}, 0, len(users))
			for _, u := range users {
				rows = append(rows, map[string]interface{}{
					"id": u.ID, "email": u.Email, "username": u.Username,
					"name": u.Name, "is_staff": u.IsStaff,
				})
			}
			return rows, nil
		},
	})

	controller := NewAdminController(registry, userService)

	router := mux.NewRouter()
	router.HandleFunc("/admin", controller.Index).Methods("GET")
	router.HandleFunc("/admin/{resource}", controller.Show).Methods("GET")

	return router, userRepo, userService
}

func TestAdminController(t *testing.T) {
	router, userRepo, userService := setupAdminRouter(t)

	_, err := userService.CreateUser("test", "test@gmail.com", "Test User", "12345")
	require.NoError(t, err)

	staff := &models.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash", IsActive: true, IsStaff: true}
	require.NoError(t, userRepo.Create(staff))

	t.Run("anonymous forbidden", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/admin", "", 0)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-staff forbidden", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/admin", "", 1)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("staff lists resources", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/admin", "", staff.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Resources []string `json:"resources"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"users"}, resp.Resources)
	})

	t.Run("staff browses users", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/admin/users", "", staff.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Resource string                   `json:"resource"`
			Fields   []string                 `json:"fields"`
			Rows     []map[string]interface{} `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "users", resp.Resource)
		require.Len(t, resp.Rows, 2)
		assert.Equal(t, "test@gmail.com", resp.Rows[0]["email"])
	})

	t.Run("unknown resource", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/admin/widgets", "", staff.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
