package routes

import (
	"inkwell/app/admin"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services, and controllers over the given
// DB and returns the application router.
func SetupRoutes(db *badger.DB) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	userService := services.NewUserService(userRepo, postRepo)
	postService := services.NewPostService(postRepo, userRepo)

	postController := controllers.NewPostController(postService, userService)
	userController := controllers.NewUserController(userService)
	adminController := controllers.NewAdminController(
		buildAdminRegistry(userService, postService), userService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Posts API endpoints; collection and item paths accept an optional
	// trailing slash.
	posts := api.PathPrefix("/posts").Subrouter()
	for _, p := range []string{"", "/"} {
		posts.HandleFunc(p, postController.Index).Methods("GET")
		posts.HandleFunc(p, postController.Create).Methods("POST")
	}
	for _, p := range []string{"/{id:[0-9]+}", "/{id:[0-9]+}/"} {
		posts.HandleFunc(p, postController.Show).Methods("GET")
		posts.HandleFunc(p, postController.Edit).Methods("PUT", "PATCH")
		posts.HandleFunc(p, postController.Delete).Methods("DELETE")
	}

	// Users API endpoints
	users := api.PathPrefix("/users").Subrouter()
	for _, p := range []string{"", "/"} {
		users.HandleFunc(p, userController.Index).Methods("GET")
		users.HandleFunc(p, userController.Create).Methods("POST")
	}
	for _, p := range []string{"/{id:[0-9]+}", "/{id:[0-9]+}/"} {
		users.HandleFunc(p, userController.Show).Methods("GET")
		users.HandleFunc(p, userController.Delete).Methods("DELETE")
	}

	// Admin console endpoints (staff only)
	adm := router.PathPrefix("/admin").Subrouter()
	for _, p := range []string{"", "/"} {
		adm.HandleFunc(p, adminController.Index).Methods("GET")
	}
	for _, p := range []string{"/{resource}", "/{resource}/"} {
		adm.HandleFunc(p, adminController.Show).Methods("GET")
	}

	return router
}

// buildAdminRegistry declares which entity types the admin console can
// browse and which columns it shows for each.
func buildAdminRegistry(userService *services.UserService, postService *services.PostService) *admin.Registry {
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
					"id":       u.ID,
					"email":    u.Email,
					"username": u.Username,
					"name":     u.Name,
					"is_staff": u.IsStaff,
				})
			}
			return rows, nil
		},
	})

	registry.Register(admin.Resource{
		Name:   "posts",
		Fields: []string{"id", "title", "author", "created_at"},
		List: func() ([]map[string]interface{}, error) {
			posts, err := postService.ListPosts()
			if err != nil {
				return nil, err
			}
			rows := make([]map[string]interface{}, 0, len(posts))
			for _, p := range posts {
				row := map[string]interface{}{
					"id":         p.ID,
					"title":      p.Title,
					"created_at": p.CreatedAt,
				}
				if p.Author != nil {
					row["author"] = p.Author.Username
				}
				rows = append(rows, row)
			}
			return rows, nil
		},
	})

	return registry
}
