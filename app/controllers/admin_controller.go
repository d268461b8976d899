package controllers

import (
	"net/http"

	"inkwell/app/admin"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// AdminController exposes read access to the registered entity types for
// staff users.
type AdminController struct {
	registry    *admin.Registry
	userService *services.UserService
}

// NewAdminController creates a new AdminController
func NewAdminController(registry *admin.Registry, userService *services.UserService) *AdminController {
	return &AdminController{
		registry:    registry,
		userService: userService,
	}
}

// Index lists the registered resource names
func (ac *AdminController) Index(w http.ResponseWriter, r *http.Request) {
	if !ac.requireStaff(w, r) {
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"resources": ac.registry.Names(),
	})
}

// Show lists the records of one registered resource
func (ac *AdminController) Show(w http.ResponseWriter, r *http.Request) {
	if !ac.requireStaff(w, r) {
		return
	}

	name := mux.Vars(r)["resource"]
	res, ok := ac.registry.Get(name)
	if !ok {
		sendError(w, http.StatusNotFound, reasonNotFound, "unknown resource "+name)
		return
	}

	rows, err := res.List()
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"resource": res.Name,
		"fields":   res.Fields,
		"rows":     rows,
	})
}

func (ac *AdminController) requireStaff(w http.ResponseWriter, r *http.Request) bool {
	caller, err := currentUser(r, ac.userService)
	if err != nil {
		sendServiceError(w, err)
		return false
	}
	if caller == nil || !caller.IsStaff {
		sendError(w, http.StatusForbidden, reasonForbidden, "staff privilege required")
		return false
	}
	return true
}
