package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// CallerHeader carries the acting user's ID, set by the upstream identity
// layer. This service does not verify tokens itself.
const CallerHeader = "X-User-ID"

// Machine-readable reason codes for error responses.
const (
	reasonValidation = "validation_error"
	reasonNotFound   = "not_found"
	reasonForbidden  = "forbidden"
	reasonInternal   = "internal_error"
)

// errorResponse is the structured JSON body for all error replies.
type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, reason, message string) {
	sendJSON(w, status, errorResponse{Error: message, Reason: reason})
}

// sendServiceError maps service/repository errors onto HTTP statuses:
// validation and uniqueness failures are 400, unresolved references 404,
// ownership violations 403, anything else 500.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, reasonNotFound, err.Error())
	case errors.Is(err, repositories.ErrDuplicate), errors.Is(err, services.ErrInvalid):
		sendError(w, http.StatusBadRequest, reasonValidation, err.Error())
	case errors.Is(err, services.ErrForbidden):
		sendError(w, http.StatusForbidden, reasonForbidden, err.Error())
	default:
		sendError(w, http.StatusInternalServerError, reasonInternal, err.Error())
	}
}

// currentUser resolves the acting user from the forwarded identity header.
// Returns nil without error when no identity was forwarded; handlers decide
// whether that is acceptable for the operation.
func currentUser(r *http.Request, users *services.UserService) (*models.User, error) {
	raw := r.Header.Get(CallerHeader)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, nil
	}
	user, err := users.GetUser(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
