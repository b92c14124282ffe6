package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quill/app/models"
	"quill/app/repositories"
	"quill/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// errorResponse is the body of every failed API call.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// listResponse wraps a page of records.
type listResponse struct {
	Data    interface{} `json:"data"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, errorResponse{Error: message})
}

// sendFailure translates a service error into an HTTP response.
func sendFailure(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := models.AsValidationError(err); ok {
		sendJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Message, Field: ve.Field})
		return
	}
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrDuplicateName):
		sendJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Field: "name"})
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

// pathID parses the {id} route variable, answering 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		sendError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

// pagination reads page and per_page query parameters, capping per_page
// at services.MaxPerPage.
func pagination(r *http.Request) (page, perPage int) {
	page, perPage = 1, 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if pp, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && pp > 0 {
		perPage = pp
	}
	if perPage > services.MaxPerPage {
		perPage = services.MaxPerPage
	}
	return page, perPage
}
