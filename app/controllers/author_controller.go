package controllers

import (
	"errors"
	"net/http"

	"quill/app/models"
	"quill/app/repositories"
	"quill/app/services"
)

// AuthorController handles HTTP requests for authors
type AuthorController struct {
	authorService *services.AuthorService
}

// NewAuthorController creates a new AuthorController
func NewAuthorController(authorService *services.AuthorService) *AuthorController {
	return &AuthorController{authorService: authorService}
}

type authorRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// Index handles listing authors. A name query parameter narrows the
// list to the author with exactly that name.
func (ac *AuthorController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)
	if name, ok := r.URL.Query()["name"]; ok {
		ac.findByName(w, r, name[0], page, perPage)
		return
	}
	authors, err := ac.authorService.ListAuthors(page, perPage)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, listResponse{Data: authors, Page: page, PerPage: perPage})
}

func (ac *AuthorController) findByName(w http.ResponseWriter, r *http.Request, name string, page, perPage int) {
	authors := []*models.Author{}
	author, err := ac.authorService.FindAuthorByName(name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
	case err != nil:
		sendFailure(w, r, err)
		return
	case page == 1:
		authors = append(authors, author)
	}
	sendJSON(w, http.StatusOK, listResponse{Data: authors, Page: page, PerPage: perPage})
}

// Show handles displaying a single author
func (ac *AuthorController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	author, err := ac.authorService.GetAuthor(id)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, author)
}

// Create handles creating a new author
func (ac *AuthorController) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	author, err := ac.authorService.CreateAuthor(req.Name, req.PhoneNumber)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, author)
}

// Replace handles overwriting an author (PUT)
func (ac *AuthorController) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req authorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	author, err := ac.authorService.ReplaceAuthor(id, req.Name, req.PhoneNumber)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, author)
}

// Patch handles updating only the supplied author fields (PATCH)
func (ac *AuthorController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var changes models.AuthorChanges
	if !decodeJSON(w, r, &changes) {
		return
	}
	author, err := ac.authorService.UpdateAuthor(id, changes)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, author)
}

// Delete handles deleting an author
func (ac *AuthorController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := ac.authorService.DeleteAuthor(id); err != nil {
		sendFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
