package controllers

import (
	"net/http"

	"quill/app/models"
	"quill/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)
	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, listResponse{Data: posts, Page: page, PerPage: perPage})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.PostInput
	if !decodeJSON(w, r, &in) {
		return
	}
	post, err := pc.postService.CreatePost(in)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Replace handles overwriting a post (PUT)
func (pc *PostController) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in services.PostInput
	if !decodeJSON(w, r, &in) {
		return
	}
	post, err := pc.postService.ReplacePost(id, in)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Patch handles updating only the supplied post fields (PATCH)
func (pc *PostController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var changes models.PostChanges
	if !decodeJSON(w, r, &changes) {
		return
	}
	post, err := pc.postService.UpdatePost(id, changes)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := pc.postService.DeletePost(id); err != nil {
		sendFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
