package services

import (
	"fmt"

	"quill/app/models"
	"quill/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// PostInput carries the fields of a post as submitted.
type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

func (in PostInput) changes() models.PostChanges {
	return models.PostChanges{
		Title:    &in.Title,
		Content:  &in.Content,
		Summary:  &in.Summary,
		Category: &in.Category,
	}
}

// CreatePost creates a new blog post with validation
func (s *PostService) CreatePost(in PostInput) (*models.Post, error) {
	post, err := models.NewPost(in.Title, in.Content, in.Summary, in.Category)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	limit, offset := pageBounds(page, perPage)
	return s.postRepo.List(limit, offset)
}

// UpdatePost applies the supplied field changes, validating only the
// touched fields before the whole record is committed.
func (s *PostService) UpdatePost(id int, changes models.PostChanges) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		return post, nil
	}
	if err := changes.Apply(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ReplacePost overwrites every mutable field of a post.
func (s *PostService) ReplacePost(id int, in PostInput) (*models.Post, error) {
	return s.UpdatePost(id, in.changes())
}

// DeletePost deletes a post
func (s *PostService) DeletePost(id int) error {
	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
