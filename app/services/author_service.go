package services

import (
	"fmt"

	"quill/app/models"
	"quill/app/repositories"
)

// AuthorService handles business logic for authors
type AuthorService struct {
	authorRepo repositories.AuthorRepository
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authorRepo repositories.AuthorRepository) *AuthorService {
	return &AuthorService{authorRepo: authorRepo}
}

// CreateAuthor validates and stores a new author.
func (s *AuthorService) CreateAuthor(name, phoneNumber string) (*models.Author, error) {
	author, err := models.NewAuthor(name, phoneNumber)
	if err != nil {
		return nil, err
	}
	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

// GetAuthor retrieves an author by ID
func (s *AuthorService) GetAuthor(id int) (*models.Author, error) {
	return s.authorRepo.GetByID(id)
}

// FindAuthorByName retrieves an author by exact name.
func (s *AuthorService) FindAuthorByName(name string) (*models.Author, error) {
	return s.authorRepo.GetByName(name)
}

// ListAuthors retrieves a paginated list of authors
func (s *AuthorService) ListAuthors(page, perPage int) ([]*models.Author, error) {
	limit, offset := pageBounds(page, perPage)
	return s.authorRepo.List(limit, offset)
}

// UpdateAuthor applies the supplied field changes, validating only the
// touched fields before the whole record is committed.
func (s *AuthorService) UpdateAuthor(id int, changes models.AuthorChanges) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		return author, nil
	}
	if err := changes.Apply(author); err != nil {
		return nil, err
	}
	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

// ReplaceAuthor overwrites every mutable field of an author.
func (s *AuthorService) ReplaceAuthor(id int, name, phoneNumber string) (*models.Author, error) {
	return s.UpdateAuthor(id, models.AuthorChanges{Name: &name, PhoneNumber: &phoneNumber})
}

// DeleteAuthor deletes an author
func (s *AuthorService) DeleteAuthor(id int) error {
	if err := s.authorRepo.Delete(id); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}
