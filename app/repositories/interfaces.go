package repositories

import "quill/app/models"

// AuthorRepository defines the interface for author data access
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id int) (*models.Author, error)
	GetByName(name string) (*models.Author, error)
	List(limit, offset int) ([]*models.Author, error)
	Update(author *models.Author) error
	Delete(id int) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}
