package mock

import (
	"sync"
	"time"

	"quill/app/models"
	"quill/app/repositories"
)

// AuthorRepository is an in-memory AuthorRepository for tests.
type AuthorRepository struct {
	authors map[int]*models.Author
	nextID  int
	mutex   sync.RWMutex
}

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[int]*models.Author),
		nextID:  1,
	}
}

func (m *AuthorRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.authors = make(map[int]*models.Author)
	m.nextID = 1
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

// AuthorRepository implementation
func (m *AuthorRepository) Create(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.nameTaken(author.Name, 0) {
		return repositories.ErrDuplicateName
	}
	author.ID = m.nextID
	m.nextID++
	author.BeforeCreate(time.Now())
	stored := *author
	m.authors[author.ID] = &stored
	return nil
}

func (m *AuthorRepository) GetByID(id int) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *author
	return &copied, nil
}

func (m *AuthorRepository) GetByName(name string) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, author := range m.authors {
		if author.Name == name {
			copied := *author
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AuthorRepository) List(limit, offset int) ([]*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	authors := []*models.Author{}
	count := 0
	for id := 1; id < m.nextID; id++ {
		if author, exists := m.authors[id]; exists {
			if count >= offset && (limit < 1 || len(authors) < limit) {
				copied := *author
				authors = append(authors, &copied)
			}
			count++
		}
	}
	return authors, nil
}

func (m *AuthorRepository) Update(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.authors[author.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	if m.nameTaken(author.Name, author.ID) {
		return repositories.ErrDuplicateName
	}
	author.CreatedAt = existing.CreatedAt
	author.BeforeUpdate(time.Now())
	stored := *author
	m.authors[author.ID] = &stored
	return nil
}

func (m *AuthorRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.authors[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.authors, id)
	return nil
}

func (m *AuthorRepository) nameTaken(name string, owner int) bool {
	for id, author := range m.authors {
		if author.Name == name && id != owner {
			return true
		}
	}
	return false
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate(time.Now())
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	count := 0
	for id := 1; id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			if count >= offset && (limit < 1 || len(posts) < limit) {
				copied := *post
				posts = append(posts, &copied)
			}
			count++
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.posts[post.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	post.CreatedAt = existing.CreatedAt
	post.BeforeUpdate(time.Now())
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
