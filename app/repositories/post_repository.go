package repositories

import (
	"quill/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	store *Store
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(store *Store) *BadgerPostRepository {
	return &BadgerPostRepository{store: store}
}

// Create validates and inserts a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	var record models.Post
	err := r.store.update(func(txn *badger.Txn) error {
		record = *post

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		record.ID = id
		record.BeforeCreate(r.store.timestamp())

		return putEntity(txn, entityKey(PostKeyPrefix, id), &record)
	})
	if err != nil {
		return err
	}

	*post = record
	return nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.store.view(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(PostKeyPrefix, id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves a paginated list of posts
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.store.view(func(txn *badger.Txn) error {
		return scan(txn, PostKeyPrefix, limit, offset, func(val []byte) error {
			var post models.Post
			if err := unmarshalEntity(val, &post); err != nil {
				return err
			}
			posts = append(posts, &post)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	var record models.Post
	err := r.store.update(func(txn *badger.Txn) error {
		record = *post

		var existing models.Post
		if err := getEntity(txn, entityKey(PostKeyPrefix, record.ID), &existing); err != nil {
			return err
		}

		record.CreatedAt = existing.CreatedAt
		record.BeforeUpdate(r.store.timestamp())
		return putEntity(txn, entityKey(PostKeyPrefix, record.ID), &record)
	})
	if err != nil {
		return err
	}

	*post = record
	return nil
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return r.store.update(func(txn *badger.Txn) error {
		key := entityKey(PostKeyPrefix, id)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
