package repositories

import (
	"encoding/binary"

	"quill/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerAuthorRepository implements AuthorRepository using BadgerDB.
// Each author is stored under author:<id>; author_name:<name> holds the id
// and enforces name uniqueness.
type BadgerAuthorRepository struct {
	store *Store
}

// NewBadgerAuthorRepository creates a new BadgerAuthorRepository
func NewBadgerAuthorRepository(store *Store) *BadgerAuthorRepository {
	return &BadgerAuthorRepository{store: store}
}

// Create validates and inserts a new author, assigning its ID and created_at.
func (r *BadgerAuthorRepository) Create(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	var record models.Author
	err := r.store.update(func(txn *badger.Txn) error {
		record = *author

		if err := claimName(txn, record.Name, 0); err != nil {
			return err
		}

		id, err := getNextID(txn, AuthorSeqKey)
		if err != nil {
			return err
		}
		record.ID = id
		record.BeforeCreate(r.store.timestamp())

		if err := txn.Set(authorNameKey(record.Name), idValue(id)); err != nil {
			return err
		}
		return putEntity(txn, entityKey(AuthorKeyPrefix, id), &record)
	})
	if err != nil {
		return err
	}

	*author = record
	return nil
}

// GetByID retrieves an author by ID
func (r *BadgerAuthorRepository) GetByID(id int) (*models.Author, error) {
	var author models.Author
	err := r.store.view(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(AuthorKeyPrefix, id), &author)
	})
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByName retrieves an author through the name index.
func (r *BadgerAuthorRepository) GetByName(name string) (*models.Author, error) {
	var author models.Author
	err := r.store.view(func(txn *badger.Txn) error {
		id, err := lookupName(txn, name)
		if err != nil {
			return err
		}
		if id == 0 {
			return ErrNotFound
		}
		return getEntity(txn, entityKey(AuthorKeyPrefix, id), &author)
	})
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves a page of authors in ID order
func (r *BadgerAuthorRepository) List(limit, offset int) ([]*models.Author, error) {
	authors := []*models.Author{}
	err := r.store.view(func(txn *badger.Txn) error {
		return scan(txn, AuthorKeyPrefix, limit, offset, func(val []byte) error {
			var author models.Author
			if err := unmarshalEntity(val, &author); err != nil {
				return err
			}
			authors = append(authors, &author)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Update validates and stores an existing author, keeping created_at and
// refreshing updated_at.
func (r *BadgerAuthorRepository) Update(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	var record models.Author
	err := r.store.update(func(txn *badger.Txn) error {
		record = *author

		var existing models.Author
		if err := getEntity(txn, entityKey(AuthorKeyPrefix, record.ID), &existing); err != nil {
			return err
		}

		if existing.Name != record.Name {
			if err := claimName(txn, record.Name, record.ID); err != nil {
				return err
			}
			if err := txn.Delete(authorNameKey(existing.Name)); err != nil {
				return err
			}
			if err := txn.Set(authorNameKey(record.Name), idValue(record.ID)); err != nil {
				return err
			}
		}

		record.CreatedAt = existing.CreatedAt
		record.BeforeUpdate(r.store.timestamp())
		return putEntity(txn, entityKey(AuthorKeyPrefix, record.ID), &record)
	})
	if err != nil {
		return err
	}

	*author = record
	return nil
}

// Delete deletes an author by ID along with its name index entry
func (r *BadgerAuthorRepository) Delete(id int) error {
	return r.store.update(func(txn *badger.Txn) error {
		var existing models.Author
		if err := getEntity(txn, entityKey(AuthorKeyPrefix, id), &existing); err != nil {
			return err
		}
		if err := txn.Delete(authorNameKey(existing.Name)); err != nil {
			return err
		}
		return txn.Delete(entityKey(AuthorKeyPrefix, id))
	})
}

// claimName fails with ErrDuplicateName when name belongs to an author other than owner.
func claimName(txn *badger.Txn, name string, owner int) error {
	id, err := lookupName(txn, name)
	if err != nil {
		return err
	}
	if id != 0 && id != owner {
		return ErrDuplicateName
	}
	return nil
}

// lookupName returns the id indexed under name, or zero.
func lookupName(txn *badger.Txn, name string) (int, error) {
	item, err := txn.Get(authorNameKey(name))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var id int
	err = item.Value(func(val []byte) error {
		id = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return id, err
}

func idValue(id int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
