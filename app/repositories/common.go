package repositories

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	AuthorKeyPrefix     = "author:"
	PostKeyPrefix       = "post:"
	AuthorNameKeyPrefix = "author_name:"

	// Sequence keys for auto-incrementing IDs
	AuthorSeqKey = "seq:author"
	PostSeqKey   = "seq:post"
)

// entityKey builds prefix + big-endian id so iteration follows id order.
func entityKey(prefix string, id int) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], uint64(id))
	return key
}

func authorNameKey(name string) []byte {
	return []byte(AuthorNameKeyPrefix + name)
}

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id uint64
	item, err := txn.Get([]byte(seqKey))
	switch {
	case err == badger.ErrKeyNotFound:
	case err != nil:
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	default:
		err = item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt sequence %s", seqKey)
			}
			id = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
	}
	id++

	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, id)
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, fmt.Errorf("failed to update sequence: %w", err)
	}

	return int(id), nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// getEntity loads the value under key into entity, mapping a missing key to ErrNotFound.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

// putEntity marshals entity and stores it under key.
func putEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// scan walks the values under prefix in key order, skipping offset entries
// and stopping after limit. A limit below one means no limit.
func scan(txn *badger.Txn, prefix string, limit, offset int, fn func(val []byte) error) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	count := 0
	taken := 0
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		if count < offset {
			count++
			continue
		}
		if limit > 0 && taken >= limit {
			break
		}
		if err := it.Item().Value(fn); err != nil {
			return err
		}
		count++
		taken++
	}
	return nil
}
