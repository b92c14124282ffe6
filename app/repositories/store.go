package repositories

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"quill/app/logger"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("an author with this name already exists")
)

// maxConflictRetries bounds how often a write is replayed after badger
// reports a conflicting concurrent transaction.
const maxConflictRetries = 5

// Store owns the badger database backing the repositories.
type Store struct {
	db       *badger.DB
	mutex    sync.RWMutex
	dbPath   string
	isTestDB bool
	now      func() time.Time
}

// Open opens (or creates) the database at path. An empty path opens a fresh
// database in a temporary directory that is removed on Close.
func Open(path string) (*Store, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "quill_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %w", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(logger.NewBadgerLogger()).
		WithNumVersionsToKeep(1)
	if isTest {
		opts = opts.WithSyncWrites(false).WithNumGoroutines(1)
	}
	return open(opts, path, isTest)
}

// OpenInMemory opens a database that lives only in memory.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(logger.NewBadgerLogger())
	return open(opts, "", false)
}

func open(opts badger.Options, path string, isTest bool) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return &Store{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
		now:      time.Now,
	}, nil
}

// DB exposes the underlying badger handle.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Path returns the on-disk location, empty for in-memory stores.
func (s *Store) Path() string {
	return s.dbPath
}

// Authors returns the author repository backed by this store.
func (s *Store) Authors() *BadgerAuthorRepository {
	return NewBadgerAuthorRepository(s)
}

// Posts returns the post repository backed by this store.
func (s *Store) Posts() *BadgerPostRepository {
	return NewBadgerPostRepository(s)
}

// SetClock replaces the time source used for created_at and updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.now = now
}

func (s *Store) timestamp() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.now().UTC()
}

// update runs fn in a read-write transaction, replaying it when badger
// detects a conflicting concurrent write.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		log.Debug().Int("attempt", attempt+1).Msg("transaction conflict, retrying")
	}
	return err
}

func (s *Store) view(fn func(txn *badger.Txn) error) error {
	return s.db.View(fn)
}

// Backup writes a full backup of the database to w.
func (s *Store) Backup(w io.Writer) (uint64, error) {
	return s.db.Backup(w, 0)
}

// Restore loads a backup produced by Backup.
func (s *Store) Restore(r io.Reader) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic occurred during restore: %v", rec)
		}
	}()
	return s.db.Load(r, 4)
}

// Clear drops every key, sequences included.
func (s *Store) Clear() error {
	return s.db.DropAll()
}

// Close closes the database, removing it when it was a temporary one.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}

	if s.isTestDB {
		if err := os.RemoveAll(s.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test database: %w", err)
		}
	}
	return nil
}
