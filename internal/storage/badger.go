// Package storage provides the BadgerDB-backed implementation of the
// uriset storage interface.
package storage

import (
	"fmt"

	"github.com/aleksaelezovic/urigo/pkg/uriset"
	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStorage implements uriset.Storage using BadgerDB
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage creates a new BadgerDB-backed storage
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &BadgerStorage{db: db}, nil
}

// Begin starts a new transaction
func (s *BadgerStorage) Begin(writable bool) (uriset.Transaction, error) {
	txn := s.db.NewTransaction(writable)
	return &BadgerTransaction{
		txn:      txn,
		writable: writable,
	}, nil
}

// Close closes the storage
func (s *BadgerStorage) Close() error {
	return s.db.Close()
}

// Sync flushes writes to disk
func (s *BadgerStorage) Sync() error {
	return s.db.Sync()
}

// BadgerTransaction implements uriset.Transaction using BadgerDB
type BadgerTransaction struct {
	txn      *badger.Txn
	writable bool
}

// Get retrieves a value by key
func (t *BadgerTransaction) Get(key []byte) ([]byte, error) {
	item, err := t.txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, uriset.ErrNotFound
		}
		return nil, err
	}

	var value []byte
	err = item.Value(func(val []byte) error {
		value = append([]byte{}, val...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores a key-value pair
func (t *BadgerTransaction) Set(key, value []byte) error {
	if !t.writable {
		return uriset.ErrTransactionRO
	}
	return t.txn.Set(key, value)
}

// Delete removes a key
func (t *BadgerTransaction) Delete(key []byte) error {
	if !t.writable {
		return uriset.ErrTransactionRO
	}
	return t.txn.Delete(key)
}

// Scan iterates over all entries in key order
func (t *BadgerTransaction) Scan() (uriset.Iterator, error) {
	opts := badger.DefaultIteratorOptions
	it := t.txn.NewIterator(opts)
	return &BadgerIterator{
		it: it,
	}, nil
}

// Commit commits the transaction
func (t *BadgerTransaction) Commit() error {
	return t.txn.Commit()
}

// Rollback rolls back the transaction
func (t *BadgerTransaction) Rollback() error {
	t.txn.Discard()
	return nil
}

// BadgerIterator implements uriset.Iterator using BadgerDB
type BadgerIterator struct {
	it       *badger.Iterator
	started  bool
	hasValue bool
}

// Next advances to the next item
func (i *BadgerIterator) Next() bool {
	if !i.started {
		i.it.Rewind()
		i.started = true
	} else {
		i.it.Next()
	}

	if !i.it.Valid() {
		i.hasValue = false
		return false
	}

	i.hasValue = true
	return true
}

// Key returns the current key
func (i *BadgerIterator) Key() []byte {
	if !i.hasValue {
		return nil
	}
	return i.it.Item().Key()
}

// Value returns the current value
func (i *BadgerIterator) Value() ([]byte, error) {
	if !i.hasValue {
		return nil, uriset.ErrNotFound
	}

	var value []byte
	err := i.it.Item().Value(func(val []byte) error {
		value = append([]byte{}, val...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Close closes the iterator
func (i *BadgerIterator) Close() error {
	i.it.Close()
	return nil
}
