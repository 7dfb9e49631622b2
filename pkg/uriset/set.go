// Package uriset maintains a persistent set of URIs keyed by their
// canonical form, so that spelling variants of the same identifier
// (scheme/host case, dot segments, percent-encoding case) map to a single
// entry.
package uriset

import (
	"fmt"

	"github.com/aleksaelezovic/urigo/pkg/uri"
)

// Canonical parses raw, normalizes the path, and renders the canonical
// string form used as the set's identity.
func Canonical(raw string) (string, error) {
	parsed, err := uri.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("cannot canonicalize %q: %w", raw, err)
	}
	parsed.NormalizePath()
	return parsed.String(), nil
}

// Set is a canonical-URI set backed by a Storage.
type Set struct {
	storage Storage
	keyer   Keyer
}

// New creates a set over the given storage and key encoder.
func New(storage Storage, keyer Keyer) *Set {
	return &Set{storage: storage, keyer: keyer}
}

// Add inserts the canonical form of raw into the set. It returns the
// canonical form and whether the entry was newly added (false means it was
// already present).
func (s *Set) Add(raw string) (canonical string, added bool, err error) {
	canonical, err = Canonical(raw)
	if err != nil {
		return "", false, err
	}
	key := s.keyer.Key(canonical)
	txn, err := s.storage.Begin(true)
	if err != nil {
		return "", false, err
	}
	defer txn.Rollback()

	_, err = txn.Get(key[:])
	switch {
	case err == nil:
		return canonical, false, nil
	case err != ErrNotFound:
		return "", false, err
	}
	if err := txn.Set(key[:], []byte(canonical)); err != nil {
		return "", false, err
	}
	if err := txn.Commit(); err != nil {
		return "", false, err
	}
	return canonical, true, nil
}

// Contains reports whether the canonical form of raw is in the set.
func (s *Set) Contains(raw string) (bool, error) {
	canonical, err := Canonical(raw)
	if err != nil {
		return false, err
	}
	key := s.keyer.Key(canonical)
	txn, err := s.storage.Begin(false)
	if err != nil {
		return false, err
	}
	defer txn.Rollback()

	_, err = txn.Get(key[:])
	switch {
	case err == nil:
		return true, nil
	case err == ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

// Count returns the number of entries in the set.
func (s *Set) Count() (int, error) {
	count := 0
	err := s.Each(func(string) error {
		count++
		return nil
	})
	return count, err
}

// Each calls fn once for every canonical URI in the set, in key order.
// Iteration stops on the first error, which is returned.
func (s *Set) Each(fn func(canonical string) error) error {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	iter, err := txn.Scan()
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.Next() {
		value, err := iter.Value()
		if err != nil {
			return err
		}
		if err := fn(string(value)); err != nil {
			return err
		}
	}
	return nil
}
