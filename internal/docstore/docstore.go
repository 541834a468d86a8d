// Package docstore persists named document collections as single JSON
// files. Each collection has one writer at a time; every commit replaces
// the file atomically (write to a temp file, fsync, rename), so a crash
// mid-write leaves the previous snapshot intact.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageError reports a failure of the persistence medium. Domain
// outcomes never use it; any error of this type means the triggering
// operation had no effect.
type StorageError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("docstore: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Collection is a single JSON document of type T bound to one file.
// The zero value is not usable; call Open.
type Collection[T any] struct {
	name string
	path string

	mu  sync.Mutex
	raw []byte // last committed snapshot
}

// Open loads the collection file from dir, or creates it from seed if it
// does not exist yet.
func Open[T any](dir, name string, seed T) (*Collection[T], error) {
	c := &Collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
	}

	raw, err := os.ReadFile(c.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		data, err := json.MarshalIndent(seed, "", "  ")
		if err != nil {
			return nil, &StorageError{Collection: name, Op: "encode", Err: err}
		}
		if err := c.commit(data); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, &StorageError{Collection: name, Op: "read", Err: err}
	default:
		c.raw = raw
	}

	return c, nil
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// View passes a copy of the current snapshot to fn. fn must not retain
// the document past its return.
func (c *Collection[T]) View(fn func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.decode()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update passes a mutable copy of the current snapshot to fn and, if fn
// returns nil, commits the result. On any error the prior snapshot stays
// authoritative both in memory and on disk.
func (c *Collection[T]) Update(fn func(*T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.decode()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StorageError{Collection: c.name, Op: "encode", Err: err}
	}
	return c.commit(data)
}

// Update2 applies fn against mutable copies of two collections and
// commits both, or neither. Locks are taken in argument order, so every
// caller touching the same pair must pass them in the same order. If the
// second commit fails, the first collection is rolled back to its prior
// snapshot before the error is returned.
func Update2[A, B any](a *Collection[A], b *Collection[B], fn func(*A, *B) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	docA, err := a.decode()
	if err != nil {
		return err
	}
	docB, err := b.decode()
	if err != nil {
		return err
	}

	if err := fn(&docA, &docB); err != nil {
		return err
	}

	dataA, err := json.MarshalIndent(docA, "", "  ")
	if err != nil {
		return &StorageError{Collection: a.name, Op: "encode", Err: err}
	}
	dataB, err := json.MarshalIndent(docB, "", "  ")
	if err != nil {
		return &StorageError{Collection: b.name, Op: "encode", Err: err}
	}

	prevA := a.raw
	if err := a.commit(dataA); err != nil {
		return err
	}
	if err := b.commit(dataB); err != nil {
		if rbErr := a.commit(prevA); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return nil
}

// decode unmarshals the committed snapshot into a fresh value. Callers
// hold mu.
func (c *Collection[T]) decode() (T, error) {
	var doc T
	if err := json.Unmarshal(c.raw, &doc); err != nil {
		return doc, &StorageError{Collection: c.name, Op: "decode", Err: err}
	}
	return doc, nil
}

// commit atomically replaces the collection file with data. Callers hold
// mu. The temp file lives in the same directory so the rename stays on
// one filesystem.
func (c *Collection[T]) commit(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(c.path), "."+c.name+"-*.tmp")
	if err != nil {
		return &StorageError{Collection: c.name, Op: "write", Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Collection: c.name, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Collection: c.name, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Collection: c.name, Op: "close", Err: err}
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Collection: c.name, Op: "rename", Err: err}
	}

	c.raw = data
	return nil
}
