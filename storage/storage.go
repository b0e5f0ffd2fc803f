// Package storage persists accumulator snapshots in a key-value store.
package storage

import "fmt"

var (
	ErrNotFound  = fmt.Errorf("not found")
	ErrCorrupted = fmt.Errorf("corrupted snapshot")
)

type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}
