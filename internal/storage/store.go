package storage

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	// FitsDir holds the persisted fit documents.
	FitsDir = "fits"
	// SnapshotsDir holds the compressed dataset snapshots.
	SnapshotsDir = "snapshots"
)

var (
	// TODO : leaving this for now to be able to adjust for the tests
	DefaultDir = "file-storage"
)

var (
	NotFoundErr      = errors.New("not found")
	CouldNotLoadErr  = errors.New("could not load")
	UnrecoverableErr = errors.New("unrecoverable error")
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// Key is the storage key for a general implementation.
type Key struct {
	Hash  uint64 `json:"hash"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// NewKey creates a key for the given dataset name and label.
// The hash is derived from the name.
func NewKey(name, label string) Key {
	return Key{
		Hash:  xxhash.Sum64String(name),
		Name:  name,
		Label: label,
	}
}

// Path encodes the key as a flat filename of hash and label.
// The raw name never forms part of a filesystem path.
func (k Key) Path() string {
	return fmt.Sprintf("%v_%s", k.Hash, k.Label)
}

// Persistence stores and retrieves documents by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
