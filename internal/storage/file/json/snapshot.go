package json

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/drakos74/line-fit/internal/storage"
	"github.com/klauspost/compress/zstd"
)

const compressedExt = ".json.zst"

// stateless codecs , safe for concurrent EncodeAll/DecodeAll use
var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

// SnapshotStorage persists raw datasets as zstd compressed json files.
type SnapshotStorage struct {
	path string
}

// NewSnapshotStorage creates a snapshot storage under the given shard.
func NewSnapshotStorage(shard string) *SnapshotStorage {
	return &SnapshotStorage{
		path: filepath.Join(storage.DefaultDir, storage.SnapshotsDir, shard),
	}
}

// SnapshotShard creates snapshot storages per shard.
func SnapshotShard() storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewSnapshotStorage(shard), nil
	}
}

func (s SnapshotStorage) Store(k storage.Key, value interface{}) error {
	info, err := os.Stat(s.path)
	if err != nil {
		if err := os.MkdirAll(s.path, os.ModePerm); err != nil {
			return fmt.Errorf("could not make dir: %s: %w", s.path, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a dir: %s", s.path)
	}

	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value for '%s': %w", k.Path(), err)
	}

	p := filepath.Join(s.path, k.Path()) + compressedExt
	err = ioutil.WriteFile(p, encoder.EncodeAll(bb, make([]byte, 0, len(bb))), 0644)
	if err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}

	return nil
}

func (s SnapshotStorage) Load(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, k.Path()) + compressedExt

	data, err := ioutil.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", p, storage.NotFoundErr)
	}

	bb, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("could not decompress file '%s': %v: %w", p, err, storage.UnrecoverableErr)
	}

	if err := json.Unmarshal(bb, value); err != nil {
		return fmt.Errorf("could not unmarshal file '%s': %v: %w", p, err, storage.CouldNotLoadErr)
	}

	return nil
}
