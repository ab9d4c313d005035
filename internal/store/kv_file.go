package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// fileKeyValue keeps every key in one JSON object on disk. Writes go to a
// temporary file in the same directory which then replaces the original, so
// readers see either the old or the new content.
//
// With an empty path or ":memory:" nothing touches the disk.
type fileKeyValue struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu    sync.RWMutex
	items map[string]string
}

// NewFileKeyValue opens (or lazily creates) the JSON file at path. A file
// that cannot be decoded is treated as empty and replaced on the next Set.
func NewFileKeyValue(path string, logger *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileKeyValue{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		logger:   logger,
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemoryKeyValue returns a KeyValueStore that lives only as long as the
// process.
func NewMemoryKeyValue() KeyValueStore {
	return &fileKeyValue{
		path:     ":memory:",
		inMemory: true,
		logger:   logger.Nop(),
		items:    make(map[string]string),
	}
}

func (s *fileKeyValue) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileKeyValue) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	s.items[key] = value

	if err := s.persist(); err != nil {
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fileKeyValue.Set").Str("key", key).Msg("error writing local file")
		return err
	}

	return nil
}

func (s *fileKeyValue) Close() error {
	return nil
}

func (s *fileKeyValue) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		s.logger.Warn().Err(err).Str("func", "*fileKeyValue.load").Str("path", s.path).Msg("local storage file is corrupt, starting empty")
		return nil
	}
	if items != nil {
		s.items = items
	}

	return nil
}

func (s *fileKeyValue) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create local storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp local storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close local storage file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod local storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
