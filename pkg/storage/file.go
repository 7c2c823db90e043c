package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File stores each key as a small JSON file in a directory. It is meant
// for the CLI, where one operator owns the directory.
type File struct {
	mu      sync.RWMutex
	baseDir string
	closed  bool
}

// fileEntry is the on-disk record. The key is kept alongside the value so
// the directory stays inspectable even though file names are hashed.
type fileEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFile creates a file-backed store rooted at baseDir.
// If baseDir is empty, it defaults to ~/.config/salonsite/storage.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "salonsite", "storage")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (s *File) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.baseDir, hex.EncodeToString(sum[:16])+".json")
}

func (s *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read storage file: %w", err)
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false, fmt.Errorf("parse storage file: %w", err)
	}
	if entry.Key != key {
		return "", false, nil
	}
	return entry.Value, true, nil
}

// Set writes the value atomically (temp file plus rename), so a crash never
// leaves a half-written entry.
func (s *File) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	data, err := json.MarshalIndent(fileEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage entry: %w", err)
	}

	path := s.path(key)
	tmp, err := os.CreateTemp(s.baseDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close storage file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename storage file: %w", err)
	}
	return nil
}

func (s *File) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove storage file: %w", err)
	}
	return nil
}

func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Path returns the storage directory.
func (s *File) Path() string {
	return s.baseDir
}

var _ Storage = (*File)(nil)
