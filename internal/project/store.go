// Package project persists designs and enforces per-tier project
// limits.
package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned for an unknown project id.
var ErrNotFound = errors.New("project not found")

// Store is a blob store keyed by project id. Values are opaque JSON.
type Store interface {
	Get(ctx context.Context, projectID string) ([]byte, error)
	Set(ctx context.Context, projectID string, data []byte) error
	Delete(ctx context.Context, projectID string) error
	List(ctx context.Context) ([]string, error)
}

// FileStore keeps each project as one JSON file under a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(projectID string) (string, error) {
	if projectID == "" || strings.ContainsAny(projectID, `/\`) || strings.Contains(projectID, "..") {
		return "", fmt.Errorf("invalid project id %q", projectID)
	}
	return filepath.Join(s.dir, projectID+".json"), nil
}

func (s *FileStore) Get(ctx context.Context, projectID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(projectID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *FileStore) Set(ctx context.Context, projectID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Write-then-rename keeps readers from seeing a torn file
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write project %s: %w", projectID, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("commit project %s: %w", projectID, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, projectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(projectID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Get(_ context.Context, projectID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[projectID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemStore) Set(_ context.Context, projectID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[projectID] = cp
	return nil
}

func (s *MemStore) Delete(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[projectID]; !ok {
		return ErrNotFound
	}
	delete(s.blobs, projectID)
	return nil
}

func (s *MemStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.blobs))
	for pid := range s.blobs {
		ids = append(ids, pid)
	}
	return ids, nil
}
