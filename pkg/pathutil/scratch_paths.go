package pathutil

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ScratchPaths allocates and memoizes one unique path per key under a root
// directory, typically the temporary directory. It is safe for concurrent
// use.
type ScratchPaths struct {
	paths map[string]string
	root  string
	mu    sync.RWMutex
}

// NewScratchPaths creates a ScratchPaths rooted at root. The root is not
// created or checked.
func NewScratchPaths(root string) *ScratchPaths {
	return &ScratchPaths{
		root:  root,
		paths: map[string]string{},
	}
}

// Path returns the scratch path for key, allocating a new unique path
// under the root on first use.
func (s *ScratchPaths) Path(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.paths[key]; ok {
		return p, nil
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	p := filepath.Join(s.root, id.String())
	s.paths[key] = p

	return p, nil
}

// PathIfExists returns the scratch path previously allocated for key, or
// "" when none has been allocated yet.
func (s *ScratchPaths) PathIfExists(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.paths[key]
}

// Paths returns a copy of the key to path mapping.
func (s *ScratchPaths) Paths() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make(map[string]string, len(s.paths))
	for k, v := range s.paths {
		paths[k] = v
	}

	return paths
}
