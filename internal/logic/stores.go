package logic

import (
	"sync"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// MemoryDatasetStore is an in-memory implementation of DatasetStore
type MemoryDatasetStore struct {
	mu     sync.RWMutex
	ds     *domain.Dataset
	source string
	gen    uint64
}

// NewMemoryDatasetStore creates a new memory-based dataset store
func NewMemoryDatasetStore() *MemoryDatasetStore {
	return &MemoryDatasetStore{}
}

func (s *MemoryDatasetStore) Current() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

func (s *MemoryDatasetStore) Replace(ds *domain.Dataset) *domain.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.ds
	s.ds = ds
	s.gen++
	return prev
}

func (s *MemoryDatasetStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *MemoryDatasetStore) SetSource(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
}

func (s *MemoryDatasetStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
