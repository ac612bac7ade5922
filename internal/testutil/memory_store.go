package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/repositories"
)

// MemoryStore is an in-memory stand-in for the Postgres term repositories.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	terms  map[string]models.Term
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{terms: make(map[string]models.Term)}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	terms := make([]models.Term, 0, len(s.terms))
	for _, t := range s.terms {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].ID < terms[j].ID })
	return terms, nil
}

func (s *MemoryStore) GetByKeyword(ctx context.Context, keyword string) (*models.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.terms[keyword]
	if !ok {
		return nil, repositories.ErrTermNotFound
	}
	return &t, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.terms), nil
}

func (s *MemoryStore) Save(ctx context.Context, keyword, description string) (*models.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.terms[keyword]; ok {
		return nil, repositories.ErrDuplicateKeyword
	}
	s.nextID++
	t := models.Term{ID: s.nextID, Keyword: keyword, Description: description, CreatedAt: time.Now().UTC()}
	s.terms[keyword] = t
	return &t, nil
}

func (s *MemoryStore) Update(ctx context.Context, keyword string, req models.TermUpdateRequest) (*models.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.terms[keyword]
	if !ok {
		return nil, repositories.ErrTermNotFound
	}
	if req.Keyword != nil && *req.Keyword != keyword {
		if _, taken := s.terms[*req.Keyword]; taken {
			return nil, repositories.ErrDuplicateKeyword
		}
		delete(s.terms, keyword)
		t.Keyword = *req.Keyword
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	now := time.Now().UTC()
	t.UpdatedAt = &now
	s.terms[t.Keyword] = t
	return &t, nil
}

func (s *MemoryStore) Delete(ctx context.Context, keyword string) (*models.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.terms[keyword]
	if !ok {
		return nil, repositories.ErrTermNotFound
	}
	delete(s.terms, keyword)
	return &t, nil
}
