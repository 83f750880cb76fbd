package memory

import (
	"context"
	"sync"

	"resume-collector-backend/internal/domain"

	"github.com/google/uuid"
)

// candidateRepository keeps candidates in process memory. Nothing survives a restart.
type candidateRepository struct {
	mu         sync.RWMutex
	candidates map[string]*domain.Candidate
	order      []string // insertion order of live ids
	newID      func() string
}

func NewCandidateRepository() domain.CandidateRepository {
	return &candidateRepository{
		candidates: make(map[string]*domain.Candidate),
		newID:      uuid.NewString,
	}
}

func (r *candidateRepository) Insert(ctx context.Context, candidate *domain.Candidate) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, taken := r.candidates[id]; !taken {
			break
		}
		id = r.newID()
	}

	stored := candidate.Clone()
	stored.ID = id
	r.candidates[id] = stored
	r.order = append(r.order, id)
	candidate.ID = id
	return id, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return c.Clone(), nil
}

func (r *candidateRepository) List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Candidate, 0, len(r.order))
	for _, id := range r.order {
		c := r.candidates[id]
		if filter.Matches(c) {
			result = append(result, c.Clone())
		}
	}
	return result, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.candidates[id]; !ok {
		return domain.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
