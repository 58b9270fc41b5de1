package repository

import (
	"context"
	"fmt"
	"sync"

	"loan-amortizer/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
// Saving an existing ID replaces the stored result.
type LoanRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.LoanResult
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: make(map[string]domain.LoanResult),
	}
}

// Save stores the loan result in memory.
func (r *LoanRepositoryMemory) Save(
	_ context.Context,
	result domain.LoanResult,
) error {
	if result.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidParameter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[result.ID] = result
	return nil
}

// FindByID returns domain.ErrNotFound for an unknown id.
func (r *LoanRepositoryMemory) FindByID(
	_ context.Context,
	id string,
) (domain.LoanResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.data[id]
	if !ok {
		return domain.LoanResult{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return result, nil
}

func (r *LoanRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
