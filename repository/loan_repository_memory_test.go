package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-amortizer/domain"
)

func TestLoanRepositoryMemory_SaveAndFind(t *testing.T) {
	repo := NewLoanRepositoryMemory()
	ctx := context.Background()

	result := domain.LoanResult{
		ID:         "abc",
		Parameters: domain.LoanParameters{Principal: 1000, Years: 1, Frequency: domain.Monthly},
		Schedule:   domain.Schedule{{Period: 1, OpeningBalance: 1000, Principal: 1000, PeriodPayment: 1000}},
	}
	require.NoError(t, repo.Save(ctx, result))

	found, err := repo.FindByID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, result, found)
	assert.Equal(t, 1, repo.Len())

	result.Parameters.Years = 2
	require.NoError(t, repo.Save(ctx, result))
	found, err = repo.FindByID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2.0, found.Parameters.Years)
	assert.Equal(t, 1, repo.Len())
}

func TestLoanRepositoryMemory_Errors(t *testing.T) {
	repo := NewLoanRepositoryMemory()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Save(context.Background(), domain.LoanResult{})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestLoanRepositoryMemory_Concurrent(t *testing.T) {
	repo := NewLoanRepositoryMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("loan-%d", i)
			assert.NoError(t, repo.Save(context.Background(), domain.LoanResult{ID: id}))
			_, err := repo.FindByID(context.Background(), id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, repo.Len())
}

