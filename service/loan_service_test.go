package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

type MockLoanRepository struct {
	mu         sync.Mutex
	SaveCalls  int
	ForceError bool
	saved      map[string]domain.LoanResult
}

func (m *MockLoanRepository) Save(
	_ context.Context,
	result domain.LoanResult,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	if m.saved == nil {
		m.saved = make(map[string]domain.LoanResult)
	}
	m.saved[result.ID] = result
	return nil
}

func (m *MockLoanRepository) FindByID(
	_ context.Context,
	id string,
) (domain.LoanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.saved[id]
	if !ok {
		return domain.LoanResult{}, domain.ErrNotFound
	}
	return result, nil
}

func newTestLoanService(repo repository.LoanRepository, cache repository.CacheRepository) *LoanService {
	s := NewLoanService(repo, cache)
	var n int
	s.newID = func() string {
		n++
		return "loan-" + strconv.Itoa(n)
	}
	return s
}

func mortgageInput() domain.LoanInput {
	return domain.LoanInput{
		Principal:   500_000,
		NominalRate: 0.04,
		Years:       30,
		Frequency:   domain.FrequencyValue{Spec: domain.FrequencyName("monthly")},
	}
}

func TestCalculateSchedule(t *testing.T) {
	mockRepo := &MockLoanRepository{}
	service := newTestLoanService(mockRepo, repository.NewMemoryCache(16, time.Minute))

	result, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)

	assert.Equal(t, "loan-1", result.ID)
	assert.Len(t, result.Schedule, 360)
	assert.Equal(t, 360, result.Summary.Periods)
	assert.Equal(t, "monthly", result.Summary.FrequencyName)
	assert.InDelta(t, 2387.08, result.Summary.MinimumPayment, 0.01)
	assert.Equal(t, domain.Monthly, result.Parameters.Frequency)
	assert.Equal(t, 1, mockRepo.SaveCalls)

	stored, err := service.GetSchedule(context.Background(), "loan-1")
	require.NoError(t, err)
	assert.Equal(t, result.Summary, stored.Summary)
}

func TestCalculateSchedule_ZeroInterest(t *testing.T) {
	service := newTestLoanService(&MockLoanRepository{}, nil)

	input := domain.LoanInput{Principal: 1200, Years: 1}
	result, err := service.CalculateSchedule(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Summary.MinimumPayment)
	assert.Equal(t, 0.0, result.Summary.TotalInterest)
}

func TestCalculateSchedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.LoanInput
		want  error
	}{
		{"zero principal", domain.LoanInput{Principal: 0, NominalRate: 0.04, Years: 30}, domain.ErrInvalidParameter},
		{"negative rate", domain.LoanInput{Principal: 1000, NominalRate: -0.01, Years: 30}, domain.ErrInvalidParameter},
		{"zero years", domain.LoanInput{Principal: 1000, NominalRate: 0.04}, domain.ErrInvalidParameter},
		{"too many years", domain.LoanInput{Principal: 1000, NominalRate: 0.04, Years: 80}, domain.ErrInvalidParameter},
		{"negative extra payment", domain.LoanInput{Principal: 1000, NominalRate: 0.04, Years: 1, AdditionalPayment: -1}, domain.ErrInvalidParameter},
		{"unknown frequency", domain.LoanInput{Principal: 1000, NominalRate: 0.04, Years: 1,
			Frequency: domain.FrequencyValue{Spec: domain.FrequencyName("daily")}}, domain.ErrInvalidFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockLoanRepository{}
			service := newTestLoanService(mockRepo, nil)

			_, err := service.CalculateSchedule(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, mockRepo.SaveCalls)
		})
	}
}

func TestCalculateSchedule_PaymentOptions(t *testing.T) {
	service := newTestLoanService(&MockLoanRepository{}, nil)

	base, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)

	input := mortgageInput()
	input.AdditionalPayment = 1000
	result, err := service.CalculateSchedule(context.Background(), input)
	require.NoError(t, err)

	assert.Less(t, len(result.Schedule), 360)
	assert.Less(t, result.Summary.TotalInterest, base.Summary.TotalInterest)
	assert.InDelta(t, result.Schedule.TotalInterest(), result.Summary.TotalInterest, 1e-9)
	// The minimum payment is a property of the loan, not of the chosen payment.
	assert.Equal(t, base.Summary.MinimumPayment, result.Summary.MinimumPayment)
}

func TestCalculateSchedule_Cache(t *testing.T) {
	mockRepo := &MockLoanRepository{}
	cache := repository.NewMemoryCache(16, time.Minute)
	service := newTestLoanService(mockRepo, cache)

	first, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Len(t, second.Schedule, 360)
	assert.Equal(t, 2, mockRepo.SaveCalls)

	other := mortgageInput()
	other.Years = 25
	third, err := service.CalculateSchedule(context.Background(), other)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, 2, cache.Len())
}

func TestCalculateSchedule_UnreadableCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache(16, time.Minute)
	service := newTestLoanService(&MockLoanRepository{}, cache)

	a, err := service.Build(mortgageInput())
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), cacheKey(a.Parameters(), mortgageInput()), "{not json"))

	result, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)
	assert.Equal(t, "loan-1", result.ID)
}

func TestCalculateSchedule_SaveErrorIsNotFatal(t *testing.T) {
	mockRepo := &MockLoanRepository{ForceError: true}
	service := newTestLoanService(mockRepo, nil)

	result, err := service.CalculateSchedule(context.Background(), mortgageInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Schedule)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestGetSchedule_NotFound(t *testing.T) {
	service := newTestLoanService(repository.NewLoanRepositoryMemory(), nil)
	_, err := service.GetSchedule(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
