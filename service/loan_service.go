package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

type LoanService struct {
	repo  repository.LoanRepository
	cache repository.CacheRepository
	newID func() string
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{
		repo:  repo,
		cache: cache,
		newID: uuid.NewString,
	}
}

// Build validates input and returns the amortization it describes.
func (s *LoanService) Build(input domain.LoanInput) (*Amortization, error) {
	if err := validateLoanInput(input); err != nil {
		return nil, err
	}
	return GenerateAmortizationSchedule(
		input.NominalRate,
		input.Principal,
		input.Years,
		input.Frequency.Spec,
		input.InterestOnlyRate,
		input.InterestOnlyYears,
	)
}

// CalculateSchedule computes the amortization for input, stores it and
// returns it. Identical inputs are served from the cache when possible.
func (s *LoanService) CalculateSchedule(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	amortization, err := s.Build(input)
	if err != nil {
		return domain.LoanResult{}, err
	}

	key := cacheKey(amortization.Parameters(), input)
	if cached, ok := s.fromCache(ctx, key); ok {
		s.save(ctx, cached)
		return cached, nil
	}

	result, err := s.resultFor(amortization, input)
	if err != nil {
		return domain.LoanResult{}, err
	}

	// Guardar el resultado (no crítico si falla)
	s.save(ctx, result)
	if s.cache != nil {
		if payload, err := json.Marshal(result); err != nil {
			log.WithError(err).Warn("failed to encode amortization for cache")
		} else if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			log.WithError(err).WithField("key", key).Warn("failed to cache amortization")
		}
	}

	log.WithFields(log.Fields{
		"id":        result.ID,
		"principal": input.Principal,
		"periods":   len(result.Schedule),
		"frequency": amortization.FrequencyName(),
	}).Info("amortization calculated")

	return result, nil
}

// GetSchedule returns a previously calculated amortization.
func (s *LoanService) GetSchedule(ctx context.Context, id string) (domain.LoanResult, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LoanService) resultFor(a *Amortization, input domain.LoanInput) (domain.LoanResult, error) {
	summary := a.Summary()
	schedule := a.Schedule()

	if input.TotalPayment > 0 || input.AdditionalPayment > 0 {
		custom, err := a.ScheduleWith(PaymentOptions{
			TotalPayment:      input.TotalPayment,
			AdditionalPayment: input.AdditionalPayment,
		})
		if err != nil {
			return domain.LoanResult{}, err
		}
		schedule = custom
		summary = withSchedule(summary, schedule)
	}

	return domain.LoanResult{
		ID:         s.newID(),
		Parameters: a.Parameters(),
		Summary:    summary,
		Schedule:   schedule,
	}, nil
}

// withSchedule recomputes the schedule-derived totals of summary.
func withSchedule(summary domain.Summary, schedule domain.Schedule) domain.Summary {
	summary.TotalInterest = schedule.TotalInterest()
	summary.TotalOutstanding = summary.Principal + summary.TotalInterest
	summary.InterestToPrincipal = summary.TotalInterest / summary.Principal
	if io := summary.InterestOnly; io != nil && summary.TotalInterest > 0 {
		copied := *io
		copied.ShareOfTotalInterest = copied.TotalPayments / summary.TotalInterest
		summary.InterestOnly = &copied
	}
	return summary
}

func (s *LoanService) save(ctx context.Context, result domain.LoanResult) {
	if err := s.repo.Save(ctx, result); err != nil {
		log.WithError(err).WithField("id", result.ID).Warn("failed to save amortization")
	}
}

func (s *LoanService) fromCache(ctx context.Context, key string) (domain.LoanResult, bool) {
	if s.cache == nil {
		return domain.LoanResult{}, false
	}
	payload, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.LoanResult{}, false
	}
	var result domain.LoanResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		log.WithError(err).WithField("key", key).Warn("discarding unreadable cached amortization")
		return domain.LoanResult{}, false
	}
	log.WithField("id", result.ID).Debug("amortization served from cache")
	return result, true
}

func cacheKey(p domain.LoanParameters, input domain.LoanInput) string {
	return fmt.Sprintf("%s%g:%g:%g:%d:%g:%g:%g:%g", cacheKeyPrefix,
		p.NominalRate, p.Principal, p.Years, p.Frequency.PeriodsPerYear(),
		p.InterestOnlyRate, p.InterestOnlyYears,
		input.TotalPayment, input.AdditionalPayment)
}
