package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"loan-amortizer/domain"
)

type ComparisonService struct {
	loanService *LoanService
}

func NewComparisonService(loanService *LoanService) *ComparisonService {
	return &ComparisonService{loanService: loanService}
}

type candidate struct {
	label        string
	amortization *Amortization
}

// Compare re-runs the base loan under every alternative in input, scores each
// outcome by the requested preference and ranks them best first. The base
// loan itself is always one of the scenarios.
func (s *ComparisonService) Compare(
	input domain.ComparisonInput,
) (domain.ComparisonResult, error) {

	if err := validateStruct(input); err != nil {
		return domain.ComparisonResult{}, err
	}
	total := 1 + len(input.Years) + len(input.NominalRates) + len(input.Frequencies)
	if total > MaxComparisonScenarios {
		return domain.ComparisonResult{}, fmt.Errorf("%w: %d scenarios exceed the maximum of %d",
			domain.ErrInvalidParameter, total, MaxComparisonScenarios)
	}

	base, err := s.loanService.Build(input.Loan)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	candidates := []candidate{{label: "base", amortization: base}}
	for _, years := range input.Years {
		if years > MaxYears {
			return domain.ComparisonResult{}, fmt.Errorf("%w: years exceed the maximum of %.0f", domain.ErrInvalidParameter, MaxYears)
		}
		alt, err := base.WithYears(years)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("years %g: %w", years, err)
		}
		candidates = append(candidates, candidate{label: fmt.Sprintf("years=%g", years), amortization: alt})
	}
	for _, rate := range input.NominalRates {
		if rate > MaxNominalRate {
			return domain.ComparisonResult{}, fmt.Errorf("%w: rate exceeds the maximum of %.2f", domain.ErrInvalidParameter, MaxNominalRate)
		}
		alt, err := base.WithNominalRate(rate)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("rate %g: %w", rate, err)
		}
		candidates = append(candidates, candidate{label: fmt.Sprintf("rate=%g", rate), amortization: alt})
	}
	for _, freq := range input.Frequencies {
		if freq.Spec == nil {
			continue
		}
		alt, err := base.WithRepaymentFrequency(freq.Spec)
		if err != nil {
			return domain.ComparisonResult{}, err
		}
		candidates = append(candidates, candidate{label: "frequency=" + alt.FrequencyName(), amortization: alt})
	}

	scenarios := make([]domain.Scenario, 0, len(candidates))
	for _, c := range candidates {
		summary := c.amortization.Summary()
		// Filtrar por pago máximo
		if input.MaxPayment > 0 && summary.MinimumPayment > input.MaxPayment {
			log.WithFields(log.Fields{
				"scenario":        c.label,
				"minimum_payment": summary.MinimumPayment,
			}).Debug("scenario exceeds maximum payment")
			continue
		}
		scenarios = append(scenarios, domain.Scenario{
			Label:   c.label,
			Summary: summary,
			Reason:  reasonFor(input.Preference),
		})
	}
	if len(scenarios) == 0 {
		return domain.ComparisonResult{}, errors.New("no scenario fits within the maximum payment")
	}

	score(scenarios, input.Preference)

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Score > scenarios[j].Score
	})

	return domain.ComparisonResult{
		Recommended: scenarios[0],
		Scenarios:   scenarios,
	}, nil
}

// score assigns each scenario a 0-10 score. Interest and payment are
// normalised against the best and worst scenario; annual-equivalent payment
// is used so weekly and monthly schedules compare fairly.
func score(scenarios []domain.Scenario, preference string) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	for _, sc := range scenarios {
		annual := annualPayment(sc.Summary)
		minInterest = math.Min(minInterest, sc.Summary.TotalInterest)
		maxInterest = math.Max(maxInterest, sc.Summary.TotalInterest)
		minPayment = math.Min(minPayment, annual)
		maxPayment = math.Max(maxPayment, annual)
	}

	for i := range scenarios {
		interestScore, paymentScore := 10.0, 10.0
		if r := maxInterest - minInterest; r > 0 {
			interestScore = 10.0 * (1.0 - (scenarios[i].Summary.TotalInterest-minInterest)/r)
		}
		if r := maxPayment - minPayment; r > 0 {
			paymentScore = 10.0 * (1.0 - (annualPayment(scenarios[i].Summary)-minPayment)/r)
		}

		var sc float64
		switch preference {
		case PreferenceMinimizeInterest:
			sc = 0.8*interestScore + 0.2*paymentScore
		case PreferenceMinimizePayment:
			sc = 0.2*interestScore + 0.8*paymentScore
		default:
			sc = 0.5*interestScore + 0.5*paymentScore
		}
		scenarios[i].Score = roundTo2Decimals(sc)
	}
}

func annualPayment(s domain.Summary) float64 {
	return s.MinimumPayment * float64(s.PeriodsPerYear)
}

func reasonFor(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "Scenario ranked by total interest over the life of the loan"
	case PreferenceMinimizePayment:
		return "Scenario ranked by the yearly cost of the minimum payment"
	case PreferenceBalanced:
		return "Scenario ranked on both total interest and yearly payment"
	}
	return "Scenario ranked on the given parameters"
}

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
