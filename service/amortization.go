package service

import (
	"fmt"
	"math"
	"slices"

	"loan-amortizer/domain"
)

// Amortization holds a loan's parameters together with the schedule generated
// from them. Every Set* call regenerates the schedule from scratch; the With*
// variants do the same on a copy and leave the receiver untouched.
//
// An Amortization is not safe for concurrent mutation.
type Amortization struct {
	params         domain.LoanParameters
	schedule       domain.Schedule
	minimumPayment float64
}

// PaymentOptions shape a one-off schedule produced by ScheduleWith.
type PaymentOptions struct {
	TotalPayment      float64
	AdditionalPayment float64
}

// GenerateAmortizationSchedule is the construction entry point. A nil
// frequency selects monthly repayments; zero interest-only values leave the
// interest-only phase off.
func GenerateAmortizationSchedule(
	nominalRate, principal, years float64,
	frequency domain.FrequencySpecifier,
	interestOnlyRate, interestOnlyYears float64,
) (*Amortization, error) {
	freq := domain.DefaultFrequency
	if frequency != nil {
		f, err := domain.ResolveFrequency(frequency)
		if err != nil {
			return nil, err
		}
		freq = f
	}

	return NewAmortization(domain.LoanParameters{
		NominalRate:       nominalRate,
		Principal:         principal,
		Years:             years,
		Frequency:         freq,
		InterestOnlyRate:  interestOnlyRate,
		InterestOnlyYears: interestOnlyYears,
	})
}

// NewAmortization validates params and generates the schedule. A zero
// Frequency is read as monthly.
func NewAmortization(params domain.LoanParameters) (*Amortization, error) {
	if params.Frequency == 0 {
		params.Frequency = domain.DefaultFrequency
	}
	a := &Amortization{}
	if err := a.apply(params); err != nil {
		return nil, err
	}
	return a, nil
}

func validateParameters(p domain.LoanParameters) error {
	if !p.Frequency.Valid() {
		return fmt.Errorf("%w: %d periods per year", domain.ErrInvalidFrequency, int(p.Frequency))
	}
	switch {
	case !(p.Principal > 0) || math.IsInf(p.Principal, 0):
		return fmt.Errorf("%w: principal must be positive, got %g", domain.ErrInvalidParameter, p.Principal)
	case !(p.Years > 0) || math.IsInf(p.Years, 0):
		return fmt.Errorf("%w: years must be positive, got %g", domain.ErrInvalidParameter, p.Years)
	case !(p.NominalRate >= 0) || math.IsInf(p.NominalRate, 0):
		return fmt.Errorf("%w: nominal rate must not be negative, got %g", domain.ErrInvalidParameter, p.NominalRate)
	case !(p.InterestOnlyRate >= 0) || !(p.InterestOnlyYears >= 0):
		return fmt.Errorf("%w: interest-only values must not be negative", domain.ErrInvalidParameter)
	}
	return nil
}

// periodCount converts years into a whole number of periods, rounding to the
// nearest period.
func periodCount(years float64, freq domain.Frequency) int {
	return int(math.Round(years * float64(freq.PeriodsPerYear())))
}

// interestOnlyActive requires both values to be positive and the years to
// cover at least one period once rounded.
func interestOnlyActive(p domain.LoanParameters) bool {
	return p.HasInterestOnly() && periodCount(p.InterestOnlyYears, p.Frequency) > 0
}

func scheduleOptions(p domain.LoanParameters) ScheduleOptions {
	if !interestOnlyActive(p) {
		return ScheduleOptions{}
	}
	return ScheduleOptions{
		InterestOnlyRatePerPeriod: p.InterestOnlyRate / float64(p.Frequency.PeriodsPerYear()),
		InterestOnlyPeriods:       periodCount(p.InterestOnlyYears, p.Frequency),
	}
}

// apply regenerates the schedule for p and commits p only on success.
func (a *Amortization) apply(p domain.LoanParameters) error {
	if err := validateParameters(p); err != nil {
		return err
	}

	rate := p.NominalRate / float64(p.Frequency.PeriodsPerYear())
	periods := periodCount(p.Years, p.Frequency)
	opts := scheduleOptions(p)

	minimum, err := TotalPeriodPayment(p.Principal, rate, periods-opts.InterestOnlyPeriods)
	if err != nil {
		return err
	}
	schedule, err := GenerateSchedule(rate, p.Principal, periods, opts)
	if err != nil {
		return err
	}

	a.params = p
	a.schedule = schedule
	a.minimumPayment = minimum
	return nil
}

// Copy returns an independent Amortization with the same six parameters.
func (a *Amortization) Copy() *Amortization {
	return &Amortization{
		params:         a.params,
		schedule:       slices.Clone(a.schedule),
		minimumPayment: a.minimumPayment,
	}
}

func (a *Amortization) SetRepaymentFrequency(spec domain.FrequencySpecifier) error {
	if spec == nil {
		return nil
	}
	freq, err := domain.ResolveFrequency(spec)
	if err != nil {
		return err
	}
	p := a.params
	p.Frequency = freq
	return a.apply(p)
}

func (a *Amortization) WithRepaymentFrequency(spec domain.FrequencySpecifier) (*Amortization, error) {
	c := a.Copy()
	if err := c.SetRepaymentFrequency(spec); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *Amortization) SetYears(years float64) error {
	p := a.params
	p.Years = years
	return a.apply(p)
}

func (a *Amortization) WithYears(years float64) (*Amortization, error) {
	c := a.Copy()
	if err := c.SetYears(years); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *Amortization) SetNominalRate(rate float64) error {
	p := a.params
	p.NominalRate = rate
	return a.apply(p)
}

func (a *Amortization) WithNominalRate(rate float64) (*Amortization, error) {
	c := a.Copy()
	if err := c.SetNominalRate(rate); err != nil {
		return nil, err
	}
	return c, nil
}

// SetInterestOnly replaces the interest-only phase. Setting either value to
// zero switches the phase off.
func (a *Amortization) SetInterestOnly(rate, years float64) error {
	p := a.params
	p.InterestOnlyRate = rate
	p.InterestOnlyYears = years
	return a.apply(p)
}

func (a *Amortization) WithInterestOnly(rate, years float64) (*Amortization, error) {
	c := a.Copy()
	if err := c.SetInterestOnly(rate, years); err != nil {
		return nil, err
	}
	return c, nil
}

// ScheduleWith generates a schedule for the current parameters with a payment
// override and/or an extra payment each period. The stored schedule is not
// changed.
func (a *Amortization) ScheduleWith(opts PaymentOptions) (domain.Schedule, error) {
	so := scheduleOptions(a.params)
	so.TotalPayment = opts.TotalPayment
	so.AdditionalPayment = opts.AdditionalPayment
	return GenerateSchedule(a.RatePerPeriod(), a.params.Principal, a.Periods(), so)
}

func (a *Amortization) Parameters() domain.LoanParameters { return a.params }
func (a *Amortization) NominalRate() float64              { return a.params.NominalRate }
func (a *Amortization) Principal() float64                { return a.params.Principal }
func (a *Amortization) Years() float64                    { return a.params.Years }
func (a *Amortization) Frequency() domain.Frequency       { return a.params.Frequency }
func (a *Amortization) FrequencyName() string             { return a.params.Frequency.Name() }
func (a *Amortization) InterestOnlyRate() float64         { return a.params.InterestOnlyRate }
func (a *Amortization) InterestOnlyYears() float64        { return a.params.InterestOnlyYears }
func (a *Amortization) HasInterestOnly() bool             { return interestOnlyActive(a.params) }

// Schedule returns a copy of the current schedule.
func (a *Amortization) Schedule() domain.Schedule {
	return slices.Clone(a.schedule)
}

func (a *Amortization) RatePerPeriod() float64 {
	return a.params.NominalRate / float64(a.params.Frequency.PeriodsPerYear())
}

// Periods is the configured number of repayment periods.
func (a *Amortization) Periods() int {
	return periodCount(a.params.Years, a.params.Frequency)
}

// InterestOnlyPeriods is zero unless the interest-only phase is active.
func (a *Amortization) InterestOnlyPeriods() int {
	if !a.HasInterestOnly() {
		return 0
	}
	return periodCount(a.params.InterestOnlyYears, a.params.Frequency)
}

func (a *Amortization) TotalInterest() float64 {
	return a.schedule.TotalInterest()
}

// TotalOutstandingBalance is principal plus total interest.
func (a *Amortization) TotalOutstandingBalance() float64 {
	return a.params.Principal + a.TotalInterest()
}

func (a *Amortization) InterestToPrincipal() float64 {
	return a.TotalInterest() / a.params.Principal
}

// MinimumPayment is the PMT over the principal-paying periods.
func (a *Amortization) MinimumPayment() float64 {
	return a.minimumPayment
}

// EffectiveAnnualRate is (1 + i/n)^n - 1 with n periods per year.
func (a *Amortization) EffectiveAnnualRate() float64 {
	n := float64(a.params.Frequency.PeriodsPerYear())
	return math.Pow(1+a.params.NominalRate/n, n) - 1
}

func (a *Amortization) InterestOnlyPaymentPerPeriod() float64 {
	if !a.HasInterestOnly() {
		return 0
	}
	return a.params.Principal * a.params.InterestOnlyRate / float64(a.params.Frequency.PeriodsPerYear())
}

func (a *Amortization) TotalInterestOnlyPayments() float64 {
	return a.InterestOnlyPaymentPerPeriod() * float64(a.InterestOnlyPeriods())
}

func (a *Amortization) InterestOnlyShareOfTotalInterest() float64 {
	total := a.TotalInterest()
	if total == 0 {
		return 0
	}
	return a.TotalInterestOnlyPayments() / total
}

func (a *Amortization) Summary() domain.Summary {
	s := domain.Summary{
		Principal:           a.params.Principal,
		Years:               a.params.Years,
		NominalRate:         a.params.NominalRate,
		FrequencyName:       a.FrequencyName(),
		PeriodsPerYear:      a.params.Frequency.PeriodsPerYear(),
		Periods:             a.Periods(),
		TotalInterest:       a.TotalInterest(),
		TotalOutstanding:    a.TotalOutstandingBalance(),
		InterestToPrincipal: a.InterestToPrincipal(),
		MinimumPayment:      a.MinimumPayment(),
		EffectiveAnnualRate: a.EffectiveAnnualRate(),
	}
	if a.HasInterestOnly() {
		s.InterestOnly = &domain.InterestOnlySummary{
			NominalRate:          a.params.InterestOnlyRate,
			Years:                a.params.InterestOnlyYears,
			Periods:              a.InterestOnlyPeriods(),
			PaymentPerPeriod:     a.InterestOnlyPaymentPerPeriod(),
			TotalPayments:        a.TotalInterestOnlyPayments(),
			ShareOfTotalInterest: a.InterestOnlyShareOfTotalInterest(),
		}
	}
	return s
}
