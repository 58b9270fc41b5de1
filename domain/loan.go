package domain

// LoanParameters are the six inputs an amortization is built from. Rates are
// decimal fractions, so 3.94% is 0.0394.
type LoanParameters struct {
	NominalRate       float64   `json:"nominal_rate"`
	Principal         float64   `json:"principal"`
	Years             float64   `json:"years"`
	Frequency         Frequency `json:"frequency"`
	InterestOnlyRate  float64   `json:"interest_only_rate"`
	InterestOnlyYears float64   `json:"interest_only_years"`
}

// HasInterestOnly reports whether both interest-only values are positive.
func (p LoanParameters) HasInterestOnly() bool {
	return p.InterestOnlyRate > 0 && p.InterestOnlyYears > 0
}

// PeriodRow is one repayment period of a schedule.
type PeriodRow struct {
	Period             int     `json:"period"`
	OpeningBalance     float64 `json:"opening_balance"`
	Interest           float64 `json:"interest"`
	Principal          float64 `json:"principal"`
	PeriodPayment      float64 `json:"period_payment"`
	ClosingBalance     float64 `json:"closing_balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// Schedule is the ordered list of periods, first period first.
type Schedule []PeriodRow

// ScheduleColumns is the column order used by every tabular export.
var ScheduleColumns = []string{
	"period",
	"opening_balance",
	"interest",
	"principal",
	"period_payment",
	"closing_balance",
	"cumulative_interest",
}

func (s Schedule) TotalInterest() float64 {
	var total float64
	for _, row := range s {
		total += row.Interest
	}
	return total
}

func (s Schedule) TotalPrincipal() float64 {
	var total float64
	for _, row := range s {
		total += row.Principal
	}
	return total
}

func (s Schedule) TotalPayments() float64 {
	var total float64
	for _, row := range s {
		total += row.PeriodPayment
	}
	return total
}

// Last returns the final row and false for an empty schedule.
func (s Schedule) Last() (PeriodRow, bool) {
	if len(s) == 0 {
		return PeriodRow{}, false
	}
	return s[len(s)-1], true
}

// Summary is the headline view of an amortization used by reports.
type Summary struct {
	Principal           float64              `json:"principal"`
	Years               float64              `json:"years"`
	NominalRate         float64              `json:"nominal_rate"`
	FrequencyName       string               `json:"frequency_name"`
	PeriodsPerYear      int                  `json:"periods_per_year"`
	Periods             int                  `json:"periods"`
	TotalInterest       float64              `json:"total_interest"`
	TotalOutstanding    float64              `json:"total_outstanding"`
	InterestToPrincipal float64              `json:"interest_to_principal"`
	MinimumPayment      float64              `json:"minimum_payment"`
	EffectiveAnnualRate float64              `json:"effective_annual_rate"`
	InterestOnly        *InterestOnlySummary `json:"interest_only,omitempty"`
}

type InterestOnlySummary struct {
	NominalRate          float64 `json:"nominal_rate"`
	Years                float64 `json:"years"`
	Periods              int     `json:"periods"`
	PaymentPerPeriod     float64 `json:"payment_per_period"`
	TotalPayments        float64 `json:"total_payments"`
	ShareOfTotalInterest float64 `json:"share_of_total_interest"`
}

// LoanInput is a calculation request. Frequency may be a name or a period
// count; TotalPayment and AdditionalPayment are optional.
type LoanInput struct {
	Principal         float64        `json:"principal" validate:"gt=0"`
	NominalRate       float64        `json:"nominal_rate" validate:"gte=0"`
	Years             float64        `json:"years" validate:"gt=0"`
	Frequency         FrequencyValue `json:"frequency"`
	InterestOnlyRate  float64        `json:"interest_only_rate,omitempty" validate:"gte=0"`
	InterestOnlyYears float64        `json:"interest_only_years,omitempty" validate:"gte=0"`
	TotalPayment      float64        `json:"total_payment,omitempty" validate:"gte=0"`
	AdditionalPayment float64        `json:"additional_payment,omitempty" validate:"gte=0"`
}

// LoanResult is a computed amortization as stored and returned by the API.
type LoanResult struct {
	ID         string         `json:"id"`
	Parameters LoanParameters `json:"parameters"`
	Summary    Summary        `json:"summary"`
	Schedule   Schedule       `json:"schedule"`
}
