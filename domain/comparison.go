package domain

// ComparisonInput asks for a base loan to be re-run under alternative terms,
// rates or frequencies.
type ComparisonInput struct {
	Loan         LoanInput        `json:"loan"`
	Years        []float64        `json:"years,omitempty" validate:"dive,gt=0"`
	NominalRates []float64        `json:"nominal_rates,omitempty" validate:"dive,gte=0"`
	Frequencies  []FrequencyValue `json:"frequencies,omitempty"`
	MaxPayment   float64          `json:"max_payment,omitempty" validate:"gte=0"`
	Preference   string           `json:"preference" validate:"omitempty,oneof=minimize_interest minimize_payment balanced"`
}

type Scenario struct {
	Label   string  `json:"label"`
	Summary Summary `json:"summary"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}

type ComparisonResult struct {
	Recommended Scenario   `json:"recommended"`
	Scenarios   []Scenario `json:"scenarios"`
}
