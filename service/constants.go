package service

const (
	MaxPrincipal   = 1_000_000_000.0
	MaxNominalRate = 10.0 // 1000% a year
	MaxYears       = 50.0

	// Alternatives evaluated by a single comparison request.
	MaxComparisonScenarios = 24

	cacheKeyPrefix = "amortization:"
)

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)
