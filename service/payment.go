package service

import (
	"fmt"
	"math"

	"loan-amortizer/domain"
)

// TotalPeriodPayment returns the PMT needed to amortize principal over n
// periods at rate r per period:
//
//	payment = principal * r * (1+r)^n / ((1+r)^n - 1)
//
// At r == 0 the payment is principal / n.
func TotalPeriodPayment(principal, ratePerPeriod float64, periods int) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("%w: %d principal-paying periods", domain.ErrArithmeticDegenerate, periods)
	}
	if ratePerPeriod == 0 {
		return principal / float64(periods), nil
	}

	factor := math.Pow(1+ratePerPeriod, float64(periods))
	denominator := factor - 1
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: rate %g over %d periods", domain.ErrArithmeticDegenerate, ratePerPeriod, periods)
	}
	payment := principal * (ratePerPeriod * factor) / denominator
	if math.IsInf(payment, 0) || math.IsNaN(payment) {
		return 0, fmt.Errorf("%w: payment on %g at rate %g over %d periods is not finite",
			domain.ErrArithmeticDegenerate, principal, ratePerPeriod, periods)
	}
	return payment, nil
}

// InterestPayment is the IPMT for a period opening at balance.
func InterestPayment(balance, ratePerPeriod float64) float64 {
	return balance * ratePerPeriod
}

// PrincipalPayment is the PPMT: whatever part of payment is not interest.
func PrincipalPayment(payment, balance, ratePerPeriod float64) float64 {
	return payment - InterestPayment(balance, ratePerPeriod)
}

// PrincipalAndInterest splits payment into its principal and interest
// portions, interest being charged on the opening balance.
func PrincipalAndInterest(payment, balance, ratePerPeriod float64) (principal, interest float64) {
	return PrincipalPayment(payment, balance, ratePerPeriod), InterestPayment(balance, ratePerPeriod)
}
