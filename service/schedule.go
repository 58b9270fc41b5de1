package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

// balancePlaces is the rounding applied to every closing balance so float
// residue does not survive into the next period.
const balancePlaces = 6

// ScheduleOptions are the optional inputs of GenerateSchedule. Zero values
// mean "not supplied".
type ScheduleOptions struct {
	// TotalPayment overrides the per-period payment. It is clamped up to the
	// minimum required payment.
	TotalPayment float64
	// AdditionalPayment is added on top of the (clamped) payment.
	AdditionalPayment float64

	InterestOnlyRatePerPeriod float64
	InterestOnlyPeriods       int
}

func (o ScheduleOptions) interestOnly() bool {
	return o.InterestOnlyRatePerPeriod > 0 && o.InterestOnlyPeriods > 0
}

func (o ScheduleOptions) validate() error {
	if (o.InterestOnlyRatePerPeriod > 0) != (o.InterestOnlyPeriods > 0) {
		return fmt.Errorf("%w: rate per period %g, periods %d",
			domain.ErrInconsistentInterestOnlyConfig, o.InterestOnlyRatePerPeriod, o.InterestOnlyPeriods)
	}
	if o.InterestOnlyRatePerPeriod < 0 || o.InterestOnlyPeriods < 0 {
		return fmt.Errorf("%w: negative interest-only value", domain.ErrInvalidParameter)
	}
	if o.TotalPayment < 0 {
		return fmt.Errorf("%w: total payment %g", domain.ErrInvalidParameter, o.TotalPayment)
	}
	if o.AdditionalPayment < 0 {
		return fmt.Errorf("%w: additional payment %g", domain.ErrInvalidParameter, o.AdditionalPayment)
	}
	return nil
}

// GenerateSchedule builds the period-by-period amortization of principal over
// the given number of periods. The schedule ends early once the balance
// reaches zero.
func GenerateSchedule(ratePerPeriod, principal float64, periods int, opts ScheduleOptions) (domain.Schedule, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	minimum, err := TotalPeriodPayment(principal, ratePerPeriod, periods-opts.InterestOnlyPeriods)
	if err != nil {
		return nil, err
	}

	payment := max(opts.TotalPayment, minimum)
	payment += opts.AdditionalPayment

	interestOnly := opts.interestOnly()
	schedule := make(domain.Schedule, 0, periods)
	opening := principal

	for period := 1; period <= periods; period++ {
		var principalPart, interest, periodPayment float64

		if interestOnly && period <= opts.InterestOnlyPeriods {
			interest = InterestPayment(opening, opts.InterestOnlyRatePerPeriod)
			periodPayment = interest
		} else {
			principalPart, interest = PrincipalAndInterest(payment, opening, ratePerPeriod)
			periodPayment = payment
		}

		closing := opening - principalPart
		if closing < 0 || period == periods {
			// Final payment only clears what is left.
			principalPart = opening
			closing = 0
			periodPayment = principalPart + interest
		}
		closing = roundBalance(closing)

		schedule = append(schedule, domain.PeriodRow{
			Period:         period,
			OpeningBalance: opening,
			Interest:       interest,
			Principal:      principalPart,
			PeriodPayment:  periodPayment,
			ClosingBalance: closing,
		})

		opening = closing
		if opening <= 0 {
			break
		}
	}

	var remaining float64
	for i := len(schedule) - 1; i >= 0; i-- {
		remaining += schedule[i].Interest
		schedule[i].CumulativeInterest = remaining
	}

	return schedule, nil
}

func roundBalance(v float64) float64 {
	return decimal.NewFromFloat(v).Round(balancePlaces).InexactFloat64()
}
