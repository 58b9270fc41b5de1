package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-amortizer/domain"
)

func newMortgage(t *testing.T) *Amortization {
	t.Helper()
	a, err := GenerateAmortizationSchedule(0.04, 500_000, 30, nil, 0, 0)
	require.NoError(t, err)
	return a
}

func TestGenerateAmortizationSchedule_Defaults(t *testing.T) {
	a := newMortgage(t)

	assert.Equal(t, domain.Monthly, a.Frequency())
	assert.Equal(t, "monthly", a.FrequencyName())
	assert.Equal(t, 360, a.Periods())
	assert.InDelta(t, 0.04/12, a.RatePerPeriod(), 1e-15)
	assert.InDelta(t, 2387.08, a.MinimumPayment(), 0.01)
	assert.False(t, a.HasInterestOnly())
	assert.Equal(t, 0, a.InterestOnlyPeriods())

	schedule := a.Schedule()
	assert.Len(t, schedule, 360)
	last, _ := schedule.Last()
	assert.InDelta(t, 0, last.ClosingBalance, 0.005)

	assert.InDelta(t, a.Principal()+a.TotalInterest(), a.TotalOutstandingBalance(), 1e-9)
	assert.InDelta(t, a.TotalInterest()/500_000, a.InterestToPrincipal(), 1e-12)
	assert.InDelta(t, math.Pow(1+0.04/12, 12)-1, a.EffectiveAnnualRate(), 1e-12)
}

func TestGenerateAmortizationSchedule_Frequencies(t *testing.T) {
	tests := []struct {
		spec    domain.FrequencySpecifier
		periods int
		name    string
	}{
		{domain.FrequencyName("weekly"), 1560, "weekly"},
		{domain.FrequencyName("Fortnightly"), 780, "fortnightly"},
		{domain.PeriodCount(12), 360, "monthly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := GenerateAmortizationSchedule(0.04, 500_000, 30, tt.spec, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.periods, a.Periods())
			assert.Equal(t, tt.name, a.FrequencyName())
			assert.Len(t, a.Schedule(), tt.periods)
		})
	}
}

func TestGenerateAmortizationSchedule_InvalidInput(t *testing.T) {
	_, err := GenerateAmortizationSchedule(0.04, 500_000, 30, domain.FrequencyName("daily"), 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)

	_, err = GenerateAmortizationSchedule(0.04, 500_000, 30, domain.PeriodCount(7), 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)

	_, err = GenerateAmortizationSchedule(0.04, 0, 30, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = GenerateAmortizationSchedule(-0.01, 500_000, 30, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	// Less than half a period rounds down to no periods at all.
	_, err = GenerateAmortizationSchedule(0.04, 500_000, 0.01, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrArithmeticDegenerate)
}

func TestGenerateAmortizationSchedule_FractionalYears(t *testing.T) {
	a, err := GenerateAmortizationSchedule(0.04, 100_000, 2.49, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, a.Periods())
	assert.Len(t, a.Schedule(), 30)
}

func TestGenerateAmortizationSchedule_ZeroRate(t *testing.T) {
	a, err := GenerateAmortizationSchedule(0, 12_000, 1, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, a.MinimumPayment())
	assert.Equal(t, 0.0, a.TotalInterest())
	assert.Equal(t, 0.0, a.EffectiveAnnualRate())
	assert.Equal(t, 0.0, a.InterestOnlyShareOfTotalInterest())
}

func TestAmortization_InterestOnly(t *testing.T) {
	a, err := GenerateAmortizationSchedule(0.04, 500_000, 30, nil, 0.045, 2)
	require.NoError(t, err)

	assert.True(t, a.HasInterestOnly())
	assert.Equal(t, 24, a.InterestOnlyPeriods())
	assert.InDelta(t, 1875, a.InterestOnlyPaymentPerPeriod(), 1e-9)
	assert.InDelta(t, 45_000, a.TotalInterestOnlyPayments(), 1e-6)
	assert.InDelta(t, 45_000/a.TotalInterest(), a.InterestOnlyShareOfTotalInterest(), 1e-12)

	expected, err := TotalPeriodPayment(500_000, 0.04/12, 336)
	require.NoError(t, err)
	assert.InDelta(t, expected, a.MinimumPayment(), 1e-9)

	summary := a.Summary()
	require.NotNil(t, summary.InterestOnly)
	assert.Equal(t, 24, summary.InterestOnly.Periods)
	assert.Equal(t, 0.045, summary.InterestOnly.NominalRate)
}

func TestAmortization_InterestOnlyNeedsBothValues(t *testing.T) {
	plain := newMortgage(t)

	a, err := GenerateAmortizationSchedule(0.04, 500_000, 30, nil, 0.045, 0)
	require.NoError(t, err)
	assert.False(t, a.HasInterestOnly())
	assert.Equal(t, 0.0, a.InterestOnlyPaymentPerPeriod())
	assert.Nil(t, a.Summary().InterestOnly)
	assert.Equal(t, plain.Schedule(), a.Schedule())

	a, err = GenerateAmortizationSchedule(0.04, 500_000, 30, nil, 0, 2)
	require.NoError(t, err)
	assert.False(t, a.HasInterestOnly())
	assert.Equal(t, plain.Schedule(), a.Schedule())
}

func TestAmortization_InterestOnlyCoveringTerm(t *testing.T) {
	_, err := GenerateAmortizationSchedule(0.04, 500_000, 5, nil, 0.045, 5)
	assert.ErrorIs(t, err, domain.ErrArithmeticDegenerate)
}

func TestAmortization_SetAndWith(t *testing.T) {
	t.Run("With leaves the receiver untouched", func(t *testing.T) {
		a := newMortgage(t)
		before := a.Schedule()

		b, err := a.WithYears(15)
		require.NoError(t, err)
		assert.Equal(t, 180, b.Periods())
		assert.Len(t, b.Schedule(), 180)

		assert.Equal(t, 30.0, a.Years())
		assert.Equal(t, before, a.Schedule())
	})

	t.Run("Set regenerates in place", func(t *testing.T) {
		a := newMortgage(t)
		require.NoError(t, a.SetYears(15))
		assert.Equal(t, 15.0, a.Years())
		assert.Len(t, a.Schedule(), 180)

		require.NoError(t, a.SetNominalRate(0.05))
		assert.Equal(t, 0.05, a.NominalRate())
		assert.InDelta(t, 0.05/12, a.RatePerPeriod(), 1e-15)

		require.NoError(t, a.SetRepaymentFrequency(domain.FrequencyName("weekly")))
		assert.Equal(t, domain.Weekly, a.Frequency())
		assert.Len(t, a.Schedule(), 780)

		require.NoError(t, a.SetInterestOnly(0.045, 1))
		assert.Equal(t, 52, a.InterestOnlyPeriods())
	})

	t.Run("nil frequency keeps the current one", func(t *testing.T) {
		a := newMortgage(t)
		require.NoError(t, a.SetRepaymentFrequency(nil))
		assert.Equal(t, domain.Monthly, a.Frequency())

		b, err := a.WithRepaymentFrequency(domain.PeriodCount(26))
		require.NoError(t, err)
		assert.Equal(t, domain.Fortnightly, b.Frequency())
		assert.Equal(t, domain.Monthly, a.Frequency())
	})

	t.Run("failed Set leaves the entity unchanged", func(t *testing.T) {
		a := newMortgage(t)
		before := a.Schedule()

		assert.ErrorIs(t, a.SetYears(-1), domain.ErrInvalidParameter)
		assert.ErrorIs(t, a.SetRepaymentFrequency(domain.FrequencyName("daily")), domain.ErrInvalidFrequency)
		assert.ErrorIs(t, a.SetInterestOnly(0.045, 30), domain.ErrArithmeticDegenerate)

		assert.Equal(t, 30.0, a.Years())
		assert.Equal(t, domain.Monthly, a.Frequency())
		assert.False(t, a.HasInterestOnly())
		assert.Equal(t, before, a.Schedule())
	})

	t.Run("failed With returns nil", func(t *testing.T) {
		a := newMortgage(t)
		b, err := a.WithNominalRate(-1)
		assert.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestAmortization_Copy(t *testing.T) {
	a := newMortgage(t)
	c := a.Copy()
	assert.Equal(t, a.Parameters(), c.Parameters())
	assert.Equal(t, a.Schedule(), c.Schedule())

	require.NoError(t, c.SetNominalRate(0.06))
	assert.Equal(t, 0.04, a.NominalRate())
	assert.NotEqual(t, a.Schedule(), c.Schedule())
}

func TestAmortization_ScheduleIsACopy(t *testing.T) {
	a := newMortgage(t)
	s := a.Schedule()
	s[0].Interest = -1
	assert.NotEqual(t, -1.0, a.Schedule()[0].Interest)
}

func TestAmortization_ScheduleWith(t *testing.T) {
	a := newMortgage(t)

	custom, err := a.ScheduleWith(PaymentOptions{AdditionalPayment: 1000})
	require.NoError(t, err)
	assert.Less(t, len(custom), 360)
	assert.Len(t, a.Schedule(), 360)

	_, err = a.ScheduleWith(PaymentOptions{TotalPayment: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestNewAmortization_ZeroFrequencyIsMonthly(t *testing.T) {
	a, err := NewAmortization(domain.LoanParameters{NominalRate: 0.04, Principal: 500_000, Years: 30})
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, a.Frequency())

	_, err = NewAmortization(domain.LoanParameters{NominalRate: 0.04, Principal: 500_000, Years: 30, Frequency: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestAmortization_InterestOnlyRoundsToNoPeriods(t *testing.T) {
	plain := newMortgage(t)

	// 0.01 and 0.04 years are both under half a month.
	a, err := GenerateAmortizationSchedule(0.04, 500_000, 30, nil, 0.045, 0.01)
	require.NoError(t, err)
	assert.False(t, a.HasInterestOnly())
	assert.Equal(t, 0, a.InterestOnlyPeriods())
	assert.Equal(t, 0.0, a.TotalInterestOnlyPayments())
	assert.Nil(t, a.Summary().InterestOnly)
	assert.Equal(t, plain.Schedule(), a.Schedule())

	require.NoError(t, plain.SetInterestOnly(0.045, 0.04))
	assert.False(t, plain.HasInterestOnly())
	assert.Len(t, plain.Schedule(), 360)
	assert.Greater(t, plain.Schedule()[0].Principal, 0.0)
}
