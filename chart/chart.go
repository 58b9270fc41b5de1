// Package chart turns a schedule into stacked bar chart data and renders it.
package chart

import (
	"fmt"

	"loan-amortizer/domain"
)

type Kind string

const (
	KindBalances   Kind = "balances"
	KindRepayments Kind = "repayments"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBalances, KindRepayments:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown chart %q, want %s or %s", s, KindBalances, KindRepayments)
}

// Series is one stacked layer: a value per period.
type Series struct {
	Name   string    `json:"name"`
	Column string    `json:"column"`
	Values []float64 `json:"values"`
}

type Layout struct {
	Title       string `json:"title"`
	XAxisTitle  string `json:"xaxis_title"`
	YAxisTitle  string `json:"yaxis_title"`
	LegendTitle string `json:"legend_title"`
}

// StackedBar is a chart whose series are drawn on top of each other, first
// series at the bottom.
type StackedBar struct {
	Layout  Layout   `json:"layout"`
	Periods []int    `json:"periods"`
	Series  []Series `json:"series"`
}

// PeriodBalances stacks the opening balance and the interest still to be paid.
func PeriodBalances(schedule domain.Schedule) StackedBar {
	opening := make([]float64, len(schedule))
	cumulative := make([]float64, len(schedule))
	for i, r := range schedule {
		opening[i] = r.OpeningBalance
		cumulative[i] = r.CumulativeInterest
	}
	return StackedBar{
		Layout: Layout{
			Title:       "Amortization Period Balances Over Time (n)",
			XAxisTitle:  "n - Number of Repayment Periods",
			YAxisTitle:  "Period Balances ($)",
			LegendTitle: "Legend",
		},
		Periods: periods(schedule),
		Series: []Series{
			{Name: "Outstanding Principal ($)", Column: "opening_balance", Values: opening},
			{Name: "Cumulative Interest Payable ($)", Column: "cumulative_interest", Values: cumulative},
		},
	}
}

// PeriodRepayments stacks the principal and interest portion of each payment.
func PeriodRepayments(schedule domain.Schedule) StackedBar {
	principal := make([]float64, len(schedule))
	interest := make([]float64, len(schedule))
	for i, r := range schedule {
		principal[i] = r.Principal
		interest[i] = r.Interest
	}
	return StackedBar{
		Layout: Layout{
			Title:       "Amortization Period Repayments Over Time (n)",
			XAxisTitle:  "n - Number of Repayment Periods",
			YAxisTitle:  "Period Payments ($)",
			LegendTitle: "Legend",
		},
		Periods: periods(schedule),
		Series: []Series{
			{Name: "Principal Payment ($)", Column: "principal", Values: principal},
			{Name: "Interest Payment ($)", Column: "interest", Values: interest},
		},
	}
}

func For(kind Kind, schedule domain.Schedule) (StackedBar, error) {
	switch kind {
	case KindBalances:
		return PeriodBalances(schedule), nil
	case KindRepayments:
		return PeriodRepayments(schedule), nil
	}
	return StackedBar{}, fmt.Errorf("unknown chart %q", kind)
}

// MaxStack is the tallest bar, the sum of every series at one period.
func (c StackedBar) MaxStack() float64 {
	var best float64
	for i := range c.Periods {
		var sum float64
		for _, s := range c.Series {
			sum += s.Values[i]
		}
		best = max(best, sum)
	}
	return best
}

func periods(schedule domain.Schedule) []int {
	out := make([]int, len(schedule))
	for i, r := range schedule {
		out[i] = r.Period
	}
	return out
}
