// Package report renders an amortization summary for people: a terminal
// friendly text block and an HTML fragment.
package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loan-amortizer/domain"
)

var printer = message.NewPrinter(language.English)

func money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func percent(fraction float64) string {
	return printer.Sprintf("%.2f%%", fraction*100)
}

func count(n int) string {
	return printer.Sprintf("%d", n)
}

func number(v float64) string {
	return printer.Sprintf("%v", v)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type line struct {
	label string
	value string
}

func summaryLines(s domain.Summary) []line {
	return []line{
		{"Principal Borrowed", money(s.Principal)},
		{"Years", number(s.Years)},
		{"Annual Interest Rate", percent(s.NominalRate)},
		{"Forecasted Total Interest", money(s.TotalInterest)},
		{"Repayment Frequency", title(s.FrequencyName) + " - " + count(s.Periods) + " Periods"},
		{"Minimum Repayments Per Period", money(s.MinimumPayment)},
		{"Effective Annual Interest Rate (EAR)", percent(s.EffectiveAnnualRate)},
		{"Total Interest / Total Principal", percent(s.InterestToPrincipal)},
	}
}

func interestOnlyLines(s domain.Summary) []line {
	io := s.InterestOnly
	if io == nil {
		return nil
	}
	return []line{
		{"Interest Only Repayments Per Period", money(io.PaymentPerPeriod)},
		{"Interest Only Annual Interest Rate", percent(io.NominalRate)},
		{"Forecasted Total Interest Only", money(io.TotalPayments)},
		{"Total Interest Only / Total Interest", percent(io.ShareOfTotalInterest)},
	}
}
