package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-amortizer/domain"
	"loan-amortizer/report"
	"loan-amortizer/service"
)

var compareFlags struct {
	years       []float64
	rates       []float64
	frequencies []string
	maxPayment  float64
	preference  string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank the loan against alternative terms, rates and frequencies",
	Example: `  amortize compare --principal 400000 --rate 0.05 --years 30 \
    --alt-years 20,25 --alt-rates 0.045 --alt-frequencies fortnightly`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.ComparisonInput{
			Loan:         loanInput(),
			Years:        compareFlags.years,
			NominalRates: compareFlags.rates,
			MaxPayment:   compareFlags.maxPayment,
			Preference:   compareFlags.preference,
		}
		for _, f := range compareFlags.frequencies {
			input.Frequencies = append(input.Frequencies, domain.FrequencyValue{Spec: domain.ParseFrequencySpecifier(f)})
		}

		result, err := service.NewComparisonService(newLoanService()).Compare(input)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.ComparisonTable(result))
		fmt.Fprintf(out, "Recommended: %s (%s)\n", result.Recommended.Label, result.Recommended.Reason)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	f := compareCmd.Flags()
	f.Float64SliceVar(&compareFlags.years, "alt-years", nil, "alternative terms in years")
	f.Float64SliceVar(&compareFlags.rates, "alt-rates", nil, "alternative nominal annual rates")
	f.StringSliceVar(&compareFlags.frequencies, "alt-frequencies", nil, "alternative repayment frequencies")
	f.Float64Var(&compareFlags.maxPayment, "max-payment", 0, "drop scenarios whose minimum payment is higher")
	f.StringVar(&compareFlags.preference, "preference", service.PreferenceBalanced,
		"minimize_interest, minimize_payment or balanced")
}
