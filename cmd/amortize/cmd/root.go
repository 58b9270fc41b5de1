package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-amortizer/config"
	"loan-amortizer/domain"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config

	loanFlags struct {
		principal         float64
		rate              float64
		years             float64
		frequency         string
		interestOnlyRate  float64
		interestOnlyYears float64
		payment           float64
		extra             float64
	}
)

var rootCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Loan amortization schedules from the command line",
	Long: `amortize computes the period-by-period breakdown of a loan:
principal, interest and balance for every repayment, optionally with an
initial interest-only phase.

Examples:
  amortize schedule --principal 500000 --rate 0.04 --years 30
  amortize report --principal 500000 --rate 0.04 --years 30 --io-rate 0.045 --io-years 2
  amortize export --principal 250000 --rate 0.05 --years 25 --frequency fortnightly --out plan.csv
  amortize chart --principal 250000 --rate 0.05 --years 25 --kind repayments`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			c.Log.Level = "debug"
		}
		c.ConfigureLogging()
		log.SetOutput(os.Stderr)
		cfg = c
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	f := rootCmd.PersistentFlags()
	f.Float64VarP(&loanFlags.principal, "principal", "p", 0, "principal amount")
	f.Float64VarP(&loanFlags.rate, "rate", "r", 0, "nominal annual interest rate as a fraction (0.0394 = 3.94%)")
	f.Float64VarP(&loanFlags.years, "years", "y", 30, "loan term in years")
	f.StringVarP(&loanFlags.frequency, "frequency", "f", "", "weekly|fortnightly|monthly or 52|26|12 (default monthly)")
	f.Float64Var(&loanFlags.interestOnlyRate, "io-rate", 0, "interest-only nominal annual rate")
	f.Float64Var(&loanFlags.interestOnlyYears, "io-years", 0, "interest-only years")
	f.Float64Var(&loanFlags.payment, "payment", 0, "payment per period, raised to the minimum when lower")
	f.Float64Var(&loanFlags.extra, "extra", 0, "additional payment per period")
}

func loanInput() domain.LoanInput {
	return domain.LoanInput{
		Principal:         loanFlags.principal,
		NominalRate:       loanFlags.rate,
		Years:             loanFlags.years,
		Frequency:         domain.FrequencyValue{Spec: domain.ParseFrequencySpecifier(loanFlags.frequency)},
		InterestOnlyRate:  loanFlags.interestOnlyRate,
		InterestOnlyYears: loanFlags.interestOnlyYears,
		TotalPayment:      loanFlags.payment,
		AdditionalPayment: loanFlags.extra,
	}
}

func newLoanService() *service.LoanService {
	return service.NewLoanService(
		repository.NewLoanRepositoryMemory(),
		repository.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL),
	)
}

// calculate runs the loan described by the flags.
func calculate(cmd *cobra.Command) (domain.LoanResult, error) {
	result, err := newLoanService().CalculateSchedule(cmd.Context(), loanInput())
	if err != nil {
		return domain.LoanResult{}, fmt.Errorf("calculation failed: %w", err)
	}
	return result, nil
}
