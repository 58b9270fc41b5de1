package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-amortizer/chart"
)

var (
	chartKind string
	chartOut  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a stacked bar chart of the schedule as PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := chart.ParseKind(chartKind)
		if err != nil {
			return err
		}
		result, err := calculate(cmd)
		if err != nil {
			return err
		}

		data, err := chart.For(kind, result.Schedule)
		if err != nil {
			return err
		}
		png, err := chart.RenderPNG(data, chart.DefaultStyle())
		if err != nil {
			return err
		}

		path := chartOut
		if path == "" {
			path = fmt.Sprintf("amortization-%s.png", kind)
		}
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.WithField("path", path).Info("chart written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&chartKind, "kind", string(chart.KindBalances), "balances or repayments")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file (default amortization-<kind>.png)")
}
