package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-amortizer/report"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the loan summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calculate(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch reportFormat {
		case "text":
			fmt.Fprintln(out, report.Text(result.Summary))
			return nil
		case "html":
			return report.WriteHTML(out, result.Summary)
		}
		return fmt.Errorf("unsupported report format %q", reportFormat)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "text or html")
}
