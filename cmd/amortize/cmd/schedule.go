package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"loan-amortizer/export"
	"loan-amortizer/report"
)

var scheduleFormat string

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"table"},
	Short:   "Print the full amortization schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calculate(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch scheduleFormat {
		case "table":
			fmt.Fprintln(out, report.ScheduleTable(result.Schedule))
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		format, err := export.ParseFormat(scheduleFormat)
		if err != nil {
			return err
		}
		return export.WriteSchedule(out, result.Schedule, export.Options{
			Format:    format,
			Precision: cfg.Export.Precision,
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringVar(&scheduleFormat, "format", "table", "table, csv, tsv or json")
}
