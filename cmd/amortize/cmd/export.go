package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-amortizer/export"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the schedule to a CSV or TSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		result, err := calculate(cmd)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = "amortization" + format.Extension()
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()

		if err := export.WriteSchedule(f, result.Schedule, export.Options{
			Format:    format,
			Precision: cfg.Export.Precision,
		}); err != nil {
			return err
		}
		log.WithFields(log.Fields{"path": path, "rows": len(result.Schedule)}).Info("schedule exported")
		return f.Close()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default amortization.<format>)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or tsv")
}
