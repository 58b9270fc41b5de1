// Package export writes amortization schedules as delimited tables. The
// column names and their order are fixed by domain.ScheduleColumns.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatTSV Format = "tsv"
)

// DefaultPrecision is the number of decimal places written for amounts.
const DefaultPrecision = 2

type Options struct {
	Format Format
	// Precision of monetary columns; negative writes the full value.
	Precision int
}

func (f Format) ContentType() string {
	if f == FormatTSV {
		return "text/tab-separated-values"
	}
	return "text/csv"
}

func (f Format) Extension() string {
	if f == FormatTSV {
		return ".tsv"
	}
	return ".csv"
}

// ParseFormat maps "", "csv" and "tsv" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatTSV):
		return FormatTSV, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// WriteSchedule writes a header row followed by one row per period.
func WriteSchedule(w io.Writer, schedule domain.Schedule, opts Options) error {
	cw := csv.NewWriter(w)
	if opts.Format == FormatTSV {
		cw.Comma = '\t'
	}

	if err := cw.Write(domain.ScheduleColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range schedule {
		record := []string{
			strconv.Itoa(row.Period),
			amount(row.OpeningBalance, opts.Precision),
			amount(row.Interest, opts.Precision),
			amount(row.Principal, opts.Precision),
			amount(row.PeriodPayment, opts.Precision),
			amount(row.ClosingBalance, opts.Precision),
			amount(row.CumulativeInterest, opts.Precision),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write period %d: %w", row.Period, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func amount(v float64, precision int) string {
	d := decimal.NewFromFloat(v)
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(int32(precision))
}
