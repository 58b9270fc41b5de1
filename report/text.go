package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"loan-amortizer/domain"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingRight(2)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)
)

// Text renders the summary as a bordered block.
func Text(s domain.Summary) string {
	sections := []string{
		titleStyle.Render("Amortization Schedule"),
		block(summaryLines(s)),
	}
	if io := interestOnlyLines(s); io != nil {
		sections = append(sections,
			labelStyle.Render(strings.Repeat("─", 4)),
			block(io),
		)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func block(lines []line) string {
	labels := make([]string, len(lines))
	values := make([]string, len(lines))
	for i, l := range lines {
		labels[i] = labelStyle.Render(l.label + ":")
		values[i] = valueStyle.Render(l.value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, labels...),
		lipgloss.JoinVertical(lipgloss.Left, values...),
	)
}

// ScheduleTable renders every period of the schedule as a table with the
// export column names as headers.
func ScheduleTable(schedule domain.Schedule) string {
	rows := make([][]string, 0, len(schedule))
	for _, r := range schedule {
		rows = append(rows, []string{
			strconv.Itoa(r.Period),
			printer.Sprintf("%.2f", r.OpeningBalance),
			printer.Sprintf("%.2f", r.Interest),
			printer.Sprintf("%.2f", r.Principal),
			printer.Sprintf("%.2f", r.PeriodPayment),
			printer.Sprintf("%.2f", r.ClosingBalance),
			printer.Sprintf("%.2f", r.CumulativeInterest),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(domain.ScheduleColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// ComparisonTable lists scenarios in ranked order.
func ComparisonTable(result domain.ComparisonResult) string {
	rows := make([][]string, 0, len(result.Scenarios))
	for i, sc := range result.Scenarios {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			sc.Label,
			title(sc.Summary.FrequencyName),
			count(sc.Summary.Periods),
			money(sc.Summary.MinimumPayment),
			money(sc.Summary.TotalInterest),
			printer.Sprintf("%.2f", sc.Score),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("#", "scenario", "frequency", "periods", "minimum payment", "total interest", "score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
