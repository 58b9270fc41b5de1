package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-amortizer/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScheduleCommand_CSV(t *testing.T) {
	out, err := run(t, "schedule",
		"--principal", "12000", "--rate", "0", "--years", "1",
		"--frequency", "monthly", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, strings.Join(domain.ScheduleColumns, ","), lines[0])
	assert.Equal(t, "1,12000.00,0.00,1000.00,1000.00,11000.00,0.00", lines[1])
}

func TestScheduleCommand_InvalidFrequency(t *testing.T) {
	out, err := run(t, "schedule",
		"--principal", "12000", "--rate", "0.05", "--years", "1",
		"--frequency", "daily", "--format", "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
	assert.Equal(t, 1, strings.Count(out, "Error:"), out)
	assert.Contains(t, out, "calculation failed")
}

func TestLoanInput_PeriodCount(t *testing.T) {
	loanFlags.frequency = "26"
	defer func() { loanFlags.frequency = "" }()

	assert.Equal(t, domain.PeriodCount(26), loanInput().Frequency.Spec)
}
