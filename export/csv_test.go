package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-amortizer/domain"
)

var sample = domain.Schedule{
	{Period: 1, OpeningBalance: 1000, Interest: 10, Principal: 495.024875621, PeriodPayment: 505.024875621, ClosingBalance: 504.975124, CumulativeInterest: 15.049751},
	{Period: 2, OpeningBalance: 504.975124, Interest: 5.049751, Principal: 504.975124, PeriodPayment: 510.024875, ClosingBalance: 0, CumulativeInterest: 5.049751},
}

func TestWriteSchedule_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, sample, Options{Format: FormatCSV, Precision: DefaultPrecision}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "period,opening_balance,interest,principal,period_payment,closing_balance,cumulative_interest", lines[0])
	assert.Equal(t, "1,1000.00,10.00,495.02,505.02,504.98,15.05", lines[1])
	assert.Equal(t, "2,504.98,5.05,504.98,510.02,0.00,5.05", lines[2])
}

func TestWriteSchedule_TSVFullPrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, sample[:1], Options{Format: FormatTSV, Precision: -1}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(domain.ScheduleColumns, "\t"), lines[0])
	assert.Equal(t, "1\t1000\t10\t495.024875621\t505.024875621\t504.975124\t15.049751", lines[1])
}

func TestWriteSchedule_EmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, nil, Options{}))
	assert.Equal(t, strings.Join(domain.ScheduleColumns, ",")+"\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	assert.Equal(t, "text/csv", f.ContentType())
	assert.Equal(t, ".csv", f.Extension())

	f, err = ParseFormat("tsv")
	require.NoError(t, err)
	assert.Equal(t, ".tsv", f.Extension())

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}
