package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Frequency is the number of repayment periods per year.
type Frequency int

const (
	Weekly      Frequency = 52
	Fortnightly Frequency = 26
	Monthly     Frequency = 12

	DefaultFrequency = Monthly
)

var frequencyNames = map[Frequency]string{
	Weekly:      "weekly",
	Fortnightly: "fortnightly",
	Monthly:     "monthly",
}

var frequencyByName = map[string]Frequency{
	"weekly":      Weekly,
	"fortnightly": Fortnightly,
	"monthly":     Monthly,
}

// PeriodsPerYear returns the period count as an int.
func (f Frequency) PeriodsPerYear() int {
	return int(f)
}

// Name returns the canonical lowercase name, or "" for an unknown frequency.
func (f Frequency) Name() string {
	return frequencyNames[f]
}

func (f Frequency) Valid() bool {
	_, ok := frequencyNames[f]
	return ok
}

func (f Frequency) String() string {
	if name := f.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// FrequencySpecifier is either a FrequencyName or a PeriodCount.
type FrequencySpecifier interface {
	resolve() (Frequency, error)
}

// FrequencyName specifies a frequency by name, case-insensitive.
type FrequencyName string

// PeriodCount specifies a frequency by its number of periods per year.
type PeriodCount float64

func (n FrequencyName) resolve() (Frequency, error) {
	f, ok := frequencyByName[strings.ToLower(strings.TrimSpace(string(n)))]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not one of weekly, fortnightly, monthly", ErrInvalidFrequency, string(n))
	}
	return f, nil
}

func (c PeriodCount) resolve() (Frequency, error) {
	v := float64(c)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %v is not one of 52, 26, 12", ErrInvalidFrequency, v)
	}
	f := Frequency(int(v))
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %v is not one of 52, 26, 12", ErrInvalidFrequency, v)
	}
	return f, nil
}

// ResolveFrequency converts a specifier into its canonical Frequency. A nil
// specifier is not resolvable; callers treat nil as "keep the current value".
func ResolveFrequency(spec FrequencySpecifier) (Frequency, error) {
	if spec == nil {
		return 0, fmt.Errorf("%w: no specifier given", ErrInvalidFrequency)
	}
	return spec.resolve()
}

// ParseFrequencySpecifier interprets free text from a flag or query string:
// numeric text becomes a PeriodCount, anything else a FrequencyName. Empty
// text yields nil.
func ParseFrequencySpecifier(s string) FrequencySpecifier {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return PeriodCount(v)
	}
	return FrequencyName(s)
}

// FrequencyValue carries an optional specifier through JSON. It accepts a
// string name, a number, or null.
type FrequencyValue struct {
	Spec FrequencySpecifier
}

func (v *FrequencyValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		v.Spec = nil
		return nil
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		v.Spec = ParseFrequencySpecifier(name)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFrequency, string(data))
	}
	v.Spec = PeriodCount(n)
	return nil
}

func (v FrequencyValue) MarshalJSON() ([]byte, error) {
	switch s := v.Spec.(type) {
	case nil:
		return []byte("null"), nil
	case FrequencyName:
		return json.Marshal(string(s))
	case PeriodCount:
		return json.Marshal(float64(s))
	default:
		return nil, fmt.Errorf("unsupported frequency specifier %T", s)
	}
}
