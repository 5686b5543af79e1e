package fondue

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Duration parse failures. ParseDuration wraps these with the offending
// input, so match with errors.Is.
var (
	ErrDurationEmpty         = errors.New("fondue: empty duration string")
	ErrDurationMissingUnit   = errors.New("fondue: missing time unit in duration")
	ErrDurationInvalidNumber = errors.New("fondue: invalid number in duration")
	ErrDurationUnknownUnit   = errors.New("fondue: unknown time unit in duration")
)

var durationUnits = map[string]time.Duration{
	"ns":           time.Nanosecond,
	"nanosecond":   time.Nanosecond,
	"nanoseconds":  time.Nanosecond,
	"us":           time.Microsecond,
	"µs":           time.Microsecond,
	"μs":           time.Microsecond,
	"microsecond":  time.Microsecond,
	"microseconds": time.Microsecond,
	"ms":           time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"sec":          time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"min":          time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hr":           time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            24 * time.Hour,
	"day":          24 * time.Hour,
	"days":         24 * time.Hour,
}

// ParseDuration parses a human-friendly duration for use in TTL
// policies: "500ms", "1.5h", "2 days", "10 S". The numeric part may be
// fractional and must not be negative; the unit is case-insensitive and
// may be separated from the number by whitespace.
//
// Compared to time.ParseDuration it accepts long unit names and days,
// but only a single number-unit pair: "1h30m" is rejected.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrDurationEmpty
	}
	split := strings.IndexFunc(s, unicode.IsLetter)
	if split < 0 {
		return 0, fmt.Errorf("%w: %q", ErrDurationMissingUnit, s)
	}

	numStr := strings.TrimSpace(s[:split])
	unitStr := strings.ToLower(strings.TrimSpace(s[split:]))

	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil || num < 0 {
		return 0, fmt.Errorf("%w: %q", ErrDurationInvalidNumber, numStr)
	}
	unit, ok := durationUnits[unitStr]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrDurationUnknownUnit, unitStr)
	}
	return time.Duration(math.Round(num * float64(unit))), nil
}
