// Package clock implements an hours/minutes/seconds time span with simple
// arithmetic, formatted as "03h:20m:00s".
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFormat is returned when Parse cannot read its input.
var ErrBadFormat = errors.New("clock: bad time format")

// Time is a span of whole seconds. The zero value is 00h:00m:00s.
type Time struct {
	total int
}

// New creates a Time from a total number of seconds.
func New(totalSeconds int) Time {
	return Time{total: totalSeconds}
}

// FromHMS creates a Time from separate components.
func FromHMS(hours, minutes, seconds int) Time {
	return New(hours*3600 + minutes*60 + seconds)
}

// Seconds converts the time back to a total number of seconds.
func (t Time) Seconds() int {
	return t.total
}

// Hours returns the hour component (sign-less).
func (t Time) Hours() int {
	return abs(t.total) / 3600
}

// Minutes returns the minute component, 0-59.
func (t Time) Minutes() int {
	return abs(t.total) % 3600 / 60
}

// Secs returns the second component, 0-59.
func (t Time) Secs() int {
	return abs(t.total) % 60
}

// Negative reports whether the span is below zero.
func (t Time) Negative() bool {
	return t.total < 0
}

// Add returns t + other.
func (t Time) Add(other Time) Time {
	return New(t.total + other.total)
}

// Sub returns t - other. The result may be negative.
func (t Time) Sub(other Time) Time {
	return New(t.total - other.total)
}

// Mul scales the span by an integer factor.
func (t Time) Mul(factor int) Time {
	return New(t.total * factor)
}

// String formats as "HHh:MMm:SSs", with a leading '-' for negative spans.
func (t Time) String() string {
	sign := ""
	if t.Negative() {
		sign = "-"
	}
	return fmt.Sprintf("%s%02dh:%02dm:%02ds", sign, t.Hours(), t.Minutes(), t.Secs())
}

// Parse reads "10h:12m:01s". Any of the components may be left out, but the
// ones present must appear in h, m, s order. A bare integer is read as
// seconds, and a leading '-' negates the whole span.
func Parse(s string) (Time, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Time{}, fmt.Errorf("%w: empty input", ErrBadFormat)
	}

	if n, err := strconv.Atoi(text); err == nil {
		return New(n), nil
	}

	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	const units = "hms"
	weights := [3]int{3600, 60, 1}
	next := 0
	total := 0
	for _, part := range strings.Split(text, ":") {
		if len(part) < 2 {
			return Time{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
		}
		unit := strings.IndexByte(units, part[len(part)-1])
		if unit < next {
			// Unknown suffix, repeated unit or out-of-order unit.
			return Time{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
		}
		n, err := strconv.Atoi(part[:len(part)-1])
		if err != nil || n < 0 {
			return Time{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
		}
		total += n * weights[unit]
		next = unit + 1
	}

	if negative {
		total = -total
	}
	return New(total), nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
