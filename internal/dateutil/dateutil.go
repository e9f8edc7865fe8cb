package dateutil

import (
	"fmt"
	"time"
)

// Layout is the local calendar date format used across the application.
// Dates are plain local dates without a timezone component.
const Layout = "2006-01-02"

// DayOriginMin is the minute-of-day where a business day starts (07:00).
// Timed events carry minute offsets from this origin, not from midnight.
const DayOriginMin = 7 * 60

const minutesPerDay = 24 * 60

// FormatDate renders t as a local YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// ParseDate parses a local YYYY-MM-DD string. Malformed input yields the
// zero time and an error; callers that cannot fail treat the zero time as
// an invalid-date sentinel.
func ParseDate(ymd string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, ymd, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", ymd, err)
	}
	return t, nil
}

// AddDays shifts a YMD string by delta calendar days. Malformed input is
// passed through unchanged.
func AddDays(ymd string, delta int) string {
	t, err := ParseDate(ymd)
	if err != nil {
		return ymd
	}
	return FormatDate(t.AddDate(0, 0, delta))
}

// StartOfWeekMonday returns the Monday of the week containing ymd
// (Monday = offset 0 ... Sunday = offset 6).
func StartOfWeekMonday(ymd string) string {
	t, err := ParseDate(ymd)
	if err != nil {
		return ymd
	}
	offset := (int(t.Weekday()) + 6) % 7
	return FormatDate(t.AddDate(0, 0, -offset))
}

// Today returns the current local date as YMD.
func Today(now time.Time) string {
	return FormatDate(now)
}

// IsToday reports whether ymd equals the local date of now.
func IsToday(ymd string, now time.Time) bool {
	return ymd == FormatDate(now)
}

// DiffDays returns the number of calendar days from a to b (b - a).
// Malformed input yields 0.
func DiffDays(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return 0
	}
	// Compare date components only so DST shifts cannot skew the count.
	ta = time.Date(ta.Year(), ta.Month(), ta.Day(), 0, 0, 0, 0, time.UTC)
	tb = time.Date(tb.Year(), tb.Month(), tb.Day(), 0, 0, 0, 0, time.UTC)
	return int(tb.Sub(ta).Hours() / 24)
}

// FormatMD renders ymd as the short MM.DD caption used on calendar cells.
func FormatMD(ymd string) string {
	t, err := ParseDate(ymd)
	if err != nil {
		return ymd
	}
	return fmt.Sprintf("%02d.%02d", int(t.Month()), t.Day())
}

// MinutesToClock converts a minute offset from the 07:00 day origin into a
// zero-padded HH:MM wall-clock label, wrapping past midnight.
func MinutesToClock(offsetMin int) string {
	total := (DayOriginMin + offsetMin) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayLabel returns the Monday-first weekday header label for a column
// index 0..6, or "" when out of range.
func WeekdayLabel(idx int) string {
	if idx < 0 || idx >= len(weekdayLabels) {
		return ""
	}
	return weekdayLabels[idx]
}

// TimeOption is a selectable half-hour slot: a minute offset from the
// 07:00 origin and its clock label.
type TimeOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// TimeOptions lists the valid 30-minute start offsets 0, 30, ... 1410 with
// their clock labels. The slice is rebuilt on every call and is always
// identical.
func TimeOptions() []TimeOption {
	options := make([]TimeOption, 0, 48)
	for m := 0; m <= 1410; m += 30 {
		options = append(options, TimeOption{Value: m, Label: MinutesToClock(m)})
	}
	return options
}
