package status

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lifnux/lifnux/internal/dateutil"
)

// MinutesPerWorkDay converts between leave days and minutes: one working
// day is eight hours.
const MinutesPerWorkDay = 8 * 60

// Status tracks the employment and leave information shown on the
// calendar status bar. Leave time is kept in minutes internally.
type Status struct {
	CompanyName           string `json:"companyName"`
	IsEmployed            bool   `json:"isEmployed"`
	EmploymentStartDate   string `json:"employmentStartDate"`
	EmploymentEndDate     string `json:"employmentEndDate,omitempty"`
	RemainingLeaveMinutes int    `json:"remainingLeaveMinutes"`
}

// EmploymentDays returns the inclusive day count from the employment
// start date to today (while employed) or to the end date otherwise.
func (s Status) EmploymentDays(today string) int {
	if s.EmploymentStartDate == "" {
		return 0
	}
	end := today
	if !s.IsEmployed && strings.TrimSpace(s.EmploymentEndDate) != "" {
		end = s.EmploymentEndDate
	}
	diff := dateutil.DiffDays(s.EmploymentStartDate, end)
	if diff < 0 {
		return 0
	}
	return diff + 1
}

// Leave is the day/hour breakdown of a leave balance, with its canonical
// "<D>D <H>H" display label.
type Leave struct {
	Days  int    `json:"days"`
	Hours int    `json:"hours"`
	Label string `json:"label"`
}

var (
	bareNumberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	leaveDaysRe  = regexp.MustCompile(`(\d+(\.\d+)?)\s*d`)
	leaveHoursRe = regexp.MustCompile(`(\d+(\.\d+)?)\s*h`)
)

// ParseLeave converts free-text leave input like "3d", "1.5h", "3d 2h" or
// a bare number (interpreted as hours) into minutes. The result is
// floored to whole minutes and clamped to zero; unparseable input counts
// as zero.
func ParseLeave(input string) int {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0
	}

	if bareNumberRe.MatchString(s) {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return clampMinutes(hours * 60)
	}

	var days, hours float64
	if m := leaveDaysRe.FindStringSubmatch(s); m != nil {
		days, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := leaveHoursRe.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.ParseFloat(m[1], 64)
	}
	return clampMinutes(days*MinutesPerWorkDay + hours*60)
}

// FormatLeave breaks a minute balance into working days and hours.
func FormatLeave(minutes int) Leave {
	if minutes < 0 {
		minutes = 0
	}
	totalHours := minutes / 60
	days := totalHours / 8
	hours := totalHours % 8
	return Leave{
		Days:  days,
		Hours: hours,
		Label: fmt.Sprintf("%dD %dH", days, hours),
	}
}

func clampMinutes(minutes float64) int {
	if minutes < 0 {
		return 0
	}
	return int(minutes)
}
