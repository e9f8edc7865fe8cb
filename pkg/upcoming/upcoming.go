package upcoming

import (
	"fmt"
	"sort"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/pkg/event"
)

const (
	DefaultWindowDays = 30
	DefaultLimit      = 10
)

type Kind string

const (
	KindDate  Kind = "DATE"
	KindTimed Kind = "TIMED"
)

// dateTimeRank places untimed entries before any clock time on the same
// date when sorting by StartMin.
const dateTimeRank = -1

// Entry is one item of the upcoming feed.
type Entry struct {
	Kind       Kind             `json:"kind"`
	ID         string           `json:"id"`
	Date       string           `json:"date"`
	StartMin   int              `json:"startMin"`
	Title      string           `json:"title"`
	CategoryID string           `json:"categoryId"`
	Importance event.Importance `json:"importance"`
	Location   string           `json:"location,omitempty"`
	DaysUntil  int              `json:"daysUntil"`
	DDay       string           `json:"dDay"`
}

// Rank produces the top entries of high importance within
// [today, today+windowDays], both endpoints inclusive. Entries are ordered
// by date, then start time with untimed entries first, then importance.
// The result is recomputed on every call.
func Rank(dateEvents []event.DateEvent, timedEvents []event.TimedEvent, today string, windowDays, limit int) []Entry {
	windowEnd := dateutil.AddDays(today, windowDays)

	entries := make([]Entry, 0)
	for _, e := range dateEvents {
		if !e.Importance.HighPlus() || !e.IsEnabled {
			continue
		}
		if e.Date < today || e.Date > windowEnd {
			continue
		}
		entries = append(entries, Entry{
			Kind:       KindDate,
			ID:         e.ID,
			Date:       e.Date,
			StartMin:   dateTimeRank,
			Title:      e.Title,
			CategoryID: e.CategoryID,
			Importance: e.Importance,
		})
	}
	for _, t := range timedEvents {
		if !t.Importance.HighPlus() {
			continue
		}
		if t.AnchorDate < today || t.AnchorDate > windowEnd {
			continue
		}
		entries = append(entries, Entry{
			Kind:       KindTimed,
			ID:         t.ID,
			Date:       t.AnchorDate,
			StartMin:   t.StartMin,
			Title:      t.Title,
			CategoryID: t.CategoryID,
			Importance: t.Importance,
			Location:   t.Location,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		if entries[i].StartMin != entries[j].StartMin {
			return entries[i].StartMin < entries[j].StartMin
		}
		return entries[i].Importance > entries[j].Importance
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	for i := range entries {
		entries[i].DaysUntil = dateutil.DiffDays(today, entries[i].Date)
		entries[i].DDay = DDayLabel(entries[i].DaysUntil)
	}
	return entries
}

// DDayLabel renders a countdown label: "D-Day" on the day itself, "D-n"
// for n days ahead, "D+n" for n days past.
func DDayLabel(daysUntil int) string {
	switch {
	case daysUntil == 0:
		return "D-Day"
	case daysUntil > 0:
		return fmt.Sprintf("D-%d", daysUntil)
	default:
		return fmt.Sprintf("D+%d", -daysUntil)
	}
}
