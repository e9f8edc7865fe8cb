package snapshot

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
)

// HolidayCategoryID is the fixed id of the built-in holiday category.
// Seeded holidays reference it and it can never be deleted.
const HolidayCategoryID = "cat_holiday"

// DefaultCategories is the starter category set written on first run.
func DefaultCategories() []category.Category {
	return []category.Category{
		{ID: HolidayCategoryID, Name: "Holiday", Color: "#ff4d4f", IsSystem: true, IsEnabled: true},
		{ID: "cat_general", Name: "General", Color: "#9aa0a6", IsEnabled: true},
		{ID: "cat_work", Name: "Work", Color: "#3b82f6", IsEnabled: true},
		{ID: "cat_meet", Name: "Meeting", Color: "#a855f7", IsEnabled: true},
		{ID: "cat_run", Name: "Running", Color: "#22c55e", IsEnabled: true},
	}
}

var fixedHolidays = []struct {
	monthDay string
	name     string
}{
	{"01-01", "New Year's Day"},
	{"03-01", "Independence Movement Day"},
	{"05-05", "Children's Day"},
	{"06-06", "Memorial Day"},
	{"08-15", "Liberation Day"},
	{"10-03", "National Foundation Day"},
	{"10-09", "Hangul Day"},
	{"12-25", "Christmas Day"},
}

// FixedHolidays returns the eight fixed-date public holidays of one year
// as system date events. createdAtBase keeps their relative order stable.
func FixedHolidays(year int, createdAtBase int64) []event.DateEvent {
	events := make([]event.DateEvent, 0, len(fixedHolidays))
	for i, h := range fixedHolidays {
		events = append(events, event.DateEvent{
			ID:         uuid.New().String(),
			Date:       fmt.Sprintf("%04d-%s", year, h.monthDay),
			Title:      h.name,
			CategoryID: HolidayCategoryID,
			Importance: event.ImportanceMiddle,
			IsSystem:   true,
			IsEnabled:  true,
			CreatedAt:  createdAtBase + int64(i),
		})
	}
	return events
}
