package grid

import "github.com/lifnux/lifnux/internal/dateutil"

// GridDays is the size of the five-week calendar view.
const GridDays = 35

// BuildGrid returns the 35 consecutive dates of the five-week view around
// anchor: one week of context before the anchor's week, the anchor's week
// itself, and three weeks after. The grid always starts on a Monday, so
// index 7 is the Monday of the anchor's week.
func BuildGrid(anchor string) []string {
	gridStart := dateutil.AddDays(dateutil.StartOfWeekMonday(anchor), -7)

	dates := make([]string, 0, GridDays)
	for i := 0; i < GridDays; i++ {
		dates = append(dates, dateutil.AddDays(gridStart, i))
	}
	return dates
}
