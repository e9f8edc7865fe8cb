package event

import "sort"

// SortDateEventsForDisplay orders date events by importance descending,
// ties broken by ascending CreatedAt so the earlier-created entry stays
// visible preferentially during eviction.
func SortDateEventsForDisplay(events []DateEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Importance != events[j].Importance {
			return events[i].Importance > events[j].Importance
		}
		return events[i].CreatedAt < events[j].CreatedAt
	})
}

// SortTimedEventsByStart orders timed events by ascending start offset.
func SortTimedEventsByStart(events []TimedEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartMin < events[j].StartMin
	})
}
