package day_view

import (
	"github.com/lifnux/lifnux/pkg/event"
)

// DisplayBudget is the hard slot budget of a calendar cell. High+ timed
// events are exempt from it; everything else competes for the slots.
const DisplayBudget = 5

// DayDisplay is the bounded display list for one calendar cell: the date
// events that survived eviction, the timed events that were admitted, and
// whether anything relevant was hidden. Date events render first (in
// importance order), then timed events in time order.
type DayDisplay struct {
	DateEvents  []event.DateEvent  `json:"dateEvents"`
	TimedEvents []event.TimedEvent `json:"timedEvents"`
	HasOverflow bool               `json:"hasOverflow"`
	TotalCount  int                `json:"totalCount"`
	ShownCount  int                `json:"shownCount"`
}

// Allocate selects which of a day's candidate events are shown directly
// in its cell. Inputs are the full candidate sets for a single date,
// already filtered to enabled events; they are not modified.
//
// Admission policy, in order:
//  1. High+ timed events are mandatory and always shown, even when they
//     alone exceed the budget.
//  2. All date events start in the working set, sorted by importance
//     descending with earlier-created entries winning ties.
//  3. While the working set exceeds the budget, LOW/MIDDLE date events
//     are evicted lowest-rank-first. HIGH/CRITICAL date events are as
//     protected as mandatory timed events, so eviction may stop with the
//     budget still exceeded.
//  4. Slots left over are filled with the remaining timed events in
//     ascending start order.
//
// Overflow is a first-class signal, not an error: HasOverflow is true iff
// some candidate did not make it into the cell.
func Allocate(dateEvents []event.DateEvent, timedEvents []event.TimedEvent) DayDisplay {
	shownDate := append([]event.DateEvent{}, dateEvents...)
	event.SortDateEventsForDisplay(shownDate)

	mandatory := make([]event.TimedEvent, 0, len(timedEvents))
	optional := make([]event.TimedEvent, 0, len(timedEvents))
	for _, t := range timedEvents {
		if t.Importance.HighPlus() {
			mandatory = append(mandatory, t)
		} else {
			optional = append(optional, t)
		}
	}
	event.SortTimedEventsByStart(mandatory)
	event.SortTimedEventsByStart(optional)

	if over := len(shownDate) + len(mandatory) - DisplayBudget; over > 0 {
		shownDate = evictDateEvents(shownDate, over)
	}

	shownTimed := mandatory
	if capacity := DisplayBudget - len(shownDate) - len(mandatory); capacity > 0 {
		if capacity > len(optional) {
			capacity = len(optional)
		}
		shownTimed = append(shownTimed, optional[:capacity]...)
		event.SortTimedEventsByStart(shownTimed)
	}

	total := len(dateEvents) + len(timedEvents)
	shown := len(shownDate) + len(shownTimed)

	return DayDisplay{
		DateEvents:  shownDate,
		TimedEvents: shownTimed,
		HasOverflow: total > shown,
		TotalCount:  total,
		ShownCount:  shown,
	}
}

// evictDateEvents removes up to over entries from the display-sorted date
// event list. Eviction order is a total order: only LOW/MIDDLE entries
// are eligible, lowest importance goes first, and among equals the
// later-created entry goes first. Because sorted is already in display
// order, that is exactly its eligible entries taken from the tail.
func evictDateEvents(sorted []event.DateEvent, over int) []event.DateEvent {
	eligible := make([]int, 0, len(sorted))
	for idx, e := range sorted {
		if !e.Importance.HighPlus() {
			eligible = append(eligible, idx)
		}
	}

	drop := over
	if drop > len(eligible) {
		drop = len(eligible)
	}
	if drop == 0 {
		return sorted
	}

	evicted := make(map[int]bool, drop)
	for _, idx := range eligible[len(eligible)-drop:] {
		evicted[idx] = true
	}

	kept := make([]event.DateEvent, 0, len(sorted)-drop)
	for idx, e := range sorted {
		if !evicted[idx] {
			kept = append(kept, e)
		}
	}
	return kept
}
