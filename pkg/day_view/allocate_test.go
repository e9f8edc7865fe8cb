package day_view

import (
	"testing"

	"github.com/lifnux/lifnux/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-05-02"

func dateEvent(id string, importance event.Importance, createdAt int64) event.DateEvent {
	return event.DateEvent{
		ID:         id,
		Date:       testDate,
		Title:      id,
		CategoryID: "cat_general",
		Importance: importance,
		IsEnabled:  true,
		CreatedAt:  createdAt,
	}
}

func timedEvent(id string, importance event.Importance, startMin int) event.TimedEvent {
	return event.TimedEvent{
		ID:         id,
		AnchorDate: testDate,
		StartMin:   startMin,
		EndMin:     startMin + 30,
		Title:      id,
		CategoryID: "cat_general",
		Importance: importance,
		CreatedAt:  int64(startMin),
	}
}

func dateIDs(events []event.DateEvent) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func timedIDs(events []event.TimedEvent) []string {
	ids := make([]string, 0, len(events))
	for _, t := range events {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestAllocate_EverythingFits(t *testing.T) {
	display := Allocate(
		[]event.DateEvent{dateEvent("d1", event.ImportanceLow, 1)},
		[]event.TimedEvent{timedEvent("t1", event.ImportanceMiddle, 60)},
	)

	assert.Equal(t, []string{"d1"}, dateIDs(display.DateEvents))
	assert.Equal(t, []string{"t1"}, timedIDs(display.TimedEvents))
	assert.False(t, display.HasOverflow)
	assert.Equal(t, 2, display.TotalCount)
	assert.Equal(t, 2, display.ShownCount)
}

func TestAllocate_EmptyDay(t *testing.T) {
	display := Allocate(nil, nil)
	assert.Empty(t, display.DateEvents)
	assert.Empty(t, display.TimedEvents)
	assert.False(t, display.HasOverflow)
}

func TestAllocate_MandatoryTimedNeverEvicted(t *testing.T) {
	// Many LOW date events competing against High+ timed events: every
	// High+ timed event must survive no matter how crowded the day is.
	dateEvents := []event.DateEvent{
		dateEvent("d1", event.ImportanceLow, 1),
		dateEvent("d2", event.ImportanceLow, 2),
		dateEvent("d3", event.ImportanceLow, 3),
		dateEvent("d4", event.ImportanceLow, 4),
		dateEvent("d5", event.ImportanceLow, 5),
		dateEvent("d6", event.ImportanceLow, 6),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t-critical", event.ImportanceCritical, 120),
		timedEvent("t-high", event.ImportanceHigh, 60),
		timedEvent("t-low", event.ImportanceLow, 30),
	}

	display := Allocate(dateEvents, timedEvents)

	assert.Contains(t, timedIDs(display.TimedEvents), "t-high")
	assert.Contains(t, timedIDs(display.TimedEvents), "t-critical")
	assert.True(t, display.HasOverflow)
	assert.LessOrEqual(t, display.ShownCount, DisplayBudget)
}

func TestAllocate_MandatoryAloneMayExceedBudget(t *testing.T) {
	timedEvents := make([]event.TimedEvent, 0, 7)
	for i := 0; i < 7; i++ {
		timedEvents = append(timedEvents, timedEvent(string(rune('a'+i)), event.ImportanceHigh, i*30))
	}

	t.Run("all mandatory shown, no overflow", func(t *testing.T) {
		display := Allocate(nil, timedEvents)
		assert.Len(t, display.TimedEvents, 7)
		assert.Equal(t, 7, display.ShownCount)
		assert.False(t, display.HasOverflow)
	})

	t.Run("overflow still reported for hidden extras", func(t *testing.T) {
		display := Allocate(
			[]event.DateEvent{dateEvent("d-low", event.ImportanceLow, 1)},
			append(timedEvents, timedEvent("t-low", event.ImportanceLow, 600)),
		)
		// The LOW date event and LOW timed event cannot fit.
		assert.Len(t, display.TimedEvents, 7)
		assert.Empty(t, display.DateEvents)
		assert.True(t, display.HasOverflow)
		assert.Equal(t, 9, display.TotalCount)
		assert.Equal(t, 7, display.ShownCount)
	})
}

func TestAllocate_EvictionOrder(t *testing.T) {
	// LOW@t1, MIDDLE@t2, HIGH@t3 against 4 mandatory timed events:
	// working set of 7 against a budget of 5.
	dateEvents := []event.DateEvent{
		dateEvent("d-low", event.ImportanceLow, 1),
		dateEvent("d-middle", event.ImportanceMiddle, 2),
		dateEvent("d-high", event.ImportanceHigh, 3),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t1", event.ImportanceHigh, 0),
		timedEvent("t2", event.ImportanceHigh, 60),
		timedEvent("t3", event.ImportanceCritical, 120),
		timedEvent("t4", event.ImportanceHigh, 180),
	}

	display := Allocate(dateEvents, timedEvents)

	// LOW evicted first, then MIDDLE; HIGH survives alongside the four
	// mandatory timed events.
	assert.Equal(t, []string{"d-high"}, dateIDs(display.DateEvents))
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, timedIDs(display.TimedEvents))
	assert.True(t, display.HasOverflow)
	assert.Equal(t, 5, display.ShownCount)
}

func TestAllocate_EvictionTieBreak(t *testing.T) {
	// Among equal importance, the later-created event is evicted first.
	dateEvents := []event.DateEvent{
		dateEvent("d-old", event.ImportanceLow, 1),
		dateEvent("d-new", event.ImportanceLow, 2),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t1", event.ImportanceHigh, 0),
		timedEvent("t2", event.ImportanceHigh, 30),
		timedEvent("t3", event.ImportanceHigh, 60),
		timedEvent("t4", event.ImportanceHigh, 90),
	}

	display := Allocate(dateEvents, timedEvents)

	assert.Equal(t, []string{"d-old"}, dateIDs(display.DateEvents))
	assert.True(t, display.HasOverflow)
}

func TestAllocate_HighDateEventsProtected(t *testing.T) {
	// Only LOW/MIDDLE date events are evictable: with six HIGH date
	// events the budget cannot be met, and eviction must stop rather
	// than truncate further.
	dateEvents := []event.DateEvent{
		dateEvent("d1", event.ImportanceHigh, 1),
		dateEvent("d2", event.ImportanceHigh, 2),
		dateEvent("d3", event.ImportanceCritical, 3),
		dateEvent("d4", event.ImportanceHigh, 4),
		dateEvent("d5", event.ImportanceHigh, 5),
		dateEvent("d6", event.ImportanceHigh, 6),
	}

	display := Allocate(dateEvents, nil)

	assert.Len(t, display.DateEvents, 6)
	assert.Equal(t, 6, display.ShownCount)
	assert.False(t, display.HasOverflow)
}

func TestAllocate_OptionalTimedFillRemainingSlots(t *testing.T) {
	dateEvents := []event.DateEvent{
		dateEvent("d1", event.ImportanceMiddle, 1),
		dateEvent("d2", event.ImportanceMiddle, 2),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t-late", event.ImportanceLow, 600),
		timedEvent("t-early", event.ImportanceLow, 60),
		timedEvent("t-mid", event.ImportanceMiddle, 300),
		timedEvent("t-extra", event.ImportanceLow, 900),
	}

	display := Allocate(dateEvents, timedEvents)

	// Three slots remain; optionals admitted in start order and shown in
	// time order.
	assert.Equal(t, []string{"d1", "d2"}, dateIDs(display.DateEvents))
	assert.Equal(t, []string{"t-early", "t-mid", "t-late"}, timedIDs(display.TimedEvents))
	assert.True(t, display.HasOverflow)
	assert.Equal(t, 5, display.ShownCount)
}

func TestAllocate_DisplayOrdering(t *testing.T) {
	dateEvents := []event.DateEvent{
		dateEvent("d-low", event.ImportanceLow, 3),
		dateEvent("d-critical", event.ImportanceCritical, 2),
		dateEvent("d-middle", event.ImportanceMiddle, 1),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t-late", event.ImportanceHigh, 300),
		timedEvent("t-early", event.ImportanceLow, 0),
	}

	display := Allocate(dateEvents, timedEvents)

	assert.Equal(t, []string{"d-critical", "d-middle", "d-low"}, dateIDs(display.DateEvents))
	assert.Equal(t, []string{"t-early", "t-late"}, timedIDs(display.TimedEvents))
	assert.False(t, display.HasOverflow)
}

func TestAllocate_CapacityRespectedWhenPossible(t *testing.T) {
	// With at most 5 mandatory timed events the shown total never
	// exceeds the budget, whatever else is on the day.
	dateEvents := []event.DateEvent{
		dateEvent("d1", event.ImportanceLow, 1),
		dateEvent("d2", event.ImportanceMiddle, 2),
		dateEvent("d3", event.ImportanceMiddle, 3),
		dateEvent("d4", event.ImportanceLow, 4),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t1", event.ImportanceHigh, 0),
		timedEvent("t2", event.ImportanceCritical, 30),
		timedEvent("t3", event.ImportanceLow, 60),
		timedEvent("t4", event.ImportanceLow, 90),
	}

	display := Allocate(dateEvents, timedEvents)
	assert.LessOrEqual(t, display.ShownCount, DisplayBudget)
	assert.True(t, display.HasOverflow)
}

func TestAllocate_OverflowIffSomethingHidden(t *testing.T) {
	t.Run("exactly at budget", func(t *testing.T) {
		dateEvents := []event.DateEvent{
			dateEvent("d1", event.ImportanceLow, 1),
			dateEvent("d2", event.ImportanceLow, 2),
		}
		timedEvents := []event.TimedEvent{
			timedEvent("t1", event.ImportanceLow, 0),
			timedEvent("t2", event.ImportanceLow, 30),
			timedEvent("t3", event.ImportanceLow, 60),
		}
		display := Allocate(dateEvents, timedEvents)
		assert.Equal(t, 5, display.ShownCount)
		assert.False(t, display.HasOverflow)
	})

	t.Run("one over budget", func(t *testing.T) {
		dateEvents := []event.DateEvent{
			dateEvent("d1", event.ImportanceLow, 1),
			dateEvent("d2", event.ImportanceLow, 2),
			dateEvent("d3", event.ImportanceLow, 3),
		}
		timedEvents := []event.TimedEvent{
			timedEvent("t1", event.ImportanceLow, 0),
			timedEvent("t2", event.ImportanceLow, 30),
			timedEvent("t3", event.ImportanceLow, 60),
		}
		display := Allocate(dateEvents, timedEvents)
		assert.Equal(t, 5, display.ShownCount)
		assert.Equal(t, 6, display.TotalCount)
		assert.True(t, display.HasOverflow)
	})
}

func TestAllocate_IdempotentAndPure(t *testing.T) {
	dateEvents := []event.DateEvent{
		dateEvent("d-low", event.ImportanceLow, 5),
		dateEvent("d-critical", event.ImportanceCritical, 1),
		dateEvent("d-middle", event.ImportanceMiddle, 3),
	}
	timedEvents := []event.TimedEvent{
		timedEvent("t-late", event.ImportanceLow, 600),
		timedEvent("t-high", event.ImportanceHigh, 60),
		timedEvent("t-early", event.ImportanceLow, 0),
	}

	inputDateOrder := dateIDs(dateEvents)
	inputTimedOrder := timedIDs(timedEvents)

	first := Allocate(dateEvents, timedEvents)
	second := Allocate(dateEvents, timedEvents)

	require.Equal(t, first, second)

	// Inputs must not be reordered or mutated.
	assert.Equal(t, inputDateOrder, dateIDs(dateEvents))
	assert.Equal(t, inputTimedOrder, timedIDs(timedEvents))
}
