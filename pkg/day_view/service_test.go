package day_view

import (
	"context"
	"testing"

	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
	"github.com/stretchr/testify/assert"
)

func newTestService() (*Service, *eventSourceStub, *categorySourceStub) {
	events := &eventSourceStub{}
	categories := &categorySourceStub{
		categories: []category.Category{
			{ID: "cat_general", Name: "General", Color: "#6b7280", IsEnabled: true},
			{ID: "cat_hidden", Name: "Hidden", Color: "#ef4444", IsEnabled: false},
		},
	}
	return NewService(events, categories), events, categories
}

func TestServiceDay_FiltersDisabledCategories(t *testing.T) {
	service, events, _ := newTestService()
	events.dateEvents = []event.DateEvent{
		dateEvent("d-visible", event.ImportanceMiddle, 1),
		func() event.DateEvent {
			e := dateEvent("d-hidden", event.ImportanceCritical, 2)
			e.CategoryID = "cat_hidden"
			return e
		}(),
	}
	events.timedEvents = []event.TimedEvent{
		timedEvent("t-visible", event.ImportanceHigh, 60),
		func() event.TimedEvent {
			e := timedEvent("t-hidden", event.ImportanceHigh, 120)
			e.CategoryID = "cat_hidden"
			return e
		}(),
	}

	display := service.Day(context.Background(), testDate)

	assert.Equal(t, []string{"d-visible"}, dateIDs(display.DateEvents))
	assert.Equal(t, []string{"t-visible"}, timedIDs(display.TimedEvents))
	// Filtered events are not counted as overflow either.
	assert.False(t, display.HasOverflow)
	assert.Equal(t, 2, display.TotalCount)
}

func TestServiceDay_FiltersDisabledDateEvents(t *testing.T) {
	service, events, _ := newTestService()
	disabled := dateEvent("d-off", event.ImportanceHigh, 2)
	disabled.IsEnabled = false
	events.dateEvents = []event.DateEvent{
		dateEvent("d-on", event.ImportanceLow, 1),
		disabled,
	}

	display := service.Day(context.Background(), testDate)

	assert.Equal(t, []string{"d-on"}, dateIDs(display.DateEvents))
	assert.False(t, display.HasOverflow)
}

func TestServiceDay_OtherDatesExcluded(t *testing.T) {
	service, events, _ := newTestService()
	other := dateEvent("d-other", event.ImportanceHigh, 1)
	other.Date = "2024-05-03"
	events.dateEvents = []event.DateEvent{other}

	display := service.Day(context.Background(), testDate)
	assert.Empty(t, display.DateEvents)
	assert.Zero(t, display.TotalCount)
}

func TestServiceFull_Unfiltered(t *testing.T) {
	service, events, _ := newTestService()
	off := dateEvent("d-off", event.ImportanceCritical, 1)
	off.IsEnabled = false
	hidden := dateEvent("d-hidden", event.ImportanceLow, 2)
	hidden.CategoryID = "cat_hidden"
	events.dateEvents = []event.DateEvent{hidden, off, dateEvent("d-mid", event.ImportanceMiddle, 3)}
	events.timedEvents = []event.TimedEvent{
		timedEvent("t-late", event.ImportanceLow, 300),
		timedEvent("t-early", event.ImportanceLow, 0),
	}

	full := service.Full(context.Background(), testDate)

	assert.Equal(t, testDate, full.Date)
	// Disabled events and categories still appear, in display order.
	assert.Equal(t, []string{"d-off", "d-mid", "d-hidden"}, dateIDs(full.DateEvents))
	assert.Equal(t, []string{"t-early", "t-late"}, timedIDs(full.TimedEvents))
}
