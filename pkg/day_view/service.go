package day_view

import (
	"context"

	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
)

// EventSource supplies a day's candidate events. The event service
// implements it.
type EventSource interface {
	DateEventsOn(ctx context.Context, ymd string) []event.DateEvent
	TimedEventsOn(ctx context.Context, ymd string) []event.TimedEvent
}

// CategorySource supplies the category list for enabled-state filtering.
type CategorySource interface {
	List(ctx context.Context) []category.Category
}

// FullDay is the complete, unbudgeted event listing for one date, used by
// the overflow ("more") view: date events in display order, timed events
// in time order.
type FullDay struct {
	Date        string             `json:"date"`
	DateEvents  []event.DateEvent  `json:"dateEvents"`
	TimedEvents []event.TimedEvent `json:"timedEvents"`
}

type Service struct {
	events     EventSource
	categories CategorySource
}

func NewService(events EventSource, categories CategorySource) *Service {
	return &Service{events: events, categories: categories}
}

// Day builds the bounded display list for one calendar cell. Disabled
// date events and events of disabled categories are not candidates.
func (s *Service) Day(ctx context.Context, ymd string) DayDisplay {
	disabled := s.disabledCategories(ctx)

	dateCandidates := make([]event.DateEvent, 0)
	for _, e := range s.events.DateEventsOn(ctx, ymd) {
		if e.IsEnabled && !disabled[e.CategoryID] {
			dateCandidates = append(dateCandidates, e)
		}
	}

	timedCandidates := make([]event.TimedEvent, 0)
	for _, t := range s.events.TimedEventsOn(ctx, ymd) {
		if !disabled[t.CategoryID] {
			timedCandidates = append(timedCandidates, t)
		}
	}

	return Allocate(dateCandidates, timedCandidates)
}

// Full returns every event on the date, without the display budget or any
// enabled-state filtering, sorted for the overflow view.
func (s *Service) Full(ctx context.Context, ymd string) FullDay {
	dateEvents := append([]event.DateEvent{}, s.events.DateEventsOn(ctx, ymd)...)
	event.SortDateEventsForDisplay(dateEvents)

	timedEvents := append([]event.TimedEvent{}, s.events.TimedEventsOn(ctx, ymd)...)
	event.SortTimedEventsByStart(timedEvents)

	return FullDay{Date: ymd, DateEvents: dateEvents, TimedEvents: timedEvents}
}

func (s *Service) disabledCategories(ctx context.Context) map[string]bool {
	disabled := make(map[string]bool)
	for _, c := range s.categories.List(ctx) {
		if !c.IsEnabled {
			disabled[c.ID] = true
		}
	}
	return disabled
}
