package day_view

import (
	"context"

	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
)

type eventSourceStub struct {
	dateEvents  []event.DateEvent
	timedEvents []event.TimedEvent
}

func (s *eventSourceStub) DateEventsOn(_ context.Context, ymd string) []event.DateEvent {
	result := make([]event.DateEvent, 0)
	for _, e := range s.dateEvents {
		if e.Date == ymd {
			result = append(result, e)
		}
	}
	return result
}

func (s *eventSourceStub) TimedEventsOn(_ context.Context, ymd string) []event.TimedEvent {
	result := make([]event.TimedEvent, 0)
	for _, t := range s.timedEvents {
		if t.AnchorDate == ymd {
			result = append(result, t)
		}
	}
	return result
}

type categorySourceStub struct {
	categories []category.Category
}

func (s *categorySourceStub) List(_ context.Context) []category.Category {
	return s.categories
}
