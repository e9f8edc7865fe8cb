package upcoming

import (
	"context"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/utils"
	"github.com/lifnux/lifnux/pkg/event"
)

// EventSource supplies the whole event set. The event service implements it.
type EventSource interface {
	AllDateEvents(ctx context.Context) []event.DateEvent
	AllTimedEvents(ctx context.Context) []event.TimedEvent
}

type Service struct {
	events EventSource
	clock  utils.Clock
}

func NewService(events EventSource, clock utils.Clock) *Service {
	return &Service{events: events, clock: clock}
}

// Upcoming returns the ranked feed for the next windowDays days.
// Non-positive windowDays or limit fall back to the defaults.
func (s *Service) Upcoming(ctx context.Context, windowDays, limit int) []Entry {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	today := dateutil.Today(s.clock.Now())
	return Rank(s.events.AllDateEvents(ctx), s.events.AllTimedEvents(ctx), today, windowDays, limit)
}
