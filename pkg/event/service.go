package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lifnux/lifnux/internal/event_bus"
	"github.com/lifnux/lifnux/internal/utils"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrSystemEvent      = errors.New("system events cannot be deleted")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// NewDateEvent is the caller-validated input for creating a date event.
type NewDateEvent struct {
	Date       string
	Title      string
	CategoryID string
	Importance Importance
	Note       string
}

// DateEventPatch is a partial update; nil fields are left unchanged.
type DateEventPatch struct {
	Date       *string
	Title      *string
	CategoryID *string
	Importance *Importance
	Note       *string
	IsEnabled  *bool
}

// NewTimedEvent is the caller-validated input for creating a timed event.
type NewTimedEvent struct {
	AnchorDate string
	StartMin   int
	EndMin     int
	Title      string
	CategoryID string
	Importance Importance
	Location   string
	Note       string
}

// TimedEventPatch is a partial update; nil fields are left unchanged.
type TimedEventPatch struct {
	AnchorDate *string
	StartMin   *int
	EndMin     *int
	Title      *string
	CategoryID *string
	Importance *Importance
	Location   *string
	Note       *string
}

// Service owns the in-memory date and timed event collections and applies
// all mutations to them. Every successful mutation publishes a
// state.changed event so the snapshot layer can persist the new state.
type Service struct {
	mu            sync.RWMutex
	dateEvents    []DateEvent
	timedEvents   []TimedEvent
	lastCreatedAt int64

	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(clock utils.Clock, bus *event_bus.EventBus) *Service {
	return &Service{clock: clock, bus: bus}
}

// Replace swaps in the full event collections, used when a snapshot is
// loaded or re-seeded.
func (s *Service) Replace(dateEvents []DateEvent, timedEvents []TimedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateEvents = append([]DateEvent(nil), dateEvents...)
	s.timedEvents = append([]TimedEvent(nil), timedEvents...)
	s.lastCreatedAt = 0
	for _, e := range s.dateEvents {
		if e.CreatedAt > s.lastCreatedAt {
			s.lastCreatedAt = e.CreatedAt
		}
	}
	for _, t := range s.timedEvents {
		if t.CreatedAt > s.lastCreatedAt {
			s.lastCreatedAt = t.CreatedAt
		}
	}
}

// nextCreatedAt must be called with the write lock held. Creation
// timestamps only tie-break display order, so they are bumped past the
// previous one when the clock has not advanced.
func (s *Service) nextCreatedAt() int64 {
	now := s.clock.Now().UnixMilli()
	if now <= s.lastCreatedAt {
		now = s.lastCreatedAt + 1
	}
	s.lastCreatedAt = now
	return now
}

func (s *Service) AddDateEvent(ctx context.Context, input NewDateEvent) (DateEvent, error) {
	s.mu.Lock()
	created := DateEvent{
		ID:         uuid.NewString(),
		Date:       input.Date,
		Title:      input.Title,
		CategoryID: input.CategoryID,
		Importance: input.Importance,
		Note:       input.Note,
		IsEnabled:  true,
		CreatedAt:  s.nextCreatedAt(),
	}
	s.dateEvents = append(s.dateEvents, created)
	s.mu.Unlock()

	s.notify(ctx, "dateEvent", "created", created.ID)
	return created, nil
}

func (s *Service) UpdateDateEvent(ctx context.Context, id string, patch DateEventPatch) (DateEvent, error) {
	s.mu.Lock()
	idx := s.findDateEvent(id)
	if idx < 0 {
		s.mu.Unlock()
		return DateEvent{}, fmt.Errorf("date event %s: %w", id, ErrEventNotFound)
	}
	e := &s.dateEvents[idx]
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.CategoryID != nil {
		e.CategoryID = *patch.CategoryID
	}
	if patch.Importance != nil {
		e.Importance = *patch.Importance
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	if patch.IsEnabled != nil {
		e.IsEnabled = *patch.IsEnabled
	}
	updated := *e
	s.mu.Unlock()

	s.notify(ctx, "dateEvent", "updated", id)
	return updated, nil
}

// DeleteDateEvent removes a date event. Deleting a system event (seeded
// holiday) is refused; disable it instead.
func (s *Service) DeleteDateEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.findDateEvent(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("date event %s: %w", id, ErrEventNotFound)
	}
	if s.dateEvents[idx].IsSystem {
		s.mu.Unlock()
		log.Warnf("refusing to delete system date event %s", id)
		return fmt.Errorf("date event %s: %w", id, ErrSystemEvent)
	}
	s.dateEvents = append(s.dateEvents[:idx], s.dateEvents[idx+1:]...)
	s.mu.Unlock()

	s.notify(ctx, "dateEvent", "deleted", id)
	return nil
}

func (s *Service) AddTimedEvent(ctx context.Context, input NewTimedEvent) (TimedEvent, error) {
	if err := validateRange(input.StartMin, input.EndMin); err != nil {
		return TimedEvent{}, err
	}

	s.mu.Lock()
	created := TimedEvent{
		ID:         uuid.NewString(),
		AnchorDate: input.AnchorDate,
		StartMin:   input.StartMin,
		EndMin:     input.EndMin,
		Title:      input.Title,
		CategoryID: input.CategoryID,
		Importance: input.Importance,
		Location:   input.Location,
		Note:       input.Note,
		CreatedAt:  s.nextCreatedAt(),
	}
	s.timedEvents = append(s.timedEvents, created)
	s.mu.Unlock()

	s.notify(ctx, "timedEvent", "created", created.ID)
	return created, nil
}

func (s *Service) UpdateTimedEvent(ctx context.Context, id string, patch TimedEventPatch) (TimedEvent, error) {
	s.mu.Lock()
	idx := s.findTimedEvent(id)
	if idx < 0 {
		s.mu.Unlock()
		return TimedEvent{}, fmt.Errorf("timed event %s: %w", id, ErrEventNotFound)
	}
	e := s.timedEvents[idx]
	if patch.AnchorDate != nil {
		e.AnchorDate = *patch.AnchorDate
	}
	if patch.StartMin != nil {
		e.StartMin = *patch.StartMin
	}
	if patch.EndMin != nil {
		e.EndMin = *patch.EndMin
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.CategoryID != nil {
		e.CategoryID = *patch.CategoryID
	}
	if patch.Importance != nil {
		e.Importance = *patch.Importance
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	// Updates re-validate the time range so a partial patch cannot leave
	// the event with EndMin <= StartMin.
	if err := validateRange(e.StartMin, e.EndMin); err != nil {
		s.mu.Unlock()
		return TimedEvent{}, err
	}
	s.timedEvents[idx] = e
	s.mu.Unlock()

	s.notify(ctx, "timedEvent", "updated", id)
	return e, nil
}

// DeleteTimedEvent removes a timed event. Timed events have no system
// protection and delete unconditionally.
func (s *Service) DeleteTimedEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.findTimedEvent(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("timed event %s: %w", id, ErrEventNotFound)
	}
	s.timedEvents = append(s.timedEvents[:idx], s.timedEvents[idx+1:]...)
	s.mu.Unlock()

	s.notify(ctx, "timedEvent", "deleted", id)
	return nil
}

// DateEventsOn returns copies of all date events on the given date,
// including disabled ones. Display filtering is the day view's concern.
func (s *Service) DateEventsOn(ctx context.Context, ymd string) []DateEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []DateEvent
	for _, e := range s.dateEvents {
		if e.Date == ymd {
			result = append(result, e)
		}
	}
	return result
}

// TimedEventsOn returns copies of all timed events anchored to the given
// business day.
func (s *Service) TimedEventsOn(ctx context.Context, ymd string) []TimedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []TimedEvent
	for _, t := range s.timedEvents {
		if t.AnchorDate == ymd {
			result = append(result, t)
		}
	}
	return result
}

func (s *Service) AllDateEvents(ctx context.Context) []DateEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DateEvent(nil), s.dateEvents...)
}

func (s *Service) AllTimedEvents(ctx context.Context) []TimedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]TimedEvent(nil), s.timedEvents...)
}

// CountByCategory returns how many events reference the given category.
// The category service uses it to block deletion of categories in use.
func (s *Service) CountByCategory(ctx context.Context, categoryID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, e := range s.dateEvents {
		if e.CategoryID == categoryID {
			count++
		}
	}
	for _, t := range s.timedEvents {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count
}

// findDateEvent must be called with the lock held.
func (s *Service) findDateEvent(id string) int {
	for idx, e := range s.dateEvents {
		if e.ID == id {
			return idx
		}
	}
	return -1
}

// findTimedEvent must be called with the lock held.
func (s *Service) findTimedEvent(id string) int {
	for idx, t := range s.timedEvents {
		if t.ID == id {
			return idx
		}
	}
	return -1
}

func (s *Service) notify(ctx context.Context, entity, action, id string) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.StateChanged, event_bus.StateChange{
		Entity: entity,
		Action: action,
		ID:     id,
	}))
	if err != nil {
		log.Debugf("state change notification failed: %v", err)
	}
}

func validateRange(startMin, endMin int) error {
	switch {
	case startMin < 0 || startMin > MaxStartMin:
		return fmt.Errorf("start offset %d out of range: %w", startMin, ErrInvalidTimeRange)
	case endMin > MaxEndMin:
		return fmt.Errorf("end offset %d out of range: %w", endMin, ErrInvalidTimeRange)
	case startMin%SlotStepMin != 0 || endMin%SlotStepMin != 0:
		return fmt.Errorf("offsets must align to %d-minute slots: %w", SlotStepMin, ErrInvalidTimeRange)
	case endMin <= startMin:
		return fmt.Errorf("end offset %d must be after start offset %d: %w", endMin, startMin, ErrInvalidTimeRange)
	}
	return nil
}
