package status

import (
	"context"
	"sync"

	"github.com/lifnux/lifnux/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// Patch is a partial status update; nil fields are left unchanged.
type Patch struct {
	CompanyName           *string
	IsEmployed            *bool
	EmploymentStartDate   *string
	EmploymentEndDate     *string
	RemainingLeaveMinutes *int
}

// Service owns the in-memory employment/leave status.
type Service struct {
	mu     sync.RWMutex
	status Status

	bus *event_bus.EventBus
}

func NewService(bus *event_bus.EventBus) *Service {
	return &Service{bus: bus}
}

// Replace swaps in the full status, used when a snapshot is loaded.
func (s *Service) Replace(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Service) Get(ctx context.Context) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Update merges a partial patch into the status. Marking the user as
// employed clears any recorded end date.
func (s *Service) Update(ctx context.Context, patch Patch) Status {
	s.mu.Lock()
	if patch.CompanyName != nil {
		s.status.CompanyName = *patch.CompanyName
	}
	if patch.IsEmployed != nil {
		s.status.IsEmployed = *patch.IsEmployed
		if s.status.IsEmployed {
			s.status.EmploymentEndDate = ""
		}
	}
	if patch.EmploymentStartDate != nil {
		s.status.EmploymentStartDate = *patch.EmploymentStartDate
	}
	if patch.EmploymentEndDate != nil {
		s.status.EmploymentEndDate = *patch.EmploymentEndDate
	}
	if patch.RemainingLeaveMinutes != nil {
		minutes := *patch.RemainingLeaveMinutes
		if minutes < 0 {
			minutes = 0
		}
		s.status.RemainingLeaveMinutes = minutes
	}
	updated := s.status
	s.mu.Unlock()

	if s.bus != nil {
		err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.StateChanged, event_bus.StateChange{
			Entity: "status",
			Action: "updated",
		}))
		if err != nil {
			log.Debugf("state change notification failed: %v", err)
		}
	}
	return updated
}
