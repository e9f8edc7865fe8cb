package snapshot

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/event_bus"
	"github.com/lifnux/lifnux/internal/utils"
	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
	"github.com/lifnux/lifnux/pkg/status"
)

// Manager owns snapshot persistence: it loads (or seeds) the state on
// startup, pushes it into the domain services, and writes the whole
// snapshot back after every state change.
type Manager struct {
	repo        Repository
	categories  *category.Service
	events      *event.Service
	status      *status.Service
	clock       utils.Clock
	bus         *event_bus.EventBus
	unsubscribe func()
}

func NewManager(
	repo Repository,
	categories *category.Service,
	events *event.Service,
	status *status.Service,
	clock utils.Clock,
	bus *event_bus.EventBus,
) *Manager {
	return &Manager{
		repo:       repo,
		categories: categories,
		events:     events,
		status:     status,
		clock:      clock,
		bus:        bus,
	}
}

// Start loads the stored snapshot into the services, seeding defaults on
// first run, tops up the current year's holidays, and begins persisting on
// every state change.
func (m *Manager) Start(ctx context.Context) error {
	stored, err := m.repo.Load(ctx)
	if err != nil {
		return err
	}

	if stored == nil {
		log.Info("No state snapshot found, seeding defaults")
		seeded := m.seed()
		m.apply(seeded)
		if err := m.repo.Save(ctx, seeded); err != nil {
			return err
		}
	} else {
		m.apply(*stored)
		if err := m.ensureHolidayYear(ctx); err != nil {
			return err
		}
	}

	m.unsubscribe = m.bus.Subscribe(event_bus.StateChanged, func(e event_bus.Event) error {
		return m.repo.Save(e.Context(), m.Assemble(e.Context()))
	})
	return nil
}

// Stop detaches the manager from the event bus.
func (m *Manager) Stop() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Assemble collects the current state of all services into one snapshot.
func (m *Manager) Assemble(ctx context.Context) Snapshot {
	snapshot := Snapshot{
		Categories:  m.categories.List(ctx),
		DateEvents:  m.events.AllDateEvents(ctx),
		TimedEvents: m.events.AllTimedEvents(ctx),
	}
	snapshot.setStatus(m.status.Get(ctx))
	return snapshot
}

func (m *Manager) apply(snapshot Snapshot) {
	m.categories.Replace(snapshot.Categories)
	m.events.Replace(snapshot.DateEvents, snapshot.TimedEvents)
	m.status.Replace(snapshot.status())
}

func (m *Manager) seed() Snapshot {
	now := m.clock.Now()
	return Snapshot{
		Categories:          DefaultCategories(),
		DateEvents:          FixedHolidays(now.Year(), now.UnixMilli()),
		CompanyName:         "COMPANY",
		IsEmployed:          true,
		EmploymentStartDate: dateutil.Today(now),
	}
}

// ensureHolidayYear seeds the fixed holidays for the current year when a
// snapshot from an earlier year carries none. It is a no-op when the year
// is already seeded.
func (m *Manager) ensureHolidayYear(ctx context.Context) error {
	now := m.clock.Now()
	prefix := now.Format("2006") + "-"

	dateEvents := m.events.AllDateEvents(ctx)
	for _, e := range dateEvents {
		if e.IsSystem && strings.HasPrefix(e.Date, prefix) {
			return nil
		}
	}

	log.Infof("Seeding fixed holidays for %d", now.Year())
	dateEvents = append(dateEvents, FixedHolidays(now.Year(), now.UnixMilli())...)
	m.events.Replace(dateEvents, m.events.AllTimedEvents(ctx))
	return m.repo.Save(ctx, m.Assemble(ctx))
}
