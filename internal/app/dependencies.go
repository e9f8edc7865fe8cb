package app

import (
	"database/sql"

	"github.com/lifnux/lifnux/internal/event_bus"
	"github.com/lifnux/lifnux/internal/snapshot"
	"github.com/lifnux/lifnux/internal/utils"
	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/day_view"
	"github.com/lifnux/lifnux/pkg/event"
	"github.com/lifnux/lifnux/pkg/grid"
	"github.com/lifnux/lifnux/pkg/status"
	"github.com/lifnux/lifnux/pkg/upcoming"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	EventService *event.Service
	EventHandler *event.Handler

	CategoryService *category.Service
	CategoryHandler *category.Handler

	StatusService *status.Service
	StatusHandler *status.Handler

	DayViewService *day_view.Service
	DayViewHandler *day_view.Handler

	GridService *grid.Service
	GridHandler *grid.Handler

	UpcomingService *upcoming.Service
	UpcomingHandler *upcoming.Handler

	SnapshotRepo    snapshot.Repository
	SnapshotManager *snapshot.Manager
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EventService = event.NewService(deps.Clock, deps.EventBus)
	deps.EventHandler = event.NewHandler(deps.EventService)

	deps.CategoryService = category.NewService(deps.EventService, deps.EventBus)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.StatusService = status.NewService(deps.EventBus)
	deps.StatusHandler = status.NewHandler(deps.StatusService, deps.Clock)

	deps.DayViewService = day_view.NewService(deps.EventService, deps.CategoryService)
	deps.DayViewHandler = day_view.NewHandler(deps.DayViewService)

	deps.GridService = grid.NewService(deps.DayViewService, deps.Clock)
	deps.GridHandler = grid.NewHandler(deps.GridService, deps.Clock)

	deps.UpcomingService = upcoming.NewService(deps.EventService, deps.Clock)
	deps.UpcomingHandler = upcoming.NewHandler(deps.UpcomingService)

	deps.SnapshotRepo = snapshot.NewSQLiteRepository(db)
	deps.SnapshotManager = snapshot.NewManager(
		deps.SnapshotRepo, deps.CategoryService, deps.EventService, deps.StatusService, deps.Clock, deps.EventBus,
	)

	return deps
}
