package grid

import (
	"context"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/utils"
	"github.com/lifnux/lifnux/pkg/day_view"
)

// DayBuilder allocates the bounded display list for one date. The day view
// service implements it.
type DayBuilder interface {
	Day(ctx context.Context, ymd string) day_view.DayDisplay
}

// Cell is one date of the grid with its allocated events.
type Cell struct {
	Date    string              `json:"date"`
	Label   string              `json:"label"`
	Weekday string              `json:"weekday"`
	IsToday bool                `json:"isToday"`
	Display day_view.DayDisplay `json:"display"`
}

// Grid is the full five-week view for one anchor date.
type Grid struct {
	Anchor string `json:"anchor"`
	Cells  []Cell `json:"cells"`
}

type Service struct {
	days  DayBuilder
	clock utils.Clock
}

func NewService(days DayBuilder, clock utils.Clock) *Service {
	return &Service{days: days, clock: clock}
}

// Build composes the 35-cell grid around anchor, one allocation per date.
func (s *Service) Build(ctx context.Context, anchor string) Grid {
	now := s.clock.Now()

	cells := make([]Cell, 0, GridDays)
	for i, date := range BuildGrid(anchor) {
		cells = append(cells, Cell{
			Date:    date,
			Label:   dateutil.FormatMD(date),
			Weekday: dateutil.WeekdayLabel(i % 7),
			IsToday: dateutil.IsToday(date, now),
			Display: s.days.Day(ctx, date),
		})
	}
	return Grid{Anchor: anchor, Cells: cells}
}
