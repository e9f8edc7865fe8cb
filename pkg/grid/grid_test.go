package grid

import (
	"context"
	"testing"
	"time"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/utils"
	"github.com/lifnux/lifnux/pkg/day_view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week starts on Monday 2024-01-08.
	dates := BuildGrid("2024-01-10")

	require.Len(t, dates, GridDays)
	assert.Equal(t, "2024-01-01", dates[0])
	assert.Equal(t, dateutil.StartOfWeekMonday("2024-01-10"), dates[7])
	assert.Equal(t, "2024-01-08", dates[7])
	assert.Equal(t, "2024-02-04", dates[34])
}

func TestBuildGrid_Consecutive(t *testing.T) {
	dates := BuildGrid("2024-02-29")
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dateutil.AddDays(dates[i-1], 1), dates[i])
	}
}

func TestBuildGrid_AnchorOnMonday(t *testing.T) {
	dates := BuildGrid("2024-01-08")
	assert.Equal(t, "2024-01-08", dates[7])
}

type dayBuilderStub struct {
	calls []string
}

func (s *dayBuilderStub) Day(_ context.Context, ymd string) day_view.DayDisplay {
	s.calls = append(s.calls, ymd)
	return day_view.DayDisplay{}
}

func TestServiceBuild(t *testing.T) {
	days := &dayBuilderStub{}
	clock := &utils.MockClock{FixedNow: time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)}
	service := NewService(days, clock)

	result := service.Build(context.Background(), "2024-01-10")

	require.Len(t, result.Cells, GridDays)
	assert.Equal(t, "2024-01-10", result.Anchor)
	// One allocation per date, in grid order.
	assert.Equal(t, BuildGrid("2024-01-10"), days.calls)

	assert.Equal(t, "01.01", result.Cells[0].Label)
	assert.Equal(t, "Mon", result.Cells[0].Weekday)
	assert.Equal(t, "Sun", result.Cells[6].Weekday)
	assert.True(t, result.Cells[9].IsToday)
	assert.False(t, result.Cells[8].IsToday)
}
