package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

// usageStub implements UsageCounter with a fixed per-category count.
type usageStub struct {
	counts map[string]int
}

func (u *usageStub) CountByCategory(_ context.Context, categoryID string) int {
	return u.counts[categoryID]
}

func setup() (*Service, *usageStub) {
	usage := &usageStub{counts: map[string]int{}}
	service := NewService(usage, nil)
	service.Replace([]Category{
		{ID: "cat_holiday", Name: "Holiday", Color: "#ff4d4f", IsSystem: true, IsEnabled: true},
		{ID: "cat_work", Name: "Work", Color: "#3b82f6", IsEnabled: true},
	})
	return service, usage
}

func TestService_Create(t *testing.T) {
	service, _ := setup()

	created, err := service.Create(ctx, "  Running  ", "#22c55e")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Running", created.Name)
	assert.True(t, created.IsEnabled)
	assert.False(t, created.IsSystem)
	assert.Len(t, service.List(ctx), 3)

	_, err = service.Create(ctx, "   ", "#000000")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestService_Update(t *testing.T) {
	service, _ := setup()

	t.Run("merges patch", func(t *testing.T) {
		name := "Office"
		updated, err := service.Update(ctx, "cat_work", Patch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Office", updated.Name)
		assert.Equal(t, "#3b82f6", updated.Color)
	})

	t.Run("system category can be toggled", func(t *testing.T) {
		disabled := false
		updated, err := service.Update(ctx, "cat_holiday", Patch{IsEnabled: &disabled})
		require.NoError(t, err)
		assert.False(t, updated.IsEnabled)
		assert.True(t, updated.IsSystem)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.Update(ctx, "missing", Patch{})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("in-use category is refused and state unchanged", func(t *testing.T) {
		service, usage := setup()
		usage.counts["cat_work"] = 3

		err := service.Delete(ctx, "cat_work")
		assert.ErrorIs(t, err, ErrCategoryInUse)
		assert.Contains(t, err.Error(), "3 event(s)")
		assert.Len(t, service.List(ctx), 2)
	})

	t.Run("system category is refused", func(t *testing.T) {
		service, _ := setup()
		err := service.Delete(ctx, "cat_holiday")
		assert.ErrorIs(t, err, ErrSystemCategory)
		assert.Len(t, service.List(ctx), 2)
	})

	t.Run("unreferenced user category deletes", func(t *testing.T) {
		service, _ := setup()
		require.NoError(t, service.Delete(ctx, "cat_work"))

		remaining := service.List(ctx)
		require.Len(t, remaining, 1)
		assert.Equal(t, "cat_holiday", remaining[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		service, _ := setup()
		assert.ErrorIs(t, service.Delete(ctx, "missing"), ErrCategoryNotFound)
	})
}
