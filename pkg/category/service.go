package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lifnux/lifnux/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSystemCategory   = errors.New("system categories cannot be deleted")
	ErrCategoryInUse    = errors.New("category is in use")
	ErrEmptyName        = errors.New("category name must not be empty")
)

// UsageCounter reports how many events reference a category. The event
// service implements it.
type UsageCounter interface {
	CountByCategory(ctx context.Context, categoryID string) int
}

// Patch is a partial category update; nil fields are left unchanged.
type Patch struct {
	Name      *string
	Color     *string
	IsEnabled *bool
}

// Service owns the in-memory category list and its mutations.
type Service struct {
	mu         sync.RWMutex
	categories []Category

	usage UsageCounter
	bus   *event_bus.EventBus
}

func NewService(usage UsageCounter, bus *event_bus.EventBus) *Service {
	return &Service{usage: usage, bus: bus}
}

// Replace swaps in the full category list, used when a snapshot is loaded.
func (s *Service) Replace(categories []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]Category(nil), categories...)
}

// List returns a copy of all categories in insertion order.
func (s *Service) List(ctx context.Context) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...)
}

// Get returns the category with the given id.
func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.find(id)
	if idx < 0 {
		return Category{}, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	return s.categories[idx], nil
}

// Create adds a user category with a fresh id. Empty names are refused.
func (s *Service) Create(ctx context.Context, name, color string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Category{}, ErrEmptyName
	}

	created := Category{
		ID:        uuid.NewString(),
		Name:      trimmed,
		Color:     color,
		IsEnabled: true,
	}
	s.mu.Lock()
	s.categories = append(s.categories, created)
	s.mu.Unlock()

	s.notify(ctx, "created", created.ID)
	return created, nil
}

// Update merges a partial patch. System categories can be renamed,
// recolored, and toggled like any other.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Category, error) {
	s.mu.Lock()
	idx := s.find(id)
	if idx < 0 {
		s.mu.Unlock()
		return Category{}, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	c := &s.categories[idx]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.IsEnabled != nil {
		c.IsEnabled = *patch.IsEnabled
	}
	updated := *c
	s.mu.Unlock()

	s.notify(ctx, "updated", id)
	return updated, nil
}

// Delete removes an unreferenced user category. System categories and
// categories still referenced by events are refused; the returned error
// for an in-use category carries the reference count.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	idx := s.find(id)
	if idx < 0 {
		s.mu.RUnlock()
		return fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	isSystem := s.categories[idx].IsSystem
	s.mu.RUnlock()

	if isSystem {
		log.Warnf("refusing to delete system category %s", id)
		return fmt.Errorf("category %s: %w", id, ErrSystemCategory)
	}

	// The usage count is taken outside the category lock; mutations are
	// serialized by the caller so the count cannot change underneath.
	if used := s.usage.CountByCategory(ctx, id); used > 0 {
		log.Warnf("refusing to delete category %s: in use by %d event(s)", id, used)
		return fmt.Errorf("category %s is in use by %d event(s): %w", id, used, ErrCategoryInUse)
	}

	s.mu.Lock()
	idx = s.find(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	s.mu.Unlock()

	s.notify(ctx, "deleted", id)
	return nil
}

// find must be called with the lock held.
func (s *Service) find(id string) int {
	for idx, c := range s.categories {
		if c.ID == id {
			return idx
		}
	}
	return -1
}

func (s *Service) notify(ctx context.Context, action, id string) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.StateChanged, event_bus.StateChange{
		Entity: "category",
		Action: action,
		ID:     id,
	}))
	if err != nil {
		log.Debugf("state change notification failed: %v", err)
	}
}
