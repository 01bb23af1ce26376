package ports

import (
	"context"
	"time"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// ListEventsFilter narrows the event listing. Results are date-descending.
type ListEventsFilter struct {
	Category string
}

// EventPatch holds the updatable event fields. Nil means "leave unchanged".
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Category    *string
	Image       *domain.Asset
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateEventInput carries the data for creating an event. ImagePath is the
// local staging path of the uploaded file; empty means no image.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Category    string
	OwnerID     string
	ImagePath   string
}

// UpdateEventInput carries the fields to change plus an optional replacement
// image staging path.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Category    *string
	ImagePath   string
}

// EventService defines use-case operations for events.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, id string, input UpdateEventInput) (*domain.Event, error)
	// Delete removes the event's remote image first, then the record.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
