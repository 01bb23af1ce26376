package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/api/metrics"
	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// EventService implements the event lifecycle. Events share the asset sagas
// with posts but their image is optional.
type EventService struct {
	events ports.EventRepository
	blobs  ports.BlobStore
	counts ports.CountCache
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, blobs ports.BlobStore, counts ports.CountCache, log zerolog.Logger) *EventService {
	return &EventService{events: events, blobs: blobs, counts: counts, log: log}
}

// Create publishes a new event. When an image is supplied it is uploaded
// before the store write; an upload failure leaves no orphan record.
func (s *EventService) Create(ctx context.Context, input ports.CreateEventInput) (*domain.Event, error) {
	image := domain.Asset{}
	if input.ImagePath != "" {
		uploaded, err := s.blobs.Upload(ctx, input.ImagePath)
		if err != nil {
			return nil, err
		}
		image = uploaded
		metrics.AssetsUploadedTotal.WithLabelValues("event").Inc()
	}

	category := input.Category
	if category == "" {
		category = domain.EventUpcoming
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Category:    category,
		OwnerID:     input.OwnerID,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		if image.HasRemote() {
			s.log.Warn().Err(err).Str("public_id", *image.RemoteID).
				Msg("event image uploaded but record not persisted")
		}
		return nil, err
	}

	if input.ImagePath != "" {
		removeStaging(s.log, input.ImagePath)
	}

	s.log.Info().Str("event_id", created.ID).Str("category", created.Category).Msg("event created")
	return created, nil
}

// List returns events date-descending, optionally narrowed to one category.
func (s *EventService) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	return s.events.List(ctx, filter)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

// Update edits event fields and optionally replaces the image. The old
// remote object is deleted only after the new one is uploaded and the record
// persisted.
func (s *EventService) Update(ctx context.Context, id string, input ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ports.EventPatch{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Category:    input.Category,
	}

	if input.ImagePath != "" {
		uploaded, err := s.blobs.Upload(ctx, input.ImagePath)
		if err != nil {
			return nil, err
		}
		metrics.AssetsUploadedTotal.WithLabelValues("event").Inc()
		patch.Image = &uploaded
	}

	updated, err := s.events.Update(ctx, id, patch)
	if err != nil {
		if patch.Image != nil {
			s.log.Warn().Err(err).Str("event_id", id).Str("public_id", *patch.Image.RemoteID).
				Msg("replacement image uploaded but record not persisted")
		}
		return nil, err
	}

	if patch.Image != nil {
		if event.Image.HasRemote() {
			if err := s.blobs.Delete(ctx, *event.Image.RemoteID); err != nil {
				s.log.Warn().Err(err).Str("event_id", id).Msg("failed to delete previous event image")
			}
		}
		removeStaging(s.log, input.ImagePath)
	}

	s.log.Info().Str("event_id", id).Msg("event updated")
	return updated, nil
}

// Delete removes the event: remote image first, then the record.
func (s *EventService) Delete(ctx context.Context, id string) error {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if event.Image.HasRemote() {
		if err := s.blobs.Delete(ctx, *event.Image.RemoteID); err != nil {
			s.log.Warn().Err(err).Str("event_id", id).Msg("event image not deleted")
		}
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("event_id", id).Msg("event deleted")
	return nil
}

func (s *EventService) Count(ctx context.Context) (int64, error) {
	return cachedCount(ctx, s.counts, "events", s.events.Count)
}
