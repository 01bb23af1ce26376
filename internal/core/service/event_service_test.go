package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type stubEventRepo struct {
	events    map[string]*domain.Event
	seq       int
	updateErr error
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func cloneEvent(e *domain.Event) *domain.Event {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	copy := cloneEvent(e)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("event-%d", r.seq)
	}
	r.events[copy.ID] = cloneEvent(copy)
	return copy, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r *stubEventRepo) List(_ context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, cloneEvent(e))
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, id string, patch ports.EventPatch) (*domain.Event, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	return cloneEvent(e), nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

func newEventService(events *stubEventRepo, blobs *stubBlobStore) *EventService {
	return NewEventService(events, blobs, newMemCountCache(), zerolog.Nop())
}

func createEventInput(imagePath string) ports.CreateEventInput {
	return ports.CreateEventInput{
		Title:       "meetup",
		Description: "monthly community meetup",
		Date:        time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		Location:    "downtown",
		Category:    domain.EventUpcoming,
		OwnerID:     "admin-1",
		ImagePath:   imagePath,
	}
}

func TestEventService_Create_ImageIsOptional(t *testing.T) {
	events := newStubEventRepo()
	blobs := &stubBlobStore{}
	svc := newEventService(events, blobs)

	event, err := svc.Create(context.Background(), createEventInput(""))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.Image.HasRemote() {
		t.Fatalf("imageless event should carry no remote asset")
	}
	if len(blobs.uploads) != 0 {
		t.Fatalf("no upload expected, got %v", blobs.uploads)
	}

	withImage, err := svc.Create(context.Background(), createEventInput("/tmp/banner.jpg"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !withImage.Image.HasRemote() {
		t.Fatalf("expected remote-backed image")
	}
}

func TestEventService_Create_DefaultsCategory(t *testing.T) {
	svc := newEventService(newStubEventRepo(), &stubBlobStore{})

	input := createEventInput("")
	input.Category = ""
	event, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.Category != domain.EventUpcoming {
		t.Fatalf("expected upcoming default, got %q", event.Category)
	}
}

func TestEventService_Update_ReplacesImage(t *testing.T) {
	events := newStubEventRepo()
	blobs := &stubBlobStore{}
	svc := newEventService(events, blobs)

	event, err := svc.Create(context.Background(), createEventInput("/tmp/one.jpg"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	oldID := *event.Image.RemoteID

	updated, err := svc.Update(context.Background(), event.ID, ports.UpdateEventInput{ImagePath: "/tmp/two.jpg"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if *updated.Image.RemoteID == oldID {
		t.Fatalf("image not replaced")
	}
	if len(blobs.deleted) != 1 || blobs.deleted[0] != oldID {
		t.Fatalf("old remote object not deleted: %v", blobs.deleted)
	}
}

func TestEventService_Update_PersistFailureKeepsOldImage(t *testing.T) {
	events := newStubEventRepo()
	blobs := &stubBlobStore{}
	svc := newEventService(events, blobs)

	event, err := svc.Create(context.Background(), createEventInput("/tmp/one.jpg"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	events.updateErr = errors.New("write failed")
	if _, err := svc.Update(context.Background(), event.ID, ports.UpdateEventInput{ImagePath: "/tmp/two.jpg"}); err == nil {
		t.Fatalf("expected error")
	}
	if len(blobs.deleted) != 0 {
		t.Fatalf("old remote object must survive a persist failure: %v", blobs.deleted)
	}
}

func TestEventService_Delete_RemovesRemoteImage(t *testing.T) {
	events := newStubEventRepo()
	blobs := &stubBlobStore{}
	svc := newEventService(events, blobs)

	event, err := svc.Create(context.Background(), createEventInput("/tmp/one.jpg"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), event.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(blobs.deleted) != 1 {
		t.Fatalf("remote image not deleted: %v", blobs.deleted)
	}
	if _, err := events.FindByID(context.Background(), event.ID); err != domain.ErrEventNotFound {
		t.Fatalf("record not deleted: %v", err)
	}
}
