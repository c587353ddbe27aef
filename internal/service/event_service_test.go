package service

import (
	"context"
	"errors"
	"testing"

	"campus-events/internal/dto"
	"campus-events/internal/model"
	"campus-events/pkg/apperror"
)

// fakeSearch stands in for the Meilisearch-backed index.
type fakeSearch struct {
	indexed   []uint
	deleted   []uint
	searchIDs []uint
	searchErr error
}

func (f *fakeSearch) IndexEvent(view *dto.EventView) { f.indexed = append(f.indexed, view.ID) }
func (f *fakeSearch) DeleteEvent(id uint)            { f.deleted = append(f.deleted, id) }
func (f *fakeSearch) Search(string) ([]uint, error)  { return f.searchIDs, f.searchErr }

func newTestEventService(t *testing.T) (EventService, *mockEventRepo, *mockCollegeRepo, *fakeSearch) {
	t.Helper()
	eventRepo := newMockEventRepo()
	collegeRepo := newMockCollegeRepo()
	if err := collegeRepo.Create(context.Background(), &model.College{Name: "MIT"}); err != nil {
		t.Fatalf("failed to seed college: %v", err)
	}
	search := &fakeSearch{}
	return NewEventService(eventRepo, collegeRepo, search, nil), eventRepo, collegeRepo, search
}

func TestCreateEvent_Success(t *testing.T) {
	svc, _, _, search := newTestEventService(t)

	event, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Tech Expo",
		Type:      "fest",
		Date:      "2026-09-15",
		CollegeID: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.ID == 0 {
		t.Error("expected the event to have an ID")
	}
	if event.CreatedBy != 1 {
		t.Errorf("expected created_by 1, got %d", event.CreatedBy)
	}
	if got := event.Date.Format("2006-01-02"); got != "2026-09-15" {
		t.Errorf("expected date 2026-09-15, got %s", got)
	}
	if len(search.indexed) != 1 {
		t.Errorf("expected 1 indexed event, got %d", len(search.indexed))
	}
}

func TestCreateEvent_RFC3339Date(t *testing.T) {
	svc, _, _, _ := newTestEventService(t)

	event, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Tech Expo",
		Type:      "fest",
		Date:      "2026-09-15T18:30:00Z",
		CollegeID: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.Date.Hour() != 18 {
		t.Errorf("expected hour 18, got %d", event.Date.Hour())
	}
}

func TestCreateEvent_BadDate(t *testing.T) {
	svc, _, _, _ := newTestEventService(t)

	_, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Tech Expo",
		Type:      "fest",
		Date:      "next tuesday",
		CollegeID: 1,
	})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("expected invalid input for unparseable date, got %v", err)
	}
}

func TestCreateEvent_CollegeNotFound(t *testing.T) {
	svc, _, _, _ := newTestEventService(t)

	_, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Tech Expo",
		Type:      "fest",
		Date:      "2026-09-15",
		CollegeID: 99,
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected not found for missing college, got %v", err)
	}
}

func TestGetAllEvents_SearchOrder(t *testing.T) {
	svc, _, _, search := newTestEventService(t)

	for _, name := range []string{"Alpha Summit", "Beta Workshop", "Gamma Fest"} {
		if _, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
			Name:      name,
			Type:      "workshop",
			Date:      "2026-09-15",
			CollegeID: 1,
		}); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	// Relevance order from the index, not insertion order.
	search.searchIDs = []uint{3, 1}

	events, err := svc.GetAll(context.Background(), &dto.EventFilter{Query: "summit"})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != 3 || events[1].ID != 1 {
		t.Errorf("expected search order [3 1], got [%d %d]", events[0].ID, events[1].ID)
	}
}

func TestGetAllEvents_SearchFallback(t *testing.T) {
	svc, _, _, search := newTestEventService(t)
	search.searchErr = errors.New("index offline")

	if _, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Robotics Workshop",
		Type:      "workshop",
		Date:      "2026-09-15",
		CollegeID: 1,
	}); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	events, err := svc.GetAll(context.Background(), &dto.EventFilter{Query: "robotics"})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected database fallback to match 1 event, got %d", len(events))
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	svc, _, _, _ := newTestEventService(t)

	_, err := svc.Update(context.Background(), 99, &dto.UpdateEventRequest{
		Name:      "Renamed",
		Type:      "fest",
		Date:      "2026-09-15",
		CollegeID: 1,
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected not found for missing event, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	svc, _, _, search := newTestEventService(t)

	event, err := svc.Create(context.Background(), 1, &dto.CreateEventRequest{
		Name:      "Tech Expo",
		Type:      "fest",
		Date:      "2026-09-15",
		CollegeID: 1,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), event.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(search.deleted) != 1 || search.deleted[0] != event.ID {
		t.Errorf("expected event %d removed from index, got %v", event.ID, search.deleted)
	}

	if err := svc.Delete(context.Background(), event.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected not found for second delete, got %v", err)
	}
}

func TestUploadPoster_StorageNotConfigured(t *testing.T) {
	svc, _, _, _ := newTestEventService(t)

	_, err := svc.UploadPoster(context.Background(), 1, nil, "poster.png")
	if !errors.Is(err, apperror.ErrInternal) {
		t.Errorf("expected internal error without image storage, got %v", err)
	}
}
