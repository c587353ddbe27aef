package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
	"campus-events/internal/repository"
	"campus-events/pkg/apperror"
	"campus-events/pkg/storage"
)

// eventDateLayouts are the accepted wire formats for the date field,
// tried in order.
var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

type EventService interface {
	Create(ctx context.Context, createdBy uint, req *dto.CreateEventRequest) (*dto.EventView, error)
	GetAll(ctx context.Context, filter *dto.EventFilter) ([]dto.EventView, error)
	GetByID(ctx context.Context, id uint) (*dto.EventView, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*dto.EventView, error)
	Delete(ctx context.Context, id uint) error
	UploadPoster(ctx context.Context, id uint, file io.Reader, fileName string) (*dto.EventView, error)
}

type eventService struct {
	eventRepo   repository.EventRepository
	collegeRepo repository.CollegeRepository
	search      EventSearchService
	images      storage.ImageStorage
}

func NewEventService(
	eventRepo repository.EventRepository,
	collegeRepo repository.CollegeRepository,
	search EventSearchService,
	images storage.ImageStorage,
) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		collegeRepo: collegeRepo,
		search:      search,
		images:      images,
	}
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.BadRequest("Invalid date", "Date must be YYYY-MM-DD or an RFC 3339 timestamp")
}

func (s *eventService) checkCollege(ctx context.Context, id uint) error {
	if _, err := s.collegeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("College not found", fmt.Sprintf("College with ID %d does not exist", id))
		}
		return err
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, createdBy uint, req *dto.CreateEventRequest) (*dto.EventView, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollege(ctx, req.CollegeID); err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:        req.Name,
		Type:        req.Type,
		Date:        date,
		CollegeID:   req.CollegeID,
		CreatedBy:   createdBy,
		Description: req.Description,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	view, err := s.eventRepo.FindViewByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexEvent(view)
	}
	return view, nil
}

// GetAll lists events, newest first. When a search query is present and
// the search index is up, results come from Meilisearch in relevance
// order; otherwise the query falls back to a database substring match.
func (s *eventService) GetAll(ctx context.Context, filter *dto.EventFilter) ([]dto.EventView, error) {
	if filter.Query != "" && s.search != nil {
		ids, err := s.search.Search(filter.Query)
		if err == nil {
			return s.findInSearchOrder(ctx, ids)
		}
		log.Printf("Event search failed, falling back to database: %v", err)
	}
	return s.eventRepo.FindAllViews(ctx, filter.Query)
}

func (s *eventService) findInSearchOrder(ctx context.Context, ids []uint) ([]dto.EventView, error) {
	views, err := s.eventRepo.FindViewsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]dto.EventView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}

	ordered := make([]dto.EventView, 0, len(views))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

func (s *eventService) GetByID(ctx context.Context, id uint) (*dto.EventView, error) {
	view, err := s.eventRepo.FindViewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found", fmt.Sprintf("Event with ID %d does not exist", id))
		}
		return nil, err
	}
	return view, nil
}

func (s *eventService) Update(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*dto.EventView, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found", fmt.Sprintf("Event with ID %d does not exist", id))
		}
		return nil, err
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollege(ctx, req.CollegeID); err != nil {
		return nil, err
	}

	event.Name = req.Name
	event.Type = req.Type
	event.Date = date
	event.CollegeID = req.CollegeID
	event.Description = req.Description
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	view, err := s.eventRepo.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexEvent(view)
	}
	return view, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	rows, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("Event not found", fmt.Sprintf("Event with ID %d does not exist", id))
	}

	if s.search != nil {
		s.search.DeleteEvent(id)
	}
	return nil
}

func (s *eventService) UploadPoster(ctx context.Context, id uint, file io.Reader, fileName string) (*dto.EventView, error) {
	if s.images == nil {
		return nil, apperror.New(apperror.ErrInternal, "Poster upload unavailable", "Image storage is not configured")
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found", fmt.Sprintf("Event with ID %d does not exist", id))
		}
		return nil, err
	}

	url, err := s.images.UploadImage(ctx, file, "posters", fileName)
	if err != nil {
		return nil, err
	}

	if event.PosterURL != nil {
		if err := s.images.DeleteImage(ctx, *event.PosterURL); err != nil {
			log.Printf("Failed to delete old poster for event %d: %v", id, err)
		}
	}

	event.PosterURL = &url
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	view, err := s.eventRepo.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexEvent(view)
	}
	return view, nil
}
