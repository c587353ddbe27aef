package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	// Delete returns the number of rows removed so the caller can
	// distinguish a missing event.
	Delete(ctx context.Context, id uint) (int64, error)

	FindAllViews(ctx context.Context, query string) ([]dto.EventView, error)
	FindViewsByIDs(ctx context.Context, ids []uint) ([]dto.EventView, error)
	FindViewByID(ctx context.Context, id uint) (*dto.EventView, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	return res.RowsAffected, res.Error
}

func (r *eventRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("events e").
		Select("e.id, e.name, e.type, e.date, e.college_id, e.created_by, e.description, e.poster_url, e.created_at, c.name AS college_name, u.name AS created_by_name").
		Joins("JOIN colleges c ON e.college_id = c.id").
		Joins("JOIN users u ON e.created_by = u.id")
}

func (r *eventRepository) FindAllViews(ctx context.Context, query string) ([]dto.EventView, error) {
	q := r.viewQuery(ctx)
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("e.name ILIKE ? OR e.description ILIKE ?", pattern, pattern)
	}

	events := []dto.EventView{}
	if err := q.Order("e.date DESC").Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindViewsByIDs(ctx context.Context, ids []uint) ([]dto.EventView, error) {
	events := []dto.EventView{}
	if len(ids) == 0 {
		return events, nil
	}

	if err := r.viewQuery(ctx).Where("e.id IN ?", ids).Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindViewByID(ctx context.Context, id uint) (*dto.EventView, error) {
	var event dto.EventView
	err := r.viewQuery(ctx).Where("e.id = ?", id).Take(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
