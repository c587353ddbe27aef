package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	FindByRegistrationID(ctx context.Context, registrationID uint) (*model.Feedback, error)
	Update(ctx context.Context, id uint, rating int, comment *string) (int64, error)

	FindAllViews(ctx context.Context) ([]dto.FeedbackView, error)
	FindViewByID(ctx context.Context, id uint) (*dto.FeedbackView, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByRegistrationID(ctx context.Context, registrationID uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Update(ctx context.Context, id uint, rating int, comment *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":  rating,
			"comment": comment,
		})
	return res.RowsAffected, res.Error
}

func (r *feedbackRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("feedback f").
		Select("f.id, f.registration_id, f.rating, f.comment, f.submitted_at, r.student_id, r.event_id, u.name AS student_name, u.email AS student_email, e.name AS event_name, e.date AS event_date, c.name AS college_name").
		Joins("JOIN registrations r ON f.registration_id = r.id").
		Joins("JOIN users u ON r.student_id = u.id").
		Joins("JOIN events e ON r.event_id = e.id").
		Joins("JOIN colleges c ON u.college_id = c.id")
}

func (r *feedbackRepository) FindAllViews(ctx context.Context) ([]dto.FeedbackView, error) {
	records := []dto.FeedbackView{}
	if err := r.viewQuery(ctx).Order("f.submitted_at DESC").Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *feedbackRepository) FindViewByID(ctx context.Context, id uint) (*dto.FeedbackView, error) {
	var record dto.FeedbackView
	if err := r.viewQuery(ctx).Where("f.id = ?", id).Take(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
