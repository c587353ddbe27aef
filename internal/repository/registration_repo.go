package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) error
	FindByID(ctx context.Context, id uint) (*model.Registration, error)
	FindByStudentAndEvent(ctx context.Context, studentID, eventID uint) (*model.Registration, error)
	Delete(ctx context.Context, id uint) (int64, error)

	FindAllViews(ctx context.Context) ([]dto.RegistrationView, error)
	FindViewByID(ctx context.Context, id uint) (*dto.RegistrationView, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*model.Registration, error) {
	var registration model.Registration
	if err := r.db.WithContext(ctx).First(&registration, id).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) FindByStudentAndEvent(ctx context.Context, studentID, eventID uint) (*model.Registration, error) {
	var registration model.Registration
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&registration).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Registration{}, id)
	return res.RowsAffected, res.Error
}

func (r *registrationRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("registrations r").
		Select("r.id, r.student_id, r.event_id, r.registered_at, u.name AS student_name, u.email AS student_email, e.name AS event_name, e.date AS event_date, c.name AS college_name").
		Joins("JOIN users u ON r.student_id = u.id").
		Joins("JOIN events e ON r.event_id = e.id").
		Joins("JOIN colleges c ON u.college_id = c.id")
}

func (r *registrationRepository) FindAllViews(ctx context.Context) ([]dto.RegistrationView, error) {
	registrations := []dto.RegistrationView{}
	err := r.viewQuery(ctx).Order("r.registered_at DESC").Scan(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) FindViewByID(ctx context.Context, id uint) (*dto.RegistrationView, error) {
	var registration dto.RegistrationView
	err := r.viewQuery(ctx).Where("r.id = ?", id).Take(&registration).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}
