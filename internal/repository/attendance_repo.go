package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	FindByRegistrationID(ctx context.Context, registrationID uint) (*model.Attendance, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)

	FindAllViews(ctx context.Context) ([]dto.AttendanceView, error)
	FindViewByID(ctx context.Context, id uint) (*dto.AttendanceView, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) FindByRegistrationID(ctx context.Context, registrationID uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("attendance a").
		Select("a.id, a.registration_id, a.status, a.marked_at, r.student_id, r.event_id, u.name AS student_name, u.email AS student_email, e.name AS event_name, e.date AS event_date, c.name AS college_name").
		Joins("JOIN registrations r ON a.registration_id = r.id").
		Joins("JOIN users u ON r.student_id = u.id").
		Joins("JOIN events e ON r.event_id = e.id").
		Joins("JOIN colleges c ON u.college_id = c.id")
}

func (r *attendanceRepository) FindAllViews(ctx context.Context) ([]dto.AttendanceView, error) {
	records := []dto.AttendanceView{}
	if err := r.viewQuery(ctx).Order("a.marked_at DESC").Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) FindViewByID(ctx context.Context, id uint) (*dto.AttendanceView, error) {
	var record dto.AttendanceView
	if err := r.viewQuery(ctx).Where("a.id = ?", id).Take(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
