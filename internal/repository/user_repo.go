package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Student views alias the users table filtered to role=student.
	FindStudents(ctx context.Context) ([]dto.StudentView, error)
	FindStudentByID(ctx context.Context, id uint) (*dto.StudentView, error)
	FindStudentEvents(ctx context.Context, studentID uint) ([]dto.StudentEventView, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudents(ctx context.Context) ([]dto.StudentView, error) {
	students := []dto.StudentView{}
	err := r.db.WithContext(ctx).
		Table("users s").
		Select("s.id, s.name, s.email, s.college_id, s.created_at, c.name AS college_name").
		Joins("JOIN colleges c ON s.college_id = c.id").
		Where("s.role = ?", model.RoleStudent).
		Order("s.name").
		Scan(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepository) FindStudentByID(ctx context.Context, id uint) (*dto.StudentView, error) {
	var student dto.StudentView
	err := r.db.WithContext(ctx).
		Table("users s").
		Select("s.id, s.name, s.email, s.college_id, s.created_at, c.name AS college_name").
		Joins("JOIN colleges c ON s.college_id = c.id").
		Where("s.id = ? AND s.role = ?", id, model.RoleStudent).
		Take(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *userRepository) FindStudentEvents(ctx context.Context, studentID uint) ([]dto.StudentEventView, error) {
	events := []dto.StudentEventView{}
	err := r.db.WithContext(ctx).
		Table("events e").
		Select("e.id, e.name, e.type, e.date, e.college_id, e.created_by, e.description, e.poster_url, e.created_at, c.name AS college_name, r.registered_at").
		Joins("JOIN colleges c ON e.college_id = c.id").
		Joins("JOIN registrations r ON e.id = r.event_id").
		Where("r.student_id = ?", studentID).
		Order("e.date DESC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
