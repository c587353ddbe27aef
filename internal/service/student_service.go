package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
	"campus-events/internal/repository"
	"campus-events/pkg/apperror"
)

// unusablePasswordHash marks accounts created by an admin without
// credentials. It can never match a bcrypt digest, so such students must
// sign up through /auth before they can log in.
const unusablePasswordHash = "!"

type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error)
	GetAll(ctx context.Context) ([]dto.StudentView, error)
	GetByID(ctx context.Context, id uint) (*dto.StudentView, error)
	GetEvents(ctx context.Context, studentID uint) ([]dto.StudentEventView, error)
}

type studentService struct {
	userRepo    repository.UserRepository
	collegeRepo repository.CollegeRepository
}

func NewStudentService(userRepo repository.UserRepository, collegeRepo repository.CollegeRepository) StudentService {
	return &studentService{userRepo: userRepo, collegeRepo: collegeRepo}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error) {
	if _, err := s.collegeRepo.FindByID(ctx, req.CollegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("College not found", fmt.Sprintf("College with ID %d does not exist", req.CollegeID))
		}
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("Email already exists", "A student with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	collegeID := req.CollegeID
	student := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: unusablePasswordHash,
		Role:         model.RoleStudent,
		CollegeID:    &collegeID,
	}
	if err := s.userRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetAll(ctx context.Context) ([]dto.StudentView, error) {
	return s.userRepo.FindStudents(ctx)
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*dto.StudentView, error) {
	student, err := s.userRepo.FindStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Student not found", fmt.Sprintf("Student with ID %d does not exist", id))
		}
		return nil, err
	}
	return student, nil
}

// GetEvents lists the events a student registered for, most recent event
// first. An unknown student yields an empty list, not a 404.
func (s *studentService) GetEvents(ctx context.Context, studentID uint) ([]dto.StudentEventView, error) {
	return s.userRepo.FindStudentEvents(ctx, studentID)
}
