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

type RegistrationService interface {
	Register(ctx context.Context, studentID uint, req *dto.RegisterRequest) (*model.Registration, error)
	GetAll(ctx context.Context) ([]dto.RegistrationView, error)
	GetByID(ctx context.Context, id uint) (*dto.RegistrationView, error)
	Cancel(ctx context.Context, id uint) error
}

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	eventRepo        repository.EventRepository
}

func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
	}
}

// Register enrolls the authenticated student in an event. The student
// identity always comes from the token, never from the request body.
func (s *registrationService) Register(ctx context.Context, studentID uint, req *dto.RegisterRequest) (*model.Registration, error) {
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found", fmt.Sprintf("Event with ID %d does not exist", req.EventID))
		}
		return nil, err
	}

	if _, err := s.registrationRepo.FindByStudentAndEvent(ctx, studentID, req.EventID); err == nil {
		return nil, apperror.Conflict("Already registered", "Student is already registered for this event")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	registration := &model.Registration{
		StudentID: studentID,
		EventID:   req.EventID,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}
	return registration, nil
}

func (s *registrationService) GetAll(ctx context.Context) ([]dto.RegistrationView, error) {
	return s.registrationRepo.FindAllViews(ctx)
}

func (s *registrationService) GetByID(ctx context.Context, id uint) (*dto.RegistrationView, error) {
	registration, err := s.registrationRepo.FindViewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found", fmt.Sprintf("Registration with ID %d does not exist", id))
		}
		return nil, err
	}
	return registration, nil
}

func (s *registrationService) Cancel(ctx context.Context, id uint) error {
	rows, err := s.registrationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("Registration not found", fmt.Sprintf("Registration with ID %d does not exist", id))
	}
	return nil
}
