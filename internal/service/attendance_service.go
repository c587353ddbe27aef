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

type AttendanceService interface {
	Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*model.Attendance, error)
	GetAll(ctx context.Context) ([]dto.AttendanceView, error)
	GetByID(ctx context.Context, id uint) (*dto.AttendanceView, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type attendanceService struct {
	attendanceRepo   repository.AttendanceRepository
	registrationRepo repository.RegistrationRepository
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	registrationRepo repository.RegistrationRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo:   attendanceRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *attendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*model.Attendance, error) {
	if _, err := s.registrationRepo.FindByID(ctx, req.RegistrationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found", fmt.Sprintf("Registration with ID %d does not exist", req.RegistrationID))
		}
		return nil, err
	}

	if _, err := s.attendanceRepo.FindByRegistrationID(ctx, req.RegistrationID); err == nil {
		return nil, apperror.Conflict("Attendance already marked", "Attendance for this registration has already been marked")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendance := &model.Attendance{
		RegistrationID: req.RegistrationID,
		Status:         req.Status,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) GetAll(ctx context.Context) ([]dto.AttendanceView, error) {
	return s.attendanceRepo.FindAllViews(ctx)
}

func (s *attendanceService) GetByID(ctx context.Context, id uint) (*dto.AttendanceView, error) {
	attendance, err := s.attendanceRepo.FindViewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Attendance record not found", fmt.Sprintf("Attendance record with ID %d does not exist", id))
		}
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) UpdateStatus(ctx context.Context, id uint, status string) error {
	rows, err := s.attendanceRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("Attendance record not found", fmt.Sprintf("Attendance record with ID %d does not exist", id))
	}
	return nil
}
