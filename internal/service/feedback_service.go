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

type FeedbackService interface {
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*model.Feedback, error)
	GetAll(ctx context.Context) ([]dto.FeedbackView, error)
	GetByID(ctx context.Context, id uint) (*dto.FeedbackView, error)
	Update(ctx context.Context, id uint, req *dto.UpdateFeedbackRequest) error
}

type feedbackService struct {
	feedbackRepo     repository.FeedbackRepository
	registrationRepo repository.RegistrationRepository
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	registrationRepo repository.RegistrationRepository,
) FeedbackService {
	return &feedbackService{
		feedbackRepo:     feedbackRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*model.Feedback, error) {
	if _, err := s.registrationRepo.FindByID(ctx, req.RegistrationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found", fmt.Sprintf("Registration with ID %d does not exist", req.RegistrationID))
		}
		return nil, err
	}

	if _, err := s.feedbackRepo.FindByRegistrationID(ctx, req.RegistrationID); err == nil {
		return nil, apperror.Conflict("Feedback already submitted", "Feedback for this registration has already been submitted")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feedback := &model.Feedback{
		RegistrationID: req.RegistrationID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) GetAll(ctx context.Context) ([]dto.FeedbackView, error) {
	return s.feedbackRepo.FindAllViews(ctx)
}

func (s *feedbackService) GetByID(ctx context.Context, id uint) (*dto.FeedbackView, error) {
	feedback, err := s.feedbackRepo.FindViewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Feedback not found", fmt.Sprintf("Feedback with ID %d does not exist", id))
		}
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) Update(ctx context.Context, id uint, req *dto.UpdateFeedbackRequest) error {
	rows, err := s.feedbackRepo.Update(ctx, id, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("Feedback not found", fmt.Sprintf("Feedback with ID %d does not exist", id))
	}
	return nil
}
