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

type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*model.College, error)
	GetAll(ctx context.Context) ([]model.College, error)
	GetByID(ctx context.Context, id uint) (*model.College, error)
}

type collegeService struct {
	collegeRepo repository.CollegeRepository
}

func NewCollegeService(collegeRepo repository.CollegeRepository) CollegeService {
	return &collegeService{collegeRepo: collegeRepo}
}

func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*model.College, error) {
	if _, err := s.collegeRepo.FindByName(ctx, req.Name); err == nil {
		return nil, apperror.Conflict("College already exists", "A college with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	college := &model.College{Name: req.Name}
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (s *collegeService) GetAll(ctx context.Context) ([]model.College, error) {
	return s.collegeRepo.FindAll(ctx)
}

func (s *collegeService) GetByID(ctx context.Context, id uint) (*model.College, error) {
	college, err := s.collegeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("College not found", fmt.Sprintf("College with ID %d does not exist", id))
		}
		return nil, err
	}
	return college, nil
}
