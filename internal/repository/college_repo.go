package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/model"
)

type CollegeRepository interface {
	Create(ctx context.Context, college *model.College) error
	FindByID(ctx context.Context, id uint) (*model.College, error)
	FindByName(ctx context.Context, name string) (*model.College, error)
	FindAll(ctx context.Context) ([]model.College, error)
}

type collegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) Create(ctx context.Context, college *model.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

func (r *collegeRepository) FindByID(ctx context.Context, id uint) (*model.College, error) {
	var college model.College
	if err := r.db.WithContext(ctx).First(&college, id).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) FindByName(ctx context.Context, name string) (*model.College, error) {
	var college model.College
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) FindAll(ctx context.Context) ([]model.College, error) {
	colleges := []model.College{}
	if err := r.db.WithContext(ctx).Order("name").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}
