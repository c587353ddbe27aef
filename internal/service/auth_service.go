package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
	"campus-events/internal/repository"
	"campus-events/pkg/apperror"
	"campus-events/pkg/token"
)

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("Email already exists", "A user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := token.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CollegeID:    req.CollegeID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Generate(user.ID, user.Email, user.Role, user.CollegeID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "User created successfully",
		Token:   signed,
		User:    user,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials", "Email or password is incorrect")
		}
		return nil, err
	}

	if !token.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid credentials", "Email or password is incorrect")
	}

	signed, err := s.tokens.Generate(user.ID, user.Email, user.Role, user.CollegeID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   signed,
		User:    user,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found", "User no longer exists")
		}
		return nil, err
	}
	return user, nil
}
