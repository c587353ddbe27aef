package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-events/internal/dto"
	"campus-events/internal/model"
	"campus-events/pkg/apperror"
	"campus-events/pkg/token"
)

func newTestAuthService(userRepo *mockUserRepo) AuthService {
	return NewAuthService(userRepo, token.NewManager("test-secret", time.Hour))
}

func TestSignup_Success(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newTestAuthService(userRepo)

	collegeID := uint(1)
	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:      "Ana Lim",
		Email:     "ana@example.com",
		Password:  "secret123",
		Role:      model.RoleStudent,
		CollegeID: &collegeID,
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if resp.User.ID == 0 {
		t.Error("expected the created user to have an ID")
	}
	if resp.User.PasswordHash == "secret123" {
		t.Error("password must not be stored in plaintext")
	}
	if !token.CheckPassword("secret123", resp.User.PasswordHash) {
		t.Error("stored hash does not verify the original password")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newTestAuthService(userRepo)

	req := &dto.SignupRequest{
		Name:     "Ana Lim",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     model.RoleAdmin,
	}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), req)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("expected conflict for duplicate email, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newTestAuthService(userRepo)

	if _, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Ben Ortiz",
		Email:    "ben@example.com",
		Password: "hunter22",
		Role:     model.RoleAdmin,
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ben@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if resp.User.Email != "ben@example.com" {
		t.Errorf("expected user ben@example.com, got %s", resp.User.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newTestAuthService(userRepo)

	if _, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Ben Ortiz",
		Email:    "ben@example.com",
		Password: "hunter22",
		Role:     model.RoleAdmin,
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ben@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("expected unauthorized for wrong password, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestMe_NotFound(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Me(context.Background(), 42)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected not found for missing user, got %v", err)
	}
}
