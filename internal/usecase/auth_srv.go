package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/response"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.Role)

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// One role per identity, assigned at signup and immutable afterwards
	assignment := &entity.RoleAssignment{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		Role:       role,
	}
	if err := s.repo.Role.Create(ctx, assignment); err != nil {
		s.log.Error("Failed to assign role",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create account")
	}

	// Caregivers get an empty profile to fill in later
	if role == entity.RoleCaregiver {
		profile := &entity.CaregiverProfile{
			Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID: user.ID,
		}
		if err := s.repo.Caregiver.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create caregiver profile",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to create account")
		}
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// continue without auto-login
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(role)))

	return s.buildAuthResponse(user, role, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to log in")
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid email or password")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	role, err := s.lookupRole(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to log in")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to log in")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.buildAuthResponse(user, role, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	role, err := s.lookupRole(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role")
	}

	resp := response.UserToResponse(user, role)
	return &resp, nil
}

// lookupRole resolves the identity's single role; "" means no role row yet.
func (s *authService) lookupRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, error) {
	assignment, err := s.repo.Role.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to look up role",
			zap.Error(err), zap.String("user_id", userID.String()))
		return "", err
	}
	if assignment == nil {
		return "", nil
	}
	return assignment.Role, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userID,
		Token:      utils.GenerateSessionToken().String(),
		ExpiresAt:  now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) buildAuthResponse(user *entity.User, role entity.UserRole, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		User: response.UserToResponse(user, role),
	}
	if session != nil {
		resp.Token = session.Token
		resp.ExpiresAt = &session.ExpiresAt
	}
	return resp
}
