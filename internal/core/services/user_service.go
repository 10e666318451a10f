package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trackmyspend/expense_tracker_app/internal/apperrors"
	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmyspend/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/dto"
	"github.com/trackmyspend/expense_tracker_app/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface.
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// RegisterUser creates a new local account with a bcrypt-hashed password.
func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user",
				slog.String("username", user.Username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered successfully",
		slog.String("new_user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser verifies username/password credentials. Any mismatch
// surfaces as ErrUnauthorized so callers cannot probe for valid usernames.
func (s *userServiceImpl) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID")
		}
		return nil, err
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves the account for a verified Google identity.
// First sign-in provisions a password-less user keyed by the Google subject.
func (s *userServiceImpl) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProvider(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up google user")
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       info.Email,
		Email:          strings.ToLower(info.Email),
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision google user")
		return nil, err
	}

	s.LogInfo(ctx, "Google user provisioned",
		slog.String("new_user_id", newUser.UserID))
	return &newUser, nil
}
