package services

import (
	"context"
	"time"

	"github.com/trackmyspend/expense_tracker_app/internal/core/domain"
	portssvc "github.com/trackmyspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackmyspend/expense_tracker_app/internal/platform/config"
	"github.com/trackmyspend/expense_tracker_app/internal/utils"
)

// tokenService issues signed access tokens from application configuration.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
