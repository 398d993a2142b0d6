package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Signup(ctx context.Context, phone, password, fullName string) (*SignupResponse, error)
	Authenticate(ctx context.Context, phone, password string) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	SetVerification(ctx context.Context, phone string, active bool, securityKey string) error
}

type service struct {
	users  Repository
	tokens RefreshTokenRepository
	issuer *TokenIssuer
	cfg    *config.SecuritySettings
}

func NewUserService(users Repository, tokens RefreshTokenRepository, issuer *TokenIssuer, cfg *config.SecuritySettings) Service {
	return &service{
		users:  users,
		tokens: tokens,
		issuer: issuer,
		cfg:    cfg,
	}
}

func (s *service) Signup(ctx context.Context, phone, password, fullName string) (*SignupResponse, error) {
	existing, err := s.users.GetByPhone(ctx, phone)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		logrus.WithField("phone", phone).Warn("Signup rejected, phone already registered")
		return nil, models.ErrPhoneRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Phone:        phone,
		FullName:     fullName,
		PasswordHash: string(hash),
		IsActive:     false, // pending administrative verification
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", u.ID).Info("User registered, pending verification")
	return &SignupResponse{UserID: u.ID}, nil
}

func (s *service) Authenticate(ctx context.Context, phone, password string) (*LoginResponse, error) {
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			// Same failure as a bad password, to avoid account enumeration.
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		logrus.WithField("phone", phone).Warn("Login attempt on unverified account")
		return nil, models.ErrAccountNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		logrus.WithField("phone", phone).Warn("Login failed, password mismatch")
		return nil, models.ErrInvalidCredentials
	}

	access, err := s.issuer.GenerateAccessToken(u)
	if err != nil {
		return nil, err
	}

	refresh, err := s.newRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Insert(ctx, refresh); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", u.ID).Info("User logged in")

	return &LoginResponse{
		Token:        access.Token,
		RefreshToken: refresh.Token,
		UserID:       u.ID,
		FullName:     u.FullName,
		ExpiresAt:    access.ExpiresAt,
		ExpiresIn:    access.ExpiresIn,
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	stored, err := s.tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if !stored.IsActive(time.Now().UTC()) {
		logrus.Warn("Refresh attempted with expired or revoked token")
		return nil, models.ErrTokenExpiredOrRevoked
	}

	u, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrAccountInactive
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, models.ErrAccountInactive
	}

	access, err := s.issuer.GenerateAccessToken(u)
	if err != nil {
		return nil, err
	}

	successor, err := s.newRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	// Revoke-and-issue commits atomically; a concurrent refresh of the same
	// token loses here with ErrTokenExpiredOrRevoked.
	if err := s.tokens.Rotate(ctx, refreshToken, successor); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", u.ID).Info("Refresh token rotated")

	return &RefreshResponse{
		Token:        access.Token,
		RefreshToken: successor.Token,
		ExpiresAt:    access.ExpiresAt,
		ExpiresIn:    access.ExpiresIn,
	}, nil
}

func (s *service) SetVerification(ctx context.Context, phone string, active bool, securityKey string) error {
	if !s.validSecurityKey(securityKey) {
		logrus.WithField("phone", phone).Warn("Verification change rejected, invalid security key")
		return models.ErrInvalidSecurityKey
	}

	if err := s.users.SetActive(ctx, phone, active); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"phone":  phone,
		"active": active,
	}).Info("User verification status changed")
	return nil
}

func (s *service) validSecurityKey(key string) bool {
	expected := s.cfg.AdminSecurityKey
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(expected)) == 1
}

func (s *service) newRefreshToken(userID string) (*RefreshToken, error) {
	token, err := s.issuer.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.AddDate(0, 0, s.cfg.RefreshTokenDays),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
