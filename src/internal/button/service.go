package button

import (
	"context"
	"errors"
	"time"

	"ips-data-svc/src/internal/cache"
	"ips-data-svc/src/internal/models"
	"ips-data-svc/src/internal/session"

	"github.com/sirupsen/logrus"
)

type Service interface {
	Submit(ctx context.Context, req *SubmitRequest, userID *string) error
}

type service struct {
	repository Repository
	sessions   session.Repository
	cache      cache.Service
}

func NewButtonPressService(repository Repository, sessions session.Repository, cacheService cache.Service) Service {
	return &service{
		repository: repository,
		sessions:   sessions,
		cache:      cacheService,
	}
}

func (s *service) Submit(ctx context.Context, req *SubmitRequest, userID *string) error {
	action := Action(req.Action)
	if !action.IsValid() {
		logrus.WithField("action", req.Action).Warn("Rejected unknown button action")
		return models.ErrInvalidAction
	}

	if req.Timestamp <= 0 {
		return models.ErrInvalidSample
	}

	exists, err := s.sessionExists(ctx, req.SessionID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrSessionNotFound
	}

	now := time.Now().UTC()
	press := &ButtonPress{
		SessionID:  req.SessionID,
		UserID:     userID,
		Action:     action,
		Timestamp:  req.Timestamp,
		FloorIndex: req.FloorIndex,
		IsSynced:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.Insert(ctx, press); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"session_id": req.SessionID,
		"action":     action,
	}).Info("Button press recorded")

	return nil
}

// sessionExists checks the cache first and falls back to the store. Sessions
// are never deleted, so a cached hit stays valid for existence purposes.
func (s *service) sessionExists(ctx context.Context, sessionID string) (bool, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSession(ctx, sessionID)
		if err == nil && cached != nil {
			return true, nil
		}
	}

	found, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if s.cache != nil {
		if err := s.cache.CacheSession(ctx, found); err != nil {
			logrus.WithError(err).WithField("session_id", sessionID).Debug("Session cache write failed")
		}
	}

	return true, nil
}
