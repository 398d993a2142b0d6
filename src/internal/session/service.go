package session

import (
	"context"
	"time"

	"ips-data-svc/src/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxListLimit = 100

type Service interface {
	Create(ctx context.Context, sessionID string, startTimestamp int64, userID *string) (*CreateSessionResponse, error)
	Close(ctx context.Context, sessionID string, endTimestamp int64) error
	Cancel(ctx context.Context, sessionID, actingUserID string) error
	List(ctx context.Context, page, limit int) ([]*ListItem, error)
}

type service struct {
	repository Repository
}

func NewSessionService(repository Repository) Service {
	return &service{repository: repository}
}

func (s *service) Create(ctx context.Context, sessionID string, startTimestamp int64, userID *string) (*CreateSessionResponse, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		logrus.WithField("session_id", sessionID).Warn("Rejected non-UUID session id")
		return nil, models.ErrInvalidSessionID
	}

	now := time.Now().UTC()
	session := &Session{
		SessionID:      sessionID,
		UserID:         userID,
		StartTimestamp: startTimestamp,
		IsSynced:       true,
		Status:         StatusInProgress,
		PaymentStatus:  PaymentUnpaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repository.Insert(ctx, session); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session_id":      sessionID,
		"start_timestamp": startTimestamp,
	}).Info("Session created")

	return &CreateSessionResponse{
		SessionID: session.SessionID,
		CreatedAt: session.StartTimestamp,
	}, nil
}

func (s *service) Close(ctx context.Context, sessionID string, endTimestamp int64) error {
	session, err := s.repository.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.Status == StatusCompleted {
		return models.ErrSessionClosed
	}

	if endTimestamp <= session.StartTimestamp {
		return models.ErrInvalidTimestamp
	}

	if err := s.repository.Complete(ctx, sessionID, endTimestamp); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"session_id":    sessionID,
		"end_timestamp": endTimestamp,
	}).Info("Session closed")

	return nil
}

func (s *service) Cancel(ctx context.Context, sessionID, actingUserID string) error {
	session, err := s.repository.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.UserID == nil || *session.UserID != actingUserID {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
			"user_id":    actingUserID,
		}).Warn("User attempted to cancel a session they do not own")
		return models.ErrNotSessionOwner
	}

	if session.IsTerminal() {
		return models.ErrSessionTerminal
	}

	endTimestamp := time.Now().UTC().UnixMilli()
	if err := s.repository.Cancel(ctx, sessionID, endTimestamp, "Cancelled by user"); err != nil {
		return err
	}

	logrus.WithField("session_id", sessionID).Info("Session cancelled")
	return nil
}

func (s *service) List(ctx context.Context, page, limit int) ([]*ListItem, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sessions, err := s.repository.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*ListItem, len(sessions))
	for i, session := range sessions {
		items[i] = &ListItem{
			SessionID:      session.SessionID,
			StartTimestamp: session.StartTimestamp,
			EndTimestamp:   session.EndTimestamp,
			IsSynced:       session.IsSynced,
			Status:         session.Status,
			PaymentStatus:  session.PaymentStatus,
			Remarks:        session.Remarks,
			BonusAmount:    session.BonusAmount,
		}
	}

	logrus.WithFields(logrus.Fields{
		"count": len(items),
		"page":  page,
		"limit": limit,
	}).Debug("Sessions listed")

	return items, nil
}
