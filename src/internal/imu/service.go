package imu

import (
	"context"
	"fmt"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
)

// Publisher is the durable queue contract: publish one message, at-least-once
// delivery once the call returns without error.
type Publisher interface {
	PublishJSON(ctx context.Context, queueName string, message interface{}) error
}

type Service interface {
	Upload(ctx context.Context, sessionID *string, userID *string, points []DataPoint) (*UploadResponse, error)
}

type service struct {
	repository Repository
	publisher  Publisher
	cfg        *config.QueueConfig
}

func NewIMUService(repository Repository, publisher Publisher, cfg *config.QueueConfig) Service {
	return &service{
		repository: repository,
		publisher:  publisher,
		cfg:        cfg,
	}
}

// Upload validates the batch and hands it off for durable processing. The
// whole batch is accepted or rejected: a single bad sample fails everything
// and nothing is persisted.
func (s *service) Upload(ctx context.Context, sessionID *string, userID *string, points []DataPoint) (*UploadResponse, error) {
	if len(points) == 0 {
		return nil, models.ErrEmptyBatch
	}

	for i, point := range points {
		if point.Timestamp <= 0 {
			logrus.WithFields(logrus.Fields{
				"index":     i,
				"timestamp": point.Timestamp,
			}).Warn("Rejected IMU batch with invalid sample")
			return nil, models.ErrInvalidSample
		}
	}

	if s.useQueue() {
		return s.publishToQueue(ctx, sessionID, userID, points)
	}
	return s.writeDirect(ctx, sessionID, userID, points)
}

func (s *service) useQueue() bool {
	return s.cfg.UseQueueForIMU && s.publisher != nil && s.cfg.RabbitMQ.Url != ""
}

func (s *service) publishToQueue(ctx context.Context, sessionID *string, userID *string, points []DataPoint) (*UploadResponse, error) {
	message := &QueueMessage{
		SessionID:  sessionID,
		UserID:     userID,
		DataPoints: points,
		ReceivedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishJSON(ctx, s.cfg.RabbitMQ.IMUDataQueue, message); err != nil {
		logrus.WithError(err).WithField("count", len(points)).Error("Failed to publish IMU batch")
		return nil, fmt.Errorf("%w: %v", models.ErrPublishFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"count": len(points),
		"queue": s.cfg.RabbitMQ.IMUDataQueue,
	}).Info("IMU batch published to queue")

	return &UploadResponse{PointsReceived: len(points), SessionID: sessionID}, nil
}

func (s *service) writeDirect(ctx context.Context, sessionID *string, userID *string, points []DataPoint) (*UploadResponse, error) {
	now := time.Now().UTC()
	records := make([]*Record, len(points))
	for i, point := range points {
		records[i] = &Record{
			SessionID: sessionID,
			UserID:    userID,
			IsSynced:  true,
			CreatedAt: now,
			UpdatedAt: now,
			DataPoint: point,
		}
	}

	if err := s.repository.BulkInsert(ctx, records); err != nil {
		return nil, err
	}

	logrus.WithField("count", len(records)).Info("IMU batch written to store")

	return &UploadResponse{PointsReceived: len(records), SessionID: sessionID}, nil
}
