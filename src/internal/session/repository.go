package session

import (
	"context"
	"errors"
	"time"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Insert(ctx context.Context, session *Session) error
	Complete(ctx context.Context, sessionID string, endTimestamp int64) error
	Cancel(ctx context.Context, sessionID string, endTimestamp int64, remarks string) error
	List(ctx context.Context, page, limit int) ([]*Session, error)
}

type repository struct {
	collection *mongo.Collection
}

func NewSessionRepository(db *clients.MongoDB, collectionName string) Repository {
	collection := db.Database.Collection(collectionName)
	return &repository{collection: collection}
}

func (r *repository) GetByID(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	filter := bson.M{"_id": sessionID}

	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrSessionNotFound
		}
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to get session")
		return nil, models.ErrDatabaseQuery
	}

	return &session, nil
}

func (r *repository) Insert(ctx context.Context, session *Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrSessionExists
		}
		logrus.WithError(err).WithField("session_id", session.SessionID).Error("Failed to insert session")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *repository) Complete(ctx context.Context, sessionID string, endTimestamp int64) error {
	update := bson.M{
		"$set": bson.M{
			"end_timestamp": endTimestamp,
			"status":        StatusCompleted,
			"updated_at":    time.Now().UTC(),
		},
	}
	return r.updateOne(ctx, sessionID, update)
}

func (r *repository) Cancel(ctx context.Context, sessionID string, endTimestamp int64, remarks string) error {
	update := bson.M{
		"$set": bson.M{
			"end_timestamp": endTimestamp,
			"status":        StatusRejected,
			"remarks":       remarks,
			"updated_at":    time.Now().UTC(),
		},
	}
	return r.updateOne(ctx, sessionID, update)
}

func (r *repository) updateOne(ctx context.Context, sessionID string, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to update session")
		return models.ErrDatabaseUpdate
	}
	if result.MatchedCount == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, page, limit int) ([]*Session, error) {
	skip := (page - 1) * limit

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(skip)).
		SetSort(bson.M{"start_timestamp": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logrus.WithError(err).Error("Failed to list sessions")
		return nil, models.ErrDatabaseQuery
	}
	defer cursor.Close(ctx)

	var sessions []*Session
	for cursor.Next(ctx) {
		var session Session
		if err := cursor.Decode(&session); err != nil {
			logrus.WithError(err).Error("Failed to decode session")
			continue
		}
		sessions = append(sessions, &session)
	}

	if err := cursor.Err(); err != nil {
		logrus.WithError(err).Error("Cursor error")
		return nil, models.ErrDatabaseQuery
	}

	return sessions, nil
}
