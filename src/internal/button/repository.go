package button

import (
	"context"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Insert(ctx context.Context, press *ButtonPress) error
}

type repository struct {
	collection *mongo.Collection
}

func NewButtonPressRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{collection: db.Database.Collection(collectionName)}
}

func (r *repository) Insert(ctx context.Context, press *ButtonPress) error {
	_, err := r.collection.InsertOne(ctx, press)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id": press.SessionID,
			"action":     press.Action,
		}).Error("Failed to insert button press")
		return models.ErrDatabaseInsert
	}
	return nil
}
