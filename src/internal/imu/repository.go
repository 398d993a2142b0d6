package imu

import (
	"context"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	BulkInsert(ctx context.Context, records []*Record) error
}

type repository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewIMURepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{
		client:     db.Client,
		collection: db.Database.Collection(collectionName),
	}
}

// BulkInsert persists the whole batch in one transaction: a cancelled context
// or a failed insert rolls back every record.
func (r *repository) BulkInsert(ctx context.Context, records []*Record) error {
	documents := make([]interface{}, len(records))
	for i, record := range records {
		documents[i] = record
	}

	session, err := r.client.StartSession()
	if err != nil {
		logrus.WithError(err).Error("Failed to start mongo session for bulk insert")
		return models.ErrDatabaseInsert
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.collection.InsertMany(sc, documents)
	})
	if err != nil {
		logrus.WithError(err).WithField("count", len(documents)).Error("Failed to bulk insert IMU records")
		return models.ErrDatabaseInsert
	}

	return nil
}
