package bonus

import (
	"context"
	"time"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Bonus, error)
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{
		collection: db.Database.Collection(collectionName),
	}
}

func (r *repository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Bonus, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query bonuses")
		return nil, models.ErrDatabaseQuery
	}
	defer cursor.Close(ctx)

	bonuses := make([]Bonus, 0)
	if err := cursor.All(ctx, &bonuses); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to decode bonuses")
		return nil, models.ErrDatabaseQuery
	}
	return bonuses, nil
}
