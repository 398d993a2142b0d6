package appversion

import (
	"context"
	"errors"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	GetByVersionName(ctx context.Context, versionName string) (*AppVersion, error)
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *clients.MongoDB, collectionName string) Repository {
	return &repository{
		collection: db.Database.Collection(collectionName),
	}
}

func (r *repository) GetByVersionName(ctx context.Context, versionName string) (*AppVersion, error) {
	var version AppVersion
	err := r.collection.FindOne(ctx, bson.M{"version_name": versionName}).Decode(&version)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrAppVersionNotFound
		}
		logrus.WithError(err).WithField("version", versionName).Error("Failed to query app version")
		return nil, models.ErrDatabaseQuery
	}
	return &version, nil
}
