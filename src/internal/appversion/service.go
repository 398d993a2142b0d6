package appversion

import (
	"context"
	"errors"

	"ips-data-svc/src/internal/cache"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
)

type Service interface {
	Check(ctx context.Context, versionName string) (*CheckResponse, error)
}

type service struct {
	repository Repository
	cache      cache.Service
}

func NewService(repository Repository, cacheService cache.Service) Service {
	return &service{
		repository: repository,
		cache:      cacheService,
	}
}

// Check reports whether the given client version is still allowed to use the
// service. Unknown versions are treated as inactive rather than as errors.
func (s *service) Check(ctx context.Context, versionName string) (*CheckResponse, error) {
	if cached, err := s.cache.GetAppVersionActive(ctx, versionName); err == nil && cached != nil {
		return &CheckResponse{VersionName: versionName, IsActive: *cached}, nil
	}

	active := false
	version, err := s.repository.GetByVersionName(ctx, versionName)
	switch {
	case err == nil:
		active = version.IsActive
	case errors.Is(err, models.ErrAppVersionNotFound):
		logrus.WithField("version", versionName).Debug("Unknown app version checked")
	default:
		return nil, err
	}

	if err := s.cache.CacheAppVersionActive(ctx, versionName, active); err != nil {
		logrus.WithError(err).WithField("version", versionName).Warn("Failed to cache app version status")
	}

	return &CheckResponse{VersionName: versionName, IsActive: active}, nil
}
