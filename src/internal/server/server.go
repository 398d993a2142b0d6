package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/dependency"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = *logrus.StandardLogger()

type Server struct {
	config *config.Configuration
	deps   *dependency.Manager
	http   *http.Server
}

func New(cfg *config.Configuration) *Server {
	gin.SetMode(cfg.Server.Mode)

	mongodb, err := clients.NewMongoDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}

	redisClient, err := clients.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}

	var rabbitMQ *clients.RabbitMQ
	if cfg.Queue.RabbitMQ.Url != "" {
		rabbitMQ = clients.NewRabbitMQ(&cfg.Queue)
	} else {
		log.Warn("RabbitMQ url is not configured, sensor batches are written directly to storage")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	deps := dependency.NewDependencyManager(router, mongodb, redisClient, rabbitMQ, cfg)
	SetupRoutes(deps)

	return &Server{
		config: cfg,
		deps:   deps,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
	}
}

// Start runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully and closes the backing clients.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Infof("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.App.Timeout)*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}

	s.close(ctx)
	return nil
}

func (s *Server) close(ctx context.Context) {
	if s.deps.RabbitMQ != nil {
		if err := s.deps.RabbitMQ.Close(); err != nil {
			log.WithError(err).Error("Failed to close RabbitMQ connection")
		}
	}
	if err := s.deps.Redis.Close(); err != nil {
		log.WithError(err).Error("Failed to close Redis connection")
	}
	if err := s.deps.Mongodb.Close(ctx); err != nil {
		log.WithError(err).Error("Failed to close MongoDB connection")
	}
}
