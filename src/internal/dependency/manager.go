package dependency

import (
	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/appversion"
	"ips-data-svc/src/internal/bonus"
	"ips-data-svc/src/internal/button"
	"ips-data-svc/src/internal/cache"
	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/imu"
	"ips-data-svc/src/internal/session"
	"ips-data-svc/src/internal/user"

	"github.com/gin-gonic/gin"
)

type Manager struct {
	Router            *gin.Engine
	Config            *config.Configuration
	Mongodb           *clients.MongoDB
	Redis             *clients.RedisClient
	RabbitMQ          *clients.RabbitMQ
	CacheService      cache.Service
	SessionHandler    session.Handler
	IMUHandler        imu.Handler
	ButtonHandler     button.Handler
	UserHandler       user.Handler
	BonusHandler      bonus.Handler
	AppVersionHandler appversion.Handler
}

func NewDependencyManager(router *gin.Engine,
	mongodb *clients.MongoDB,
	redisClient *clients.RedisClient,
	rabbitMQ *clients.RabbitMQ,
	cfg *config.Configuration) *Manager {
	cacheService := cache.NewCacheService(redisClient.Client, cfg)

	sessionRepo := session.NewSessionRepository(mongodb, cfg.Database.Collections.Sessions)
	sessionService := session.NewSessionService(sessionRepo)
	sessionHandler := session.NewHandler(cfg, sessionService)

	var publisher imu.Publisher
	if rabbitMQ != nil {
		publisher = rabbitMQ
	}
	imuRepo := imu.NewIMURepository(mongodb, cfg.Database.Collections.IMUData)
	imuService := imu.NewIMUService(imuRepo, publisher, &cfg.Queue)
	imuHandler := imu.NewHandler(cfg, imuService)

	buttonRepo := button.NewButtonPressRepository(mongodb, cfg.Database.Collections.ButtonPresses)
	buttonService := button.NewButtonPressService(buttonRepo, sessionRepo, cacheService)
	buttonHandler := button.NewHandler(cfg, buttonService)

	userRepo := user.NewUserRepository(mongodb, cfg.Database.Collections.Users)
	tokenRepo := user.NewRefreshTokenRepository(mongodb, cfg.Database.Collections.RefreshTokens)
	tokenIssuer := user.NewTokenIssuer(&cfg.Security)
	userService := user.NewUserService(userRepo, tokenRepo, tokenIssuer, &cfg.Security)
	userHandler := user.NewHandler(cfg, userService)

	bonusRepo := bonus.NewRepository(mongodb, cfg.Database.Collections.Bonuses)
	bonusService := bonus.NewService(bonusRepo)
	bonusHandler := bonus.NewHandler(cfg, bonusService)

	appVersionRepo := appversion.NewRepository(mongodb, cfg.Database.Collections.AppVersions)
	appVersionService := appversion.NewService(appVersionRepo, cacheService)
	appVersionHandler := appversion.NewHandler(cfg, appVersionService)

	return &Manager{
		Router:            router,
		Config:            cfg,
		Mongodb:           mongodb,
		Redis:             redisClient,
		RabbitMQ:          rabbitMQ,
		CacheService:      cacheService,
		SessionHandler:    sessionHandler,
		IMUHandler:        imuHandler,
		ButtonHandler:     buttonHandler,
		UserHandler:       userHandler,
		BonusHandler:      bonusHandler,
		AppVersionHandler: appVersionHandler,
	}
}
