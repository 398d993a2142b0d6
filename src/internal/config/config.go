package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logs     LogsSettings     `mapstructure:"logs"`
	App      Application      `mapstructure:"app"`
	Database Database         `mapstructure:"database"`
	Queue    QueueConfig      `mapstructure:"queue"`
	Redis    Redis            `mapstructure:"redis"`
	Security SecuritySettings `mapstructure:"security"`
	Server   ServerSettings   `mapstructure:"server"`
	Cache    CacheConfig      `mapstructure:"cache"`
}

type LogsSettings struct {
	Level            string `mapstructure:"level"`
	Path             string `mapstructure:"log-path"`
	EnableJSONOutput bool   `mapstructure:"enable-json-output"`
}

type Application struct {
	Name    string `mapstructure:"name"`
	Timeout int    `mapstructure:"timeout"`
	Version string `mapstructure:"version"`
}

type Database struct {
	Url         string      `mapstructure:"url"`
	DbName      string      `mapstructure:"dbname"`
	Collections Collections `mapstructure:"collections"`
	Timeout     int         `mapstructure:"timeout"`
}

type Collections struct {
	Sessions      string `mapstructure:"sessions"`
	IMUData       string `mapstructure:"imu-data"`
	ButtonPresses string `mapstructure:"button-presses"`
	Users         string `mapstructure:"users"`
	RefreshTokens string `mapstructure:"refresh-tokens"`
	Bonuses       string `mapstructure:"bonuses"`
	AppVersions   string `mapstructure:"app-versions"`
}

type QueueConfig struct {
	RabbitMQ       RabbitMQConfig `mapstructure:"rabbitmq"`
	UseQueueForIMU bool           `mapstructure:"use-queue-for-imu"`
}

type RabbitMQConfig struct {
	Url          string `mapstructure:"url"`
	IMUDataQueue string `mapstructure:"imu-data-queue"`
	Timeout      int    `mapstructure:"timeout"`
	Durable      bool   `mapstructure:"durable"`
	AutoDelete   bool   `mapstructure:"auto-delete"`
	NoWait       bool   `mapstructure:"no-wait"`
	Exclusive    bool   `mapstructure:"exclusive"`
}

type Redis struct {
	Url      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	Db       int    `mapstructure:"db"`
}

type SecuritySettings struct {
	JwtKey             string `mapstructure:"jwt-key"`
	JwtExpirationHours int    `mapstructure:"jwt-expiration-hours"`
	RefreshTokenDays   int    `mapstructure:"refresh-token-days"`
	AdminSecurityKey   string `mapstructure:"admin-security-key"`
}

type ServerSettings struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	ReadTimeout    int    `mapstructure:"read-timeout"`
	WriteTimeout   int    `mapstructure:"write-timeout"`
	IdleTimeout    int    `mapstructure:"idle-timeout"`
	MaxUploadBytes int64  `mapstructure:"max-upload-bytes"`
}

type CacheConfig struct {
	SessionExpirationMinutes    int    `mapstructure:"session-expiration-minutes"`
	AppVersionExpirationMinutes int    `mapstructure:"app-version-expiration-minutes"`
	SessionKeyPrefix            string `mapstructure:"session-key-prefix"`
	AppVersionKeyPrefix         string `mapstructure:"app-version-key-prefix"`
}

func Load() *Configuration {
	cfg := read()
	logrus.Info("Configuration loaded")

	// Override with environment variables
	mongoUri := os.Getenv("MONGODB_URL")
	if mongoUri != "" {
		cfg.Database.Url = mongoUri
	}

	dbName := os.Getenv("DB_NAME")
	if dbName != "" {
		cfg.Database.DbName = dbName
	}

	redisUrl := os.Getenv("REDIS_URL")
	if redisUrl != "" {
		cfg.Redis.Url = redisUrl
	}

	redisDB := os.Getenv("REDIS_DB")
	if redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			cfg.Redis.Db = db
		}
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl != "" {
		cfg.Queue.RabbitMQ.Url = rabbitmqUrl
	}

	useQueue := os.Getenv("USE_QUEUE_FOR_IMU")
	if useQueue != "" {
		if b, err := strconv.ParseBool(useQueue); err == nil {
			cfg.Queue.UseQueueForIMU = b
		}
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey != "" {
		cfg.Security.JwtKey = jwtKey
	}

	adminKey := os.Getenv("ADMIN_SECURITY_KEY")
	if adminKey != "" {
		cfg.Security.AdminSecurityKey = adminKey
	}

	return cfg
}

func read() *Configuration {
	viper.SetConfigFile("src/internal/config/cfg.yml")
	viper.AutomaticEnv()
	viper.SetConfigType("yml")

	var config Configuration

	err := viper.ReadInConfig()
	if err != nil {
		logrus.Panicf("Error reading config file, %s", err)
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Panicf("Error unmarshalling config file, %s", err)
	}

	return &config
}
