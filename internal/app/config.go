package app

import (
	server "github.com/VivXwan/astrology-app/internal/adapters/primary/http"
	"github.com/VivXwan/astrology-app/internal/adapters/secondary/ephemeris/swiss"
	kafkaAdapter "github.com/VivXwan/astrology-app/internal/adapters/secondary/kafka"
	"github.com/VivXwan/astrology-app/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/VivXwan/astrology-app/internal/adapters/secondary/storage/redis"
	"github.com/VivXwan/astrology-app/internal/pkg/logger"
	authUsecase "github.com/VivXwan/astrology-app/internal/usecases/auth"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres  *pg.Config           `envconfig:"POSTGRES"`
	Log       *logger.Config       `envconfig:"LOG"`
	Server    *server.Config       `envconfig:"APISERVER"`
	Ephemeris *swiss.Config        `envconfig:"EPHEMERIS"`
	Auth      *authUsecase.Config  `envconfig:"AUTH"`
	Redis     *redisAdapter.Config `envconfig:"REDIS"`
	Kafka     *kafkaAdapter.Config `envconfig:"KAFKA"`

	// DashaCacheSize размер LRU-кэша таймлайнов даша (0 - дефолт сервиса)
	DashaCacheSize int `envconfig:"DASHA_CACHE_SIZE" default:"256"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
