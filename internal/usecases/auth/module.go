package auth

import (
	"log/slog"
	"time"

	"github.com/VivXwan/astrology-app/internal/ports/repository"
)

// Config настройки выпуска токенов
type Config struct {
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTTL  time.Duration `envconfig:"ACCESS_TTL" default:"30m"`
	RefreshTTL time.Duration `envconfig:"REFRESH_TTL" default:"720h"`
}

// Service регистрация и аутентификация пользователей
type Service struct {
	UserRepo  repository.IUserRepo
	TokenRepo repository.ITokenRepo
	Cfg       *Config
	Log       *slog.Logger
}

// New создаёт сервис аутентификации
func New(userRepo repository.IUserRepo, tokenRepo repository.ITokenRepo, cfg *Config, log *slog.Logger) *Service {
	return &Service{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Cfg:       cfg,
		Log:       log,
	}
}
