package app

import (
	"fmt"
	"net/http"

	server "github.com/VivXwan/astrology-app/internal/adapters/primary/http"
	authController "github.com/VivXwan/astrology-app/internal/adapters/primary/http/controllers/auth"
	chartController "github.com/VivXwan/astrology-app/internal/adapters/primary/http/controllers/chart"
	healthcheckController "github.com/VivXwan/astrology-app/internal/adapters/primary/http/controllers/healthcheck"
	"github.com/VivXwan/astrology-app/internal/adapters/primary/http/middlewares"
	"github.com/VivXwan/astrology-app/internal/adapters/secondary/ephemeris/swiss"
	kafkaAdapter "github.com/VivXwan/astrology-app/internal/adapters/secondary/kafka"
	"github.com/VivXwan/astrology-app/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/VivXwan/astrology-app/internal/adapters/secondary/storage/redis"
	"github.com/VivXwan/astrology-app/internal/adapters/secondary/timezone/tzlookup"
	"github.com/VivXwan/astrology-app/internal/ports/cache"
	"github.com/VivXwan/astrology-app/internal/ports/events"
	"github.com/VivXwan/astrology-app/internal/ports/repository"
	"github.com/VivXwan/astrology-app/internal/ports/timezone"
	chartRepo "github.com/VivXwan/astrology-app/internal/repository/chart"
	tokenRepo "github.com/VivXwan/astrology-app/internal/repository/token"
	userRepo "github.com/VivXwan/astrology-app/internal/repository/user"
	"github.com/VivXwan/astrology-app/internal/services/dasha"
	"github.com/VivXwan/astrology-app/internal/services/planetary"
	authUsecase "github.com/VivXwan/astrology-app/internal/usecases/auth"
	chartUsecase "github.com/VivXwan/astrology-app/internal/usecases/chart"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB         *sqlx.DB
	HTTPServer *http.Server
	Ephemeris  *swiss.Engine
	Cache      cache.Cache
	Producer   events.Producer
}

// repositories содержит инициализированные репозитории
type repositories struct {
	User  repository.IUserRepo
	Token repository.ITokenRepo
	Chart repository.IChartRepo
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies() (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	repos := &repositories{
		User:  userRepo.New(persistenceLayer, a.Log),
		Token: tokenRepo.New(persistenceLayer, a.Log),
		Chart: chartRepo.New(persistenceLayer, a.Log),
	}

	resultCache := a.initCache()
	producer := a.initKafka()
	eph := a.initEphemeris()
	tzFinder := a.initTimezoneFinder()

	planetarySvc := planetary.New(eph, a.Log)
	dashaSvc, err := dasha.New(a.Log, a.Cfg.DashaCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to init dasha service: %w", err)
	}

	authSvc := authUsecase.New(repos.User, repos.Token, a.Cfg.Auth, a.Log)
	chartSvc := chartUsecase.New(eph, planetarySvc, dashaSvc, tzFinder, repos.Chart, resultCache, producer, a.Log)

	authMW := middlewares.Auth(authSvc, a.Log)
	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(db, a.Log),
		authController.New(authSvc, a.Log),
		chartController.New(chartSvc, authMW, a.Log),
	)

	return &Dependencies{
		DB:         db,
		HTTPServer: httpServer,
		Ephemeris:  eph,
		Cache:      resultCache,
		Producer:   producer,
	}, nil
}

// initCache подключает Redis; кэш опционален, без него сервис продолжает работать
func (a *App) initCache() cache.Cache {
	if a.Cfg.Redis == nil {
		return nil
	}

	redisClient, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		return nil
	}

	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(redisClient)
}

// initKafka создаёт producer событий; Kafka опциональна
func (a *App) initKafka() events.Producer {
	if a.Cfg.Kafka == nil {
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to init kafka producer, continuing without events", "error", err)
		return nil
	}
	return producer
}

func (a *App) initEphemeris() *swiss.Engine {
	cfg := a.Cfg.Ephemeris
	if cfg == nil {
		cfg = &swiss.Config{}
	}
	return swiss.NewEngine(cfg, a.Log)
}

// initTimezoneFinder создаёт определитель пояса по координатам; при сбое
// инициализации смещение для запросов без tz_offset будет UTC
func (a *App) initTimezoneFinder() timezone.Finder {
	finder, err := tzlookup.NewFinder(a.Log)
	if err != nil {
		a.Log.Warn("failed to init timezone finder, tz_offset fallback is UTC", "error", err)
		return nil
	}
	return finder
}
