package app

import (
	"context"
	"log"
	"time"

	"hirex/internal/config"
	"hirex/internal/database"
	"hirex/internal/database/migration"
	dbpostgres "hirex/internal/database/postgres"
	"hirex/internal/domain/matching"
	"hirex/internal/domain/user"
	"hirex/internal/infrastructure/cache"
	"hirex/internal/pkg/token"
	"hirex/internal/repository"
	"hirex/internal/usecase"
	"hirex/internal/usecase/auth"
	"hirex/internal/ws"
)

// Container holds every long-lived dependency of the API server. Postgres
// and Redis are optional at startup: without Postgres only the stateless
// match endpoint is served, without Redis caching is bypassed.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Tokens token.Service
	Engine *matching.Engine

	Users      user.Repository
	Candidates repository.CandidateRepository
	Jobs       repository.JobRepository

	MatchUC          usecase.MatchUsecase
	RecommendationUC usecase.RecommendationUsecase
	AuthUC           auth.Usecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Printf("Postgres unavailable, persistence endpoints disabled: %v", err)
	} else {
		c.DB = db
		if err := migration.Run(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.Tokens = token.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c.Engine = matching.NewEngine(cfg.Matching.Workers)
	c.MatchUC = usecase.NewMatchUsecase(c.Engine, cfg.Matching)

	if c.DB != nil {
		c.Users = repository.NewPostgresUserRepository(c.DB)
		c.Candidates = repository.NewPostgresCandidateRepository(c.DB)
		c.Jobs = repository.NewPostgresJobRepository(c.DB)

		c.RecommendationUC = usecase.NewRecommendationUsecase(c.Candidates, c.Jobs, c.Engine, c.Cache)
		c.AuthUC = auth.NewService(c.Users, c.Tokens)
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
