package app

import (
	"fmt"
	"log"
	"strings"

	"hirex/internal/config"
	"hirex/internal/delivery/http/handler"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/delivery/http/routes"
	"hirex/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app and the route table. The
// returned cleanup releases the database pool.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := buildRegistry(c)
	registry.Register(f)

	go c.Hub.Run()

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func buildRegistry(c *Container) *routes.Registry {
	r := &routes.Registry{
		Health: handler.NewHealthHandler(c.DB),
		Match:  handler.NewMatchHandler(c.MatchUC),
		WS:     ws.NewHandler(c.Hub, c.Logger),
		AuthMW: middleware.NewAuthMiddleware(c.Tokens),
	}

	if c.DB != nil {
		r.Jobs = handler.NewJobsHandler(c.Jobs)
		r.Candidate = handler.NewCandidateHandler(c.Candidates, c.Logger)
		r.Recommendation = handler.NewRecommendationHandler(c.RecommendationUC, c.Config.Matching.DefaultTopN)
		r.Auth = handler.NewAuthHandler(c.AuthUC)
		r.ScrapeCompleted = handler.NewScrapeCompletedHandler(c.Config.App, c.RecommendationUC, c.Logger)
	}

	return r
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
