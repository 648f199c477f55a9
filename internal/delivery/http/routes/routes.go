package routes

import (
	"hirex/internal/delivery/http/handler"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires constructed handlers onto the fiber app. Handlers are built
// by the app container; this package only owns the URL layout.
type Registry struct {
	Health          *handler.HealthHandler
	Match           *handler.MatchHandler
	Jobs            *handler.JobsHandler
	Candidate       *handler.CandidateHandler
	Recommendation  *handler.RecommendationHandler
	Auth            *handler.AuthHandler
	ScrapeCompleted *handler.ScrapeCompletedHandler
	WS              *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/jobs", r.WS.HandleJobsWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Match != nil {
		r.Match.RegisterRoutes(v1)
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(v1)
	}
	if r.Candidate != nil {
		r.Candidate.RegisterRoutes(v1)
	}
	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}
	if r.ScrapeCompleted != nil {
		r.ScrapeCompleted.RegisterRoutes(v1)
	}

	if r.Recommendation != nil && r.AuthMW != nil {
		protected := v1.Group("", r.AuthMW.Middleware())
		r.Recommendation.RegisterRoutes(protected)
	}
}
