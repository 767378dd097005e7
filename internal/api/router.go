package api

import (
	"net/http"
	"time"

	"lycosidae/internal/api/handler"
	"lycosidae/internal/app/service"
	"lycosidae/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	userService *service.UserService,
	competitionService *service.CompetitionService,
	exerciseService *service.ExerciseService,
	tagService *service.TagService,
	teamService *service.TeamService,
	containerService *service.ContainerService,
	linkService *service.LinkService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present and puts claims in context.
	// No route requires one yet; clients only hold tokens for future
	// authenticated flows.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(userService)
		v1.Route("/auth", authHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(userService)
		v1.Route("/users", userHandler.RegisterRoutes)

		competitionHandler := handler.NewCompetitionHandler(competitionService)
		v1.Route("/competitions", competitionHandler.RegisterRoutes)

		exerciseHandler := handler.NewExerciseHandler(exerciseService)
		v1.Route("/exercises", exerciseHandler.RegisterRoutes)

		tagHandler := handler.NewTagHandler(tagService)
		v1.Route("/tags", tagHandler.RegisterRoutes)

		teamHandler := handler.NewTeamHandler(teamService)
		v1.Route("/teams", teamHandler.RegisterRoutes)

		containerHandler := handler.NewContainerHandler(containerService)
		v1.Route("/containers", containerHandler.RegisterRoutes)

		// Relationship routes: user-competitions, user-teams,
		// team-competitions, exercise-tags, exercise-competitions,
		// container-competitions.
		linkHandler := handler.NewLinkHandler(linkService)
		linkHandler.RegisterRoutes(v1)
	})

	return r
}
