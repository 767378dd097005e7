package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lycosidae/internal/api"
	"lycosidae/internal/app/service"
	"lycosidae/internal/app/worker"
	"lycosidae/internal/common/security"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"
	"lycosidae/internal/platform/cache"
	"lycosidae/internal/platform/config"
	"lycosidae/internal/platform/database"
)

func main() {
	// 1. Load Configuration (fails fast without PASS_SECRET)
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT(config.AppConfig.JWTKey, config.AppConfig.JWTExp)
	fmt.Println("JWT initialized.")

	hasher, err := security.NewPasswordHasher(config.AppConfig.PassSecret)
	if err != nil {
		log.Fatalf("Could not initialize password hasher: %v", err)
	}

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	database.InitSchema(context.Background())

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	competitionRepo := repository.NewPgCompetitionRepository(database.DB)
	exerciseRepo := repository.NewPgExerciseRepository(database.DB)
	tagRepo := repository.NewPgTagRepository(database.DB)
	teamRepo := repository.NewPgTeamRepository(database.DB)
	containerRepo := repository.NewPgContainerRepository(database.DB)
	linkRepo := repository.NewPgLinkRepository(database.DB)

	// 6. Initialize Services
	leaderboard := cache.NewRedisLeaderboard(cache.RDB)
	userService := service.NewUserService(userRepo, hasher)
	competitionService := service.NewCompetitionService(competitionRepo, teamRepo, leaderboard)
	exerciseService := service.NewExerciseService(exerciseRepo)
	tagService := service.NewTagService(tagRepo)
	teamService := service.NewTeamService(teamRepo, leaderboard)
	containerService := service.NewContainerService(containerRepo)

	linkService := service.NewLinkService(
		linkRepo,
		map[model.EntityType]repository.ExistenceChecker{
			model.EntityUser:        userRepo,
			model.EntityCompetition: competitionRepo,
			model.EntityExercise:    exerciseRepo,
			model.EntityTag:         tagRepo,
			model.EntityTeam:        teamRepo,
			model.EntityContainer:   containerRepo,
		},
		database.NewTxRunner(database.DB),
	)

	// 7. Initialize Expiry Worker (as a goroutine)
	expiryWorker := worker.NewExpiryWorker(containerRepo, linkService, config.AppConfig.ContainerSweepInterval)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go expiryWorker.Start(workerCtx)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(
		userService,
		competitionService,
		exerciseService,
		tagService,
		teamService,
		containerService,
		linkService,
	)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
