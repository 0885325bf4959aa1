package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/services"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	client, err := services.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.DBName)

	tokens, err := services.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		logger.Fatal("failed to configure token issuer", zap.Error(err))
	}

	avatars, err := services.NewMinioAvatarStorage(cfg.Minio)
	if err != nil {
		logger.Fatal("failed to configure avatar storage", zap.Error(err))
	}
	if err := avatars.EnsureBucket(ctx); err != nil {
		logger.Warn("failed to ensure avatar bucket", zap.Error(err))
	}

	users := services.NewMongoUserStore(ctx, db)
	authService := services.NewAuthService(users, tokens, logger)
	profileService := services.NewProfileService(users, avatars, cfg.PortfolioUserID, logger)
	socialService := services.NewMongoSocialService(db)
	github := services.NewContributionsClient(cfg.GithubUsername, cfg.ContributionsAPI)
	statsService := services.NewStatsService(services.NewMongoStatsService(db), github, logger)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(profileService, cfg.MaxAvatarSizeMB)
	socialHandler := handlers.NewSocialHandler(socialService)
	statsHandler := handlers.NewStatsHandler(statsService)
	githubHandler := handlers.NewGithubHandler(github)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Welcome to Portfolio Backend API","status":"active"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// TODO: gate the mutating /user routes with middleware.RequireAuth
	// once the frontend starts sending its tokens.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", authHandler.SignIn)
			r.Post("/signup", authHandler.SignUp)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/", userHandler.GetUserInfo)
			r.Put("/skills/{id}", userHandler.UpdateSkills)
			r.Put("/experience/{id}", userHandler.UpdateExperience)
			r.Put("/projects/{id}", userHandler.UpdateProjects)
			r.Put("/education/{id}", userHandler.UpdateEducation)
			r.Put("/featuredProjects/{id}", userHandler.UpdateFeaturedProjects)
			r.Put("/profile/description/{id}", userHandler.UpdateDescription)
			r.Put("/profile/avatar/{id}", userHandler.UpdateAvatar)
			r.Put("/openToOpportunities/{id}", userHandler.UpdateOpenToOpportunities)
		})

		r.Get("/socials", socialHandler.List)
		r.Put("/socials", socialHandler.Update)

		r.Get("/stats", statsHandler.Get)
		r.Post("/stats", statsHandler.Upsert)

		r.Get("/github/contributions", githubHandler.Contributions)
	})

	logger.Info("server starting", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
