package main

import (
	"context"
	"net/http"
	"time"

	"prode-go/config"
	"prode-go/database"
	"prode-go/handlers"
	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/models"
	"prode-go/services"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Prefix:      cfg.Logging.Prefix,
		EnableColor: cfg.Logging.EnableColor,
	})
	cfg.LogConfiguration()

	// Database connection
	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.TestConnection(); err != nil {
		logging.Fatalf("Database ping failed: %v", err)
	}

	// Repositories
	userRepo := database.NewMongoUserRepository(db)
	groupRepo := database.NewMongoGroupRepository(db)
	matchRepo := database.NewMongoMatchRepository(db)
	paymentRepo := database.NewMongoPaymentRepository(db)

	indexCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout)
	defer cancel()
	ensureIndexes(indexCtx, userRepo, groupRepo, matchRepo)

	// Services
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	groupService := services.NewGroupService(groupRepo, userRepo)
	matchService := services.NewMatchService(matchRepo, groupRepo)
	predictionService := services.NewPredictionService(matchRepo, groupRepo, cfg.App.PredictionCutoff)
	scoringService := services.NewScoringService(matchRepo, models.DefaultScoringConfig())
	statisticsService := services.NewStatisticsService(matchRepo)
	rankingService := services.NewRankingService(matchRepo, groupRepo, userRepo)
	achievementService := services.NewAchievementService(matchRepo, userRepo, models.DefaultCatalog())
	paymentService := services.NewPaymentService(paymentRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	groupHandler := handlers.NewGroupHandler(groupService)
	matchHandler := handlers.NewMatchHandler(matchService, predictionService, scoringService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService, groupService)
	rankingHandler := handlers.NewRankingHandler(rankingService, groupService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := mux.NewRouter()
	r.Use(middleware.SecurityMiddleware)

	// Public routes
	r.HandleFunc("/api/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/logout", authHandler.Logout).Methods("POST")

	// Authenticated routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.RequireAuth)

	api.HandleFunc("/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/groups", groupHandler.CreateGroup).Methods("POST")
	api.HandleFunc("/groups", groupHandler.ListGroups).Methods("GET")
	api.HandleFunc("/groups/join", groupHandler.JoinGroup).Methods("POST")
	api.HandleFunc("/groups/{id}", groupHandler.GetGroup).Methods("GET")
	api.HandleFunc("/groups/{id}/matches", matchHandler.ListGroupMatches).Methods("GET")
	api.HandleFunc("/groups/{id}/stats", statisticsHandler.GetMyStatistics).Methods("GET")
	api.HandleFunc("/groups/{id}/ranking", rankingHandler.GetGroupRanking).Methods("GET")
	api.HandleFunc("/groups/{id}/jornadas/{jornadaID}/ranking", rankingHandler.GetJornadaRanking).Methods("GET")

	api.HandleFunc("/matches/{id}/prediction", matchHandler.SubmitPrediction).Methods("PUT")

	api.HandleFunc("/achievements", achievementHandler.GetAchievements).Methods("GET")

	api.HandleFunc("/payments", paymentHandler.RequestUpgrade).Methods("POST")

	// Admin routes
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole(models.RoleAdmin))

	admin.HandleFunc("/groups/{id}/jornadas", groupHandler.AddJornada).Methods("POST")
	admin.HandleFunc("/matches", matchHandler.CreateMatch).Methods("POST")
	admin.HandleFunc("/matches/{id}", matchHandler.DeleteMatch).Methods("DELETE")
	admin.HandleFunc("/matches/{id}/result", matchHandler.DeclareResult).Methods("POST")
	admin.HandleFunc("/matches/{id}/rescore", matchHandler.RescoreMatch).Methods("POST")

	// Superadmin routes
	super := r.PathPrefix("/api").Subrouter()
	super.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole(models.RoleSuperAdmin))

	super.HandleFunc("/payments", paymentHandler.ListPending).Methods("GET")
	super.HandleFunc("/payments/{id}/approve", paymentHandler.Approve).Methods("POST")
	super.HandleFunc("/payments/{id}/reject", paymentHandler.Reject).Methods("POST")

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Infof("Server starting on %s", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatalf("Server failed: %v", err)
	}
}

// ensureIndexes creates the indexes each repository relies on. Failures are
// logged but not fatal; the app can serve with missing indexes.
func ensureIndexes(ctx context.Context, userRepo *database.MongoUserRepository, groupRepo *database.MongoGroupRepository, matchRepo *database.MongoMatchRepository) {
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logging.Warnf("Failed to ensure user indexes: %v", err)
	}
	if err := groupRepo.EnsureIndexes(ctx); err != nil {
		logging.Warnf("Failed to ensure group indexes: %v", err)
	}
	if err := matchRepo.EnsureIndexes(ctx); err != nil {
		logging.Warnf("Failed to ensure match indexes: %v", err)
	}
}
