package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"cptracker/internal/handlers"
	"cptracker/internal/jwt"
	"cptracker/internal/logger"
	"cptracker/internal/middlewares"
	"cptracker/internal/repositories"
	"cptracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title cp-tracker API
// @version 1.0.0
// @description Dashboard service for the competitive coding progress tracker
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp, adminPasswordHash,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp, adminPasswordHash,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Kafka, logging, and admin-auth configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int, adminPasswordHash string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "cp_tracker")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config. An empty address disables event publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "submission-events")

	// Admin auth config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	adminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	return
}

// run initializes the logger, database, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int, adminPasswordHash string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL. The pool is the single shared resource: opened
	// once, reused for every request, closed on process exit.
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Kafka writer for submission events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service for the admin routes
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	dashboardRepo := repositories.NewDashboardReadRepository(db)
	leaderboardRepo := repositories.NewLeaderboardReadRepository(db)
	problemRepo := repositories.NewProblemReadRepository(db)
	userRepo := repositories.NewUserReadRepository(db)
	tagRepo := repositories.NewTagReadRepository(db)
	platformRepo := repositories.NewPlatformReadRepository(db)
	submissionReadRepo := repositories.NewSubmissionReadRepository(db)
	submissionWriteRepo := repositories.NewSubmissionWriteRepository(db, middlewares.GetTxFromContext)
	adminWriteRepo := repositories.NewAdminWriteRepository(db, middlewares.GetTxFromContext)
	auditRepo := repositories.NewAuditReadRepository(db)

	// Initialize services
	dashboardService := services.NewDashboardService(dashboardRepo, submissionReadRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)
	problemService := services.NewProblemService(problemRepo)
	submissionService := services.NewSubmissionService(submissionReadRepo, submissionWriteRepo, userRepo, problemRepo, kafkaWriter)
	tagAnalysisService := services.NewTagAnalysisService(tagRepo)
	lookupService := services.NewLookupService(platformRepo, tagRepo)
	adminService := services.NewAdminService(adminWriteRepo, auditRepo)
	adminAuthService := services.NewAdminAuthService(jwtSvc, adminPasswordHash)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Route("/api/v1", func(v1 chi.Router) {
		// Views, each re-read from scratch per request
		v1.Get("/dashboard", handlers.NewDashboardHandler(dashboardService))
		v1.Get("/leaderboard", handlers.NewLeaderboardHandler(leaderboardService))
		v1.Get("/problems", handlers.NewProblemsHandler(problemService))
		v1.Get("/problems/{id}/tags", handlers.NewProblemTagsHandler(problemService))
		v1.Get("/submissions", handlers.NewSubmissionsHandler(submissionService))
		v1.Get("/submissions/options", handlers.NewSubmissionOptionsHandler(submissionService))
		v1.Get("/tags/summary", handlers.NewTagSummaryHandler(tagAnalysisService))

		// Sidebar lookups
		v1.Get("/platforms", handlers.NewPlatformsHandler(lookupService))
		v1.Get("/tags", handlers.NewTagsHandler(lookupService))

		// Write flow, wrapped in the request transaction
		v1.Group(func(w chi.Router) {
			w.Use(txMiddleware)
			w.Post("/submissions", handlers.NewCreateSubmissionHandler(submissionService))
		})

		// Admin routes
		v1.Post("/admin/login", handlers.NewAdminLoginHandler(adminAuthService))
		v1.Group(func(admin chi.Router) {
			admin.Use(authMiddleware)
			admin.Get("/admin/audit-log", handlers.NewAuditLogHandler(adminService))
			admin.Group(func(aw chi.Router) {
				aw.Use(txMiddleware)
				aw.Post("/admin/recompute-tag-stats", handlers.NewRecomputeHandler(adminService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
