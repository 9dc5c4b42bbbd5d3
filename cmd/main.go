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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-mailer/internal/email"
	"github.com/sbilibin2017/gw-mailer/internal/handlers"
	"github.com/sbilibin2017/gw-mailer/internal/jwt"
	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/repositories"
	"github.com/sbilibin2017/gw-mailer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-mailer/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-mailer API
// @version 1.0.0
// @description Service for sending branded emails through a shared SMTP account
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
		redisHost, redisPort, redisDB, redisPassword,
		templateCacheTTLSecond,
		smtpHost, smtpPort, smtpUser, smtpPassword,
		smtpSecure, smtpRequireTLS, smtpTLSMinVersion,
		fromAddress, fromName,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		templateCacheTTLSecond,
		smtpHost, smtpPort, smtpUser, smtpPassword,
		smtpSecure, smtpRequireTLS, smtpTLSMinVersion,
		fromAddress, fromName,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, SMTP, Kafka, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	templateCacheTTLSecond int,
	smtpHost, smtpPort, smtpUser, smtpPassword string,
	smtpSecure, smtpRequireTLS bool, smtpTLSMinVersion string,
	fromAddress, fromName string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if templateCacheTTLSecond, err = strconv.Atoi(getEnv("TEMPLATE_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "localhost")
	smtpPort = getEnv("SMTP_PORT", "587")
	smtpUser = getEnv("SMTP_USERNAME", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	if smtpSecure, err = strconv.ParseBool(getEnv("SMTP_SECURE", "false")); err != nil {
		return
	}
	if smtpRequireTLS, err = strconv.ParseBool(getEnv("SMTP_REQUIRE_TLS", "true")); err != nil {
		return
	}
	smtpTLSMinVersion = getEnv("SMTP_TLS_MIN_VERSION", "1.2")
	fromAddress = getEnv("EMAIL_FROM_ADDRESS", "noreply@incridea.in")
	fromName = getEnv("EMAIL_FROM_NAME", "")

	// Kafka config, optional
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "emails.sent")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, SMTP client, Kafka writer
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	templateCacheTTLSecond int,
	smtpHost, smtpPort, smtpUser, smtpPassword string,
	smtpSecure, smtpRequireTLS bool, smtpTLSMinVersion string,
	fromAddress, fromName string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

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

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize SMTP client
	tlsMinVersion, err := email.ParseTLSVersion(smtpTLSMinVersion)
	if err != nil {
		return err
	}
	mailer, err := email.NewClient(smtpHost, smtpPort, smtpUser, smtpPassword, smtpSecure, smtpRequireTLS, tlsMinVersion)
	if err != nil {
		return err
	}

	// Initialize Kafka writer, optional
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

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewAuthorizedUserReadRepository(db)
	userWriteRepo := repositories.NewAuthorizedUserWriteRepository(db)
	templateReadRepo := repositories.NewTemplateReadRepository(db)
	templateWriteRepo := repositories.NewTemplateWriteRepository(db)
	templateCacheRepo := repositories.NewTemplateCacheRepository(rdb, time.Duration(templateCacheTTLSecond)*time.Second)
	emailLogReadRepo := repositories.NewEmailLogReadRepository(db)
	emailLogWriteRepo := repositories.NewEmailLogWriteRepository(db)
	auditReadRepo := repositories.NewAuditLogReadRepository(db)
	auditWriteRepo := repositories.NewAuditLogWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo)
	userService := services.NewUserService(authService, userReadRepo, userWriteRepo, auditWriteRepo)
	templateService := services.NewTemplateService(authService, templateReadRepo, templateWriteRepo, templateCacheRepo)
	emailService := services.NewEmailService(authService, emailLogReadRepo, emailLogWriteRepo, mailer, kafkaWriter, fromAddress, fromName)
	auditService := services.NewAuditService(authService, auditReadRepo)

	// Initialize handlers
	sendHandler := handlers.NewSendHandler(emailService)
	emailLogsHandler := handlers.NewEmailLogsHandler(emailService)
	myLogsHandler := handlers.NewMyEmailLogsHandler(emailService)
	templatesListHandler := handlers.NewTemplatesListHandler(templateService)
	templateCreateHandler := handlers.NewTemplateCreateHandler(templateService)
	templateUpdateHandler := handlers.NewTemplateUpdateHandler(templateService)
	templateRemoveHandler := handlers.NewTemplateRemoveHandler(templateService)
	currentUserHandler := handlers.NewCurrentUserHandler(userService)
	changePasswordHandler := handlers.NewChangePasswordHandler(userService)
	usersListHandler := handlers.NewUsersListHandler(userService)
	usersCreateHandler := handlers.NewUsersCreateHandler(userService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(userService)
	userRemoveHandler := handlers.NewUserRemoveHandler(userService)
	auditListHandler := handlers.NewAuditListHandler(auditService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Post("/email/send", sendHandler)
			r.Get("/email/logs", emailLogsHandler)
			r.Get("/email/my-logs", myLogsHandler)

			r.Get("/templates", templatesListHandler)
			r.Post("/templates", templateCreateHandler)
			r.Put("/templates/{id}", templateUpdateHandler)
			r.Delete("/templates/{id}", templateRemoveHandler)

			r.Get("/users/current", currentUserHandler)
			r.Post("/users/change-password", changePasswordHandler)
			r.Get("/users", usersListHandler)
			r.Post("/users", usersCreateHandler)
			r.Post("/users/{id}/reset-password", resetPasswordHandler)
			r.Delete("/users/{id}", userRemoveHandler)

			r.Get("/audit", auditListHandler)
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
