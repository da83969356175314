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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/therapease/therapy-booking/internal/events"
	"github.com/therapease/therapy-booking/internal/facades"
	"github.com/therapease/therapy-booking/internal/handlers"
	"github.com/therapease/therapy-booking/internal/jwt"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/middlewares"
	"github.com/therapease/therapy-booking/internal/repositories"
	"github.com/therapease/therapy-booking/internal/services"
	"github.com/therapease/therapy-booking/internal/sign"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title therapy-booking API
// @version 1.0.0
// @description Service for booking therapy consultations: therapist slots, wallet balances, checkout and payment webhooks
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		merchantAccount, merchantSecret,
		logLevel, jwtSecret, jwtExp, pricesCacheTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		merchantAccount, merchantSecret,
		logLevel,
		jwtSecret, jwtExp, pricesCacheTTL,
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
// all application, database, Redis, Kafka, payment, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	merchantAccount, merchantSecret string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int, pricesCacheTTLSecond int,
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty broker list disables event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "therapy-booking-events")

	// Payment provider config
	merchantAccount = getEnv("MERCHANT_ACCOUNT", "therapease")
	merchantSecret = getEnv("MERCHANT_SECRET", "merchant_secret_key")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Cache config
	if pricesCacheTTLSecond, err = strconv.Atoi(getEnv("PRICES_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	merchantAccount, merchantSecret string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int, pricesCacheTTLSecond int,
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
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

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
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events
	var publisher *events.Publisher
	if kafkaBrokers != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		publisher = events.NewPublisher(kafkaWriter)
		logger.Log.Infof("Kafka publisher enabled, topic %s", kafkaTopic)
	} else {
		publisher = events.NewPublisher(nil)
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service and webhook signer
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)
	signer := sign.New(merchantSecret)

	// Initialize repositories
	txRunner := repositories.NewTxRunner(db)
	txGetter := repositories.TxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	slotReadRepo := repositories.NewSlotReadRepository(db, txGetter)
	slotWriteRepo := repositories.NewSlotWriteRepository(db, txGetter)
	walletReadRepo := repositories.NewWalletReadRepository(db, txGetter)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, txGetter)
	walletOpWriteRepo := repositories.NewWalletOperationWriteRepository(db, txGetter)
	walletOpReadRepo := repositories.NewWalletOperationReadRepository(db, txGetter)
	consultationReadRepo := repositories.NewConsultationReadRepository(db, txGetter)
	consultationWriteRepo := repositories.NewConsultationWriteRepository(db, txGetter)
	orderReadRepo := repositories.NewOrderReadRepository(db, txGetter)
	orderWriteRepo := repositories.NewOrderWriteRepository(db, txGetter)
	priceReadRepo := repositories.NewPriceReadRepository(db)
	promoReadRepo := repositories.NewPromoCodeReadRepository(db)
	promoWriteRepo := repositories.NewPromoCodeWriteRepository(db, txGetter)
	paymentEventWriteRepo := repositories.NewPaymentEventWriteRepository(db)
	therapistClientWriteRepo := repositories.NewTherapistClientWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	walletService := services.NewWalletService(walletOpWriteRepo, walletOpReadRepo, walletWriteRepo, walletReadRepo)
	matcher := services.NewSlotMatcher(slotReadRepo)
	scheduleService := services.NewScheduleService(slotReadRepo, slotWriteRepo)
	bookingService := services.NewBookingService(
		txRunner, slotReadRepo, slotWriteRepo, matcher,
		consultationWriteRepo, walletService, walletReadRepo,
		therapistClientWriteRepo, publisher,
	)
	cancellationService := services.NewCancellationService(
		txRunner, consultationReadRepo, consultationWriteRepo, slotWriteRepo,
		priceReadRepo, walletReadRepo, walletService, publisher,
	)
	checkoutService := services.NewCheckoutService(
		priceReadRepo, slotReadRepo, promoReadRepo, orderWriteRepo,
		signer, merchantAccount,
	)
	orderService := services.NewOrderService(
		txRunner, paymentEventWriteRepo, orderReadRepo, orderWriteRepo,
		authService, walletService, walletOpReadRepo, bookingService,
		priceReadRepo, promoWriteRepo, signer, publisher,
	)

	// Read-through cache for the public prices listing
	pricesFacade := facades.NewPricesCacheFacade(rdb, priceReadRepo,
		time.Duration(pricesCacheTTLSecond)*time.Second)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	balanceHandler := handlers.NewBalanceHandler(walletService, jwtService)
	pricesHandler := handlers.NewTherapistPricesHandler(pricesFacade)
	listSlotsHandler := handlers.NewTherapistSlotsHandler(scheduleService)
	createSlotsHandler := handlers.NewCreateSlotsHandler(scheduleService, jwtService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewPaymentWebhookHandler(orderService)
	orderStatusHandler := handlers.NewOrderStatusHandler(orderReadRepo)
	operationsHandler := handlers.NewWalletOperationsHandler(walletService, jwtService)
	bookHandler := handlers.NewBookHandler(bookingService, priceReadRepo, walletReadRepo, jwtService)
	userCancelHandler := handlers.NewCancelConsultationHandler(cancellationService, jwtService, services.InitiatedByUser)
	therapistCancelHandler := handlers.NewCancelConsultationHandler(cancellationService, jwtService, services.InitiatedByTherapist)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/therapists/{id}/prices", pricesHandler)
	r.Get("/therapists/{id}/slots", listSlotsHandler)
	r.Post("/checkout", checkoutHandler)
	r.Get("/checkout/{slug}", orderStatusHandler)
	r.Post("/webhook/payment", webhookHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService))
		r.Get("/balance", balanceHandler)
		r.Get("/wallet/operations", operationsHandler)
		r.Post("/therapist/slots", createSlotsHandler)
		r.Post("/consultations/book", bookHandler)
		r.Post("/consultations/{id}/cancel", userCancelHandler)
		r.Post("/therapist/consultations/{id}/cancel", therapistCancelHandler)
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
