package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
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
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/consumers"
	"github.com/sbilibin2017/gw-exchange-saga/internal/facades"
	"github.com/sbilibin2017/gw-exchange-saga/internal/handlers"
	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/middlewares"
	"github.com/sbilibin2017/gw-exchange-saga/internal/publishers"
	"github.com/sbilibin2017/gw-exchange-saga/internal/repositories"
	"github.com/sbilibin2017/gw-exchange-saga/internal/services"
	"github.com/sbilibin2017/gw-exchange-saga/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-exchange-saga API
// @version 1.0.0
// @description Microservice orchestrating cross-currency exchange sagas across account services
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaGroupID,
		gwHost, gwPort, rateSpread, rateCacheTTLSecond,
		currentAccountURL, forexAccountURL, accountMaxRetries,
		sagaWorkers, sagaQueueSize, sagaLockTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaGroupID,
		gwHost, gwPort, rateSpread, rateCacheTTLSecond,
		currentAccountURL, forexAccountURL, accountMaxRetries,
		sagaWorkers, sagaQueueSize, sagaLockTTLSecond,
	); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
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
// application, database, Redis, Kafka, gRPC, account-client, and saga
// worker configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaGroupID string,
	gwHost, gwPort, rateSpread string, rateCacheTTLSecond int,
	currentAccountURL, forexAccountURL string, accountMaxRetries int,
	sagaWorkers, sagaQueueSize, sagaLockTTLSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "exchange")
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

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaGroupID = getEnv("KAFKA_GROUP_ID", "gw-exchange-saga")

	// gRPC exchange rates config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")
	rateSpread = getEnv("RATE_SPREAD", "0.005")
	if rateCacheTTLSecond, err = strconv.Atoi(getEnv("RATE_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Account service config
	currentAccountURL = getEnv("CURRENT_ACCOUNT_URL", "http://localhost:8081")
	forexAccountURL = getEnv("FOREX_ACCOUNT_URL", "http://localhost:8082")
	if accountMaxRetries, err = strconv.Atoi(getEnv("ACCOUNT_CLIENT_MAX_RETRIES", "2")); err != nil {
		return
	}

	// Saga worker config
	if sagaWorkers, err = strconv.Atoi(getEnv("SAGA_WORKERS", "8")); err != nil {
		return
	}
	if sagaQueueSize, err = strconv.Atoi(getEnv("SAGA_QUEUE_SIZE", "256")); err != nil {
		return
	}
	if sagaLockTTLSecond, err = strconv.Atoi(getEnv("SAGA_LOCK_TTL_SECOND", "30")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC and account
// clients, wires the saga orchestration stack, and serves HTTP. It starts
// the worker pool, the recovery sweeper, and the Kafka consumers, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaGroupID string,
	gwHost, gwPort, rateSpread string, rateCacheTTLSecond int,
	currentAccountURL, forexAccountURL string, accountMaxRetries int,
	sagaWorkers, sagaQueueSize, sagaLockTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	spread, err := decimal.NewFromString(rateSpread)
	if err != nil {
		return fmt.Errorf("invalid rate spread %q: %w", rateSpread, err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
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
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writers and readers
	brokers := strings.Split(kafkaBrokers, ",")

	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		}
	}
	mainWriter := newWriter(publishers.TopicSagaEvents)
	defer mainWriter.Close()
	dlqWriter := newWriter(publishers.TopicSagaDLQ)
	defer dlqWriter.Close()
	retryWriter := newWriter(publishers.TopicSagaRetry)
	defer retryWriter.Close()

	newReader := func(topic, group string) *kafka.Reader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: kafkaGroupID + "-" + group,
		})
	}
	eventsReader := newReader(publishers.TopicSagaEvents, "events")
	defer eventsReader.Close()
	dlqReader := newReader(publishers.TopicSagaDLQ, "dlq")
	defer dlqReader.Close()
	retryReader := newReader(publishers.TopicSagaRetry, "retry")
	defer retryReader.Close()

	// Connect to gRPC exchange rates service
	grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC service at ", grpcAddr, ": ", err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Initialize facades
	ratesFacade := facades.NewExchangeRatesGRPCFacade(exchangeClient, spread)
	currentFacade := facades.NewAccountHTTPFacade("current-account", currentAccountURL, accountMaxRetries)
	forexFacade := facades.NewAccountHTTPFacade("forex-account", forexAccountURL, accountMaxRetries)

	// Initialize repositories
	sagaWriterRepo := repositories.NewSagaWriterRepository(db, middlewares.GetTxFromContext)
	sagaReaderRepo := repositories.NewSagaReaderRepository(db)
	exchangeWriterRepo := repositories.NewExchangeWriterRepository(db, middlewares.GetTxFromContext)
	exchangeReaderRepo := repositories.NewExchangeReaderRepository(db)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb, time.Duration(rateCacheTTLSecond)*time.Second)

	// Initialize services
	publisher := publishers.NewExchangeEventPublisher(mainWriter, dlqWriter)
	locker := services.NewSagaLockService(rdb, time.Duration(sagaLockTTLSecond)*time.Second)
	orchestrator := services.NewSagaOrchestrator(
		sagaWriterRepo, sagaReaderRepo,
		currentFacade, forexFacade,
		publisher, exchangeWriterRepo, locker,
	)
	pool := workers.NewSagaWorkerPool(orchestrator, sagaWorkers, sagaQueueSize)
	exchangeService := services.NewExchangeService(
		exchangeReaderRepo, exchangeWriterRepo,
		orchestrator, pool,
		ratesFacade, rateCacheRepo,
	)
	managementService := services.NewSagaManagementService(sagaReaderRepo)
	sweeper := workers.NewRecoverySweeper(sagaReaderRepo, sagaWriterRepo, orchestrator, pool)

	// Initialize consumers
	dlqConsumer := consumers.NewDLQConsumer(dlqReader, retryWriter)
	retryConsumer := consumers.NewRetryConsumer(retryReader, mainWriter, dlqWriter)
	eventLogConsumer := consumers.NewEventLogConsumer(eventsReader)

	// Initialize handlers
	exchangeHandler := handlers.NewExchangeHandler(exchangeService)
	exchangeStatusHandler := handlers.NewExchangeStatusHandler(exchangeService)
	exchangeHistoryHandler := handlers.NewExchangeHistoryHandler(exchangeService)
	rateHandler := handlers.NewRateHandler(exchangeService)
	rateCompareHandler := handlers.NewRateCompareHandler(exchangeService)
	sagaListHandler := handlers.NewSagaListHandler(managementService)
	sagaListByStatusHandler := handlers.NewSagaListByStatusHandler(managementService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/exchange", exchangeHandler)
		})

		r.Get("/exchange/rates/{source}/{target}", rateHandler)
		r.Post("/exchange/rates/compare", rateCompareHandler)
		r.Get("/exchange/history/{accountID}", exchangeHistoryHandler)
		r.Get("/exchange/{clientRequestID}", exchangeStatusHandler)

		r.Get("/sagas", sagaListHandler)
		r.Get("/sagas/status/{status}", sagaListByStatusHandler)
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

	// Background workers and consumers stop when the shutdown context is
	// cancelled.
	go pool.Run(ctxShutdown)
	go sweeper.Run(ctxShutdown)
	go dlqConsumer.Run(ctxShutdown)
	go retryConsumer.Run(ctxShutdown)
	go eventLogConsumer.Run(ctxShutdown)

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
