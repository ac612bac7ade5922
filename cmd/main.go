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

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-glossary/docs"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/middlewares"
	"github.com/sbilibin2017/gw-glossary/internal/migrations"
	"github.com/sbilibin2017/gw-glossary/internal/repositories"
	"github.com/sbilibin2017/gw-glossary/internal/router"
	"github.com/sbilibin2017/gw-glossary/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds application, database, Redis, Kafka and logging settings.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFile     string
	SeedOnStart bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisEnabled      bool
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisTTLSecond    int

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-glossary API
// @version 1.0.0
// @description WebGL/WebGPU glossary service: create, read, update and delete terms
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, seedOnly := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, seedOnly); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether to only seed the database and exit.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	seed := flag.Bool("seed", false, "Seed the glossary and exit")
	flag.Parse()
	return *c, *seed
}

// parseConfig loads environment variables from a file and returns
// the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("APP_LOG_FILE", "")
	if cfg.SeedOnStart, err = getBool("APP_SEED_ON_START", "true"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	if cfg.RedisEnabled, err = getBool("REDIS_ENABLED", "false"); err != nil {
		return
	}
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisTTLSecond, err = getInt("REDIS_TTL_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	if cfg.KafkaEnabled, err = getBool("KAFKA_ENABLED", "false"); err != nil {
		return
	}
	cfg.KafkaBrokers = splitBrokers(getEnv("KAFKA_BROKERS", "localhost:9092"))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "glossary.terms")

	return
}

// splitBrokers parses a comma-separated broker list, skipping blanks.
func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// kafkaBatchTimeout bounds how long WriteMessages waits to fill a batch.
// Events are published before the response is sent.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter creates the term event writer, keyed by keyword.
func newKafkaWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, optional Redis cache and Kafka writer,
// seeds the glossary and serves HTTP until a shutdown signal arrives.
// With seedOnly set it returns right after seeding.
func run(ctx context.Context, cfg config, seedOnly bool) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel, "file", cfg.LogFile)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Migrate(ctx, db); err != nil {
		return err
	}

	// Initialize repositories
	termReadRepo := repositories.NewTermReadRepository(db, middlewares.GetTxFromContext)
	termWriteRepo := repositories.NewTermWriteRepository(db, middlewares.GetTxFromContext)

	// Seed the glossary
	if seedOnly || cfg.SeedOnStart {
		seeder := services.NewSeedService(termReadRepo, termWriteRepo)
		err := middlewares.RunInTx(ctx, db, func(ctx context.Context) error {
			result, err := seeder.Run(ctx)
			if err == nil {
				logger.Log.Infow("seeding finished", "existing", result.Existing, "inserted", result.Inserted)
			}
			return err
		})
		if err != nil {
			return fmt.Errorf("seed glossary: %w", err)
		}
	}
	if seedOnly {
		return nil
	}

	// Connect to Redis
	var termCache services.TermCache
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		termCache = repositories.NewTermCacheRepository(rdb, time.Duration(cfg.RedisTTLSecond)*time.Second)
	}

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaEnabled {
		kw := newKafkaWriter(cfg)
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("publishing term events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize services
	termService := services.NewTermService(termReadRepo, termWriteRepo, termCache, kafkaWriter, middlewares.OnCommit)

	// Setup router
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r := router.New(router.Config{
		Terms:           termService,
		Version:         buildVersion,
		SwaggerURL:      fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
		TermMiddlewares: []func(http.Handler) http.Handler{middlewares.TxMiddleware(db)},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
