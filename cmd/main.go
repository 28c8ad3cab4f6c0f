package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/poetree/internal/config"
	"github.com/sbilibin2017/poetree/internal/events"
	"github.com/sbilibin2017/poetree/internal/hash"
	"github.com/sbilibin2017/poetree/internal/health"
	"github.com/sbilibin2017/poetree/internal/jwt"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/ratelimit"
	"github.com/sbilibin2017/poetree/internal/repositories"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/sbilibin2017/poetree/internal/transaction"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

const (
	healthInterval  = 15 * time.Second
	healthTimeout   = 3 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Poetree API
// @version 1.0.0
// @description Social publishing backend for poems: accounts, topics, poems, comments, likes, bookmarks and reads.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the stores, wires the application and serves HTTP and gRPC until a
// termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	publisher := events.NewPublisher(events.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Log.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	limiter, err := ratelimit.NewLimiter(rdb, "poetree:ratelimit:auth", cfg.RateLimit, cfg.RateLimitWindow)
	if err != nil {
		return err
	}

	checker := health.NewChecker(healthTimeout)
	checker.Register("postgres", db.PingContext)
	checker.Register("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
		jwt.WithExpiration(cfg.JWT.AccessExp),
		jwt.WithRefreshExpiration(cfg.JWT.RefreshExp),
	)
	hasher := hash.New(cfg.JWT.SecretKey)
	tx := transaction.NewManager(db)

	userRepo := repositories.NewUserRepository(db, transaction.FromContext)
	tokenRepo := repositories.NewTokenRepository(db, transaction.FromContext)
	topicRepo := repositories.NewTopicRepository(db, transaction.FromContext)
	topicCache := repositories.NewTopicCacheRepository(rdb, cfg.TopicCacheTTL)
	poemRepo := repositories.NewPoemRepository(db, transaction.FromContext)
	commentRepo := repositories.NewCommentRepository(db, transaction.FromContext)
	feedRepo := repositories.NewFeedRepository(db, transaction.FromContext)
	engagementRepo := repositories.NewEngagementRepository(db, transaction.FromContext)

	router := newRouter(routes{
		auth:           services.NewAuthService(userRepo, tokenRepo, tokens, hasher, tx),
		users:          services.NewUserService(userRepo, tx),
		topics:         services.NewTopicService(topicRepo, topicCache, tx),
		poems:          services.NewPoemService(poemRepo, topicRepo, feedRepo, tx),
		comments:       services.NewCommentService(commentRepo, poemRepo, feedRepo, publisher, tx),
		engagement:     services.NewEngagementService(engagementRepo, poemRepo, commentRepo, publisher, tx),
		tokener:        tokens,
		realm:          cfg.JWT.Realm,
		limiter:        limiter,
		trustedProxies: cfg.TrustedProxies,
		health:         checker.Handler(),
		swagger:        fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, checker.Server())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		checker.Run(gctx, healthInterval)
		return nil
	})

	g.Go(func() error {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		addr := net.JoinHostPort(cfg.AppHost, cfg.GRPCPort)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("gRPC listen failed: %w", err)
		}
		logger.Log.Infow("gRPC server listening", "addr", addr)
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcSrv.GracefulStop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		logger.Log.Info("servers stopped gracefully")
		return nil
	})

	return g.Wait()
}
