package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/shelf-analytics/cmd/api/config"
	"github.com/MichalMitros/shelf-analytics/internal/auth"
	"github.com/MichalMitros/shelf-analytics/internal/currency"
	"github.com/MichalMitros/shelf-analytics/internal/groups"
	"github.com/MichalMitros/shelf-analytics/internal/handler"
	"github.com/MichalMitros/shelf-analytics/internal/listing"
	"github.com/MichalMitros/shelf-analytics/internal/matching"
	"github.com/MichalMitros/shelf-analytics/internal/platform/cache"
	"github.com/MichalMitros/shelf-analytics/internal/platform/rabbitmq"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/migrations"
	"github.com/MichalMitros/shelf-analytics/internal/screenshot"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// .env is optional
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	if cfg.MigrateOnStart {
		if err := migrations.Up(cfg.DatabaseURL, &logger); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't migrate database")
		}
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}
	db := storage.NewPostgres(pgDB)

	var c cache.Cache = cache.NewMemory()
	var redisCache *cache.Redis
	if cfg.Redis.URL != "" {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open Redis connection")
		}
		c = redisCache
	}

	matchingOpts := []matching.Option{matching.WithMinCandidates(cfg.Matching.MinCandidates)}

	var amqpConnection *amqp.Connection
	var conn *rabbitmq.RabbitMQ
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		conn, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		if err := conn.DeclareQueue(cfg.RabbitMQ.ResultsQueue, cfg.RabbitMQ.ResultsQueue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't declare results queue")
		}

		sender := commander.NewRabbitMQSender(conn, cfg.RabbitMQ.CommandRoutingKey)
		matchingOpts = append(matchingOpts, matching.WithCommander(commander.NewURLMatchingCommander(sender)))

		// start consuming and handling url matching results
		rmq := handler.NewRMQHandler(conn, db, &logger)
		if err := rmq.Start(ctx, cfg.RabbitMQ.ResultsQueue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't start consuming")
		}
	}

	verifier, err := auth.NewOIDCVerifier(ctx, cfg.Auth.Issuer, cfg.Auth.Audience)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create token verifier")
	}

	var screenshots listing.Screenshots = listing.NoScreenshots{}
	if cfg.Screenshot.BaseURL != "" {
		screenshots = screenshot.NewProber(
			&http.Client{Timeout: cfg.Screenshot.Timeout},
			cfg.Screenshot.BaseURL,
			cfg.Screenshot.Concurrency,
			&logger,
		)
	}

	gin.SetMode(gin.ReleaseMode)
	httpHandler := handler.NewHTTPHandler(handler.Services{
		Matching: matching.NewService(db, &logger, matchingOpts...),
		Groups:   groups.NewService(db),
		Listing:  listing.NewService(db, screenshots, currency.NewConverter(db, c, &logger)),
		APIKeys:  auth.NewAPIKeys(db, c, cfg.Auth.APIKeySecretSalt, &logger),
		Bearer:   auth.NewBearer(verifier),
		Health:   db,
	}, &logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httpHandler.Router(),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("http server failed")
			cancel()
		}
	}()

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Msg("shelf analytics api up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shutdown http server")
	}

	cancel()

	if conn != nil {
		// wait for consumer to finish
		<-conn.Done()

		if err := conn.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ channel")
		}
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Redis connection")
		}
	}

	if err := pgDB.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close Postgres connection")
	}

	logger.Info().Msg("graceful shutdown successful")
}
