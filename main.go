package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nandafir/pkwt-BE/api"
	"github.com/nandafir/pkwt-BE/internal/captcha"
	"github.com/nandafir/pkwt-BE/internal/checker"
	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/mailer"
	"github.com/nandafir/pkwt-BE/internal/util"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file")
	}

	// "pkwt-BE check" runs exactly one check cycle and exits; used for ad hoc
	// and cron-style invocation outside the hourly scheduler.
	if len(os.Args) > 1 && os.Args[1] == "check" {
		runCheckOnce(config)
		return
	}

	runServer(config)
}

func runServer(config util.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, connPool := mustConnectStore(ctx, config)
	defer connPool.Close()

	redisDb := redis.NewClient(&redis.Options{
		Addr: config.RedisServerAddress,
	})
	captchaService := captcha.NewService(redisDb)

	mailService, err := mailer.NewExpirySender(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer service")
	}

	checkerDriver, err := checker.NewDriver(
		checker.NewChecker(store, mailService),
		config.CheckInterval,
		config.CycleTimeout,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create checker driver")
	}

	if err = checkerDriver.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start checker driver")
	}

	server, err := api.NewServer(store, config, captchaService, checkerDriver)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server")
	}

	if err = server.Start(ctx, config.HTTPServerAddress); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
	}

	// Stop scheduling new cycles; an in-flight cycle finishes bounded by the
	// cycle timeout.
	if err = checkerDriver.Shutdown(); err != nil {
		log.Error().Err(err).Msg("failed to shut down checker driver")
	}

	log.Info().Msg("shutdown complete")
}

func runCheckOnce(config util.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, connPool := mustConnectStore(ctx, config)
	defer connPool.Close()

	mailService, err := mailer.NewExpirySender(config)
	if err != nil {
		log.Error().Err(err).Msg("failed to create mailer service")
		os.Exit(1)
	}

	cycleCtx, cancel := context.WithTimeout(ctx, config.CycleTimeout)
	defer cancel()

	report, err := checker.NewChecker(store, mailService).RunCycle(cycleCtx)
	if err != nil {
		log.Error().Err(err).Msg("check cycle failed")
		os.Exit(1)
	}

	log.Info().
		Int("contracts_checked", report.ContractsChecked).
		Int("notifications_created", report.NotificationsCreated).
		Int("emails_sent", report.EmailsSent).
		Msg("one-shot check complete")
}

func mustConnectStore(ctx context.Context, config util.Config) (db.Store, *pgxpool.Pool) {
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string")
	}

	if err = connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	log.Info().Msg("connected to db")

	return db.NewStore(connPool), connPool
}
