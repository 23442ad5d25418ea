package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alanwells064/cornbot/internal/config"
	"github.com/alanwells064/cornbot/internal/database"
	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/service"
	"github.com/alanwells064/cornbot/internal/handlers"
	"github.com/alanwells064/cornbot/internal/logger"
	"github.com/alanwells064/cornbot/internal/metrics"
	cornslack "github.com/alanwells064/cornbot/internal/slack"
	"github.com/alanwells064/cornbot/migrator/sqlite"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment only")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("cornbot stopped with error")
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages := config.NewLiveMessages(config.DefaultMessages())
	if cfg.MessagesFile != "" {
		msgs, err := config.LoadMessages(cfg.MessagesFile)
		if err != nil {
			return err
		}
		messages.Set(msgs)
		config.ApplyLogLevel(msgs.LogLevel)

		watcher := config.NewMessagesWatcher(cfg.MessagesFile, messages, log)
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				log.Warn().Err(err).Msg("messages hot reload disabled")
			}
		}()
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info().Str("path", cfg.DatabasePath).Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewPrometheus(registry, "cornbot")

	dm := database.NewInstance(db)
	slackClient := cornslack.New(slack.New(cfg.SlackBotToken), dm, cornslack.Limits{
		SendPerSec:  cfg.DeliveryRatePerSec,
		ReadPerSec:  cfg.ReadRatePerSec,
		CallTimeout: domain.DeliveryTimeout,
	}, time.Now, log)

	services := service.NewInstance(service.Deps{
		DataManager:   dm,
		Messenger:     slackClient,
		Activities:    slackClient,
		Texts:         messages,
		Metrics:       collector,
		Logger:        log,
		HomeUTCOffset: cfg.HomeUTCOffset,
		BreakTick:     cfg.BreakTick,
	})
	if err := services.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer services.Stop()

	handler := handlers.New(services.Prompts, services.Accounts, services.Dispatch, services.Ledger, cfg.SlackSigningSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warn().Err(err).Msg("failed to notify systemd")
	} else if ok {
		log.Debug().Msg("notified systemd ready")
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
	}

	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown incomplete")
	}
	return nil
}
