// @title Mergington High School Activities API
// @version 1.0
// @description View and sign up for extracurricular activities at Mergington High School.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mergingtonactivities/config"
	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/adapters/email"
	delivery "mergingtonactivities/internal/delivery/http"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/metrics"
	"mergingtonactivities/internal/registry"
	"mergingtonactivities/internal/repository/postgres"
	"mergingtonactivities/internal/services"
	"mergingtonactivities/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	reg, err := registry.New(seed)
	if err != nil {
		return err
	}
	logger.Info("registry loaded", "activities", reg.Len())

	m := metrics.New()
	opts := []services.ActivityServiceOption{services.WithSignupMetrics(m)}

	if cfg.DBUrl != "" {
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		opts = append(opts, services.WithSignupLog(postgres.NewSignupLogRepository(db)))
		logger.Info("signup log enabled")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	opts = append(opts, services.WithEmailService(emailService))

	activityService := services.NewActivityService(reg, logger, opts...)
	activityController := controllers.NewActivityController(logger, activityService)

	router := delivery.NewRouter(activityController, web.Static(), m.Handler())
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: delivery.NewHandler(router, logger, m, cfg.AllowedOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadSeed(path string) ([]*domain.Activity, error) {
	if path == "" {
		return registry.DefaultSeed(), nil
	}
	return registry.LoadSeedFile(path)
}
