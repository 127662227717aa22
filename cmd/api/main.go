package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festx/config"
	_ "festx/docs"
	"festx/internal/adapters/auth"
	"festx/internal/adapters/email"
	"festx/internal/adapters/i18n"
	deliveryhttp "festx/internal/delivery/http"
	"festx/internal/delivery/http/controllers"
	"festx/internal/delivery/http/middleware"
	"festx/internal/repository/postgres"
	"festx/internal/services"
)

// @title festx API
// @version 1.0
// @description Campus event scheduling, ticketing and notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.DBUrl, cfg.MigrationsPath, logger); err != nil {
		return err
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	userRepo := postgres.NewUserRepository(db)
	requestRepo := postgres.NewOrganizerRequestRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	translator, err := i18n.NewTranslator(cfg.DefaultLocale, logger)
	if err != nil {
		return err
	}
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Services
	timeout := cfg.ContextTimeout
	emailService := services.NewEmailService(mailer, renderer, logger)
	mail := services.NewMailDispatcher(cfg.Email.SendTimeout)
	notificationService := services.NewNotificationService(notificationRepo, registrationRepo, eventRepo, emailService, mail, translator, cfg.DefaultLocale, logger, timeout)
	eventService := services.NewEventService(eventRepo, userRepo, notificationService, logger, timeout)
	attendeeService := services.NewAttendeeService(eventRepo, registrationRepo, userRepo, logger, timeout)
	budgetService := services.NewBudgetService(eventRepo, registrationRepo, expenseRepo, timeout)
	approvalService := services.NewApprovalService(requestRepo, userRepo, logger, timeout)
	userService := services.NewUserService(userRepo, logger, timeout)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:        controllers.NewEventController(logger, eventService),
		Attendees:     controllers.NewAttendeeController(logger, attendeeService),
		Budget:        controllers.NewBudgetController(logger, budgetService),
		Notifications: controllers.NewNotificationController(logger, notificationService),
		Approvals:     controllers.NewApprovalController(logger, approvalService),
		Users:         controllers.NewUserController(logger, userService),
	}, verifier, logger)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := mail.Wait(shutdownCtx); err != nil {
		logger.Warn("pending emails not sent before shutdown", "err", err)
	}
	return nil
}
