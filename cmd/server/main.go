package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/gym-app/internal/api"
	"fittrack/gym-app/internal/config"
	"fittrack/gym-app/internal/mailer"
	"fittrack/gym-app/internal/notifier"
	mongorepo "fittrack/gym-app/internal/repository/mongo"
	"fittrack/gym-app/internal/service"
	"fittrack/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("starting FitTrack server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongorepo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongorepo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongorepo.EnsureSessionIndexes(ctx, appDB.Collection("sessions"))
		mongorepo.EnsureProgressIndexes(ctx, appDB.Collection("progress"))
		logrus.Info("index creation completed")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Initialize Repositories ---
	userRepo := mongorepo.NewMongoUserRepository(appDB)
	sessionRepo := mongorepo.NewMongoSessionRepository(appDB)
	progressRepo := mongorepo.NewMongoProgressRepository(appDB)

	// --- Initialize Services ---
	mail := mailer.NewSMTPMailer(cfg.Mail)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	adviceService := service.NewAdviceService()
	sessionService := service.NewSessionService(sessionRepo)
	progressService := service.NewProgressService(progressRepo)
	profileService := service.NewProfileService(userRepo, fileStorage)

	// --- Reminder Scheduler ---
	zone, err := time.LoadLocation(cfg.Notifier.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("invalid notifier timezone %q", cfg.Notifier.Timezone)
	}
	scheduler := notifier.NewScheduler(sessionRepo, userRepo, mail, notifier.NewDispatchTracker(), notifier.Options{
		Timezone:    zone,
		PollSpec:    cfg.Notifier.PollSpec,
		Lookahead:   cfg.Notifier.Lookahead,
		SendTimeout: cfg.Mail.SendTimeout,
	})
	if err := scheduler.Start(); err != nil {
		logrus.WithError(err).Fatal("failed to start reminder scheduler")
	}
	defer scheduler.Stop()

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.JWT.Secret, authService, adviceService, sessionService, progressService, profileService, mail)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.WithField("address", cfg.Server.Address).Info("server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("listen and serve error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exiting")
}
