package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/TsubasaK111/ConferenceCentral/internal/api/http/context"
	"github.com/TsubasaK111/ConferenceCentral/internal/api/http/router"
	httpserver "github.com/TsubasaK111/ConferenceCentral/internal/api/http/server"
	"github.com/TsubasaK111/ConferenceCentral/internal/cache/memory"
	"github.com/TsubasaK111/ConferenceCentral/internal/config"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
	"github.com/TsubasaK111/ConferenceCentral/internal/notification"
	"github.com/TsubasaK111/ConferenceCentral/internal/repository/postgres"
	"github.com/TsubasaK111/ConferenceCentral/internal/server"
	"github.com/TsubasaK111/ConferenceCentral/internal/service"
	"github.com/TsubasaK111/ConferenceCentral/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	profileRepo := postgres.NewProfileRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	identityResolver := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	announcementCache := memory.New()
	dispatcher := notification.NewDispatcher(
		notification.NewLogSender(logger),
		cfg.Notification.QueueSize,
		logger,
	)

	profileService := service.NewProfile(profileRepo, logger)
	announcementService := service.NewAnnouncement(conferenceRepo, announcementCache, logger)
	conferenceService := service.NewConference(conferenceRepo, profileRepo, profileService, dispatcher, logger)
	registrationService := service.NewRegistration(registrationRepo, profileService, announcementService, logger)

	handler := router.New(router.Config{
		ProfileService:      profileService,
		ConferenceService:   conferenceService,
		RegistrationService: registrationService,
		AnnouncementService: announcementService,
		Pinger:              db,
		IdentityResolver:    identityResolver,
		ContextManager:      ctxMgr,
		Logger:              logger,
	})

	httpServer := httpserver.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port), httpserver.Options{
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runAnnouncementRefresh(ctx, announcementService, cfg.Announcement.RefreshInterval, logger)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	dispatcher.Close()

	wg.Wait()
	logger.Info("shutdown complete")
}

// runAnnouncementRefresh recomputes the announcement on a fixed interval so
// the cache tracks registrations made outside this process.
func runAnnouncementRefresh(ctx context.Context, announcements *service.Announcement, interval time.Duration, logger *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := announcements.Refresh(ctx); err != nil {
		logger.Error("failed to refresh announcement", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := announcements.Refresh(ctx); err != nil {
				logger.Error("failed to refresh announcement", "error", err)
			}
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
