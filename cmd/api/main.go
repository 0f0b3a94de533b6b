package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/citymed/frontdesk-api/internal/config"
	"github.com/citymed/frontdesk-api/internal/handler"
	appointmentHandler "github.com/citymed/frontdesk-api/internal/handler/appointment"
	loginHandler "github.com/citymed/frontdesk-api/internal/handler/login"
	queueHandler "github.com/citymed/frontdesk-api/internal/handler/queue"
	"github.com/citymed/frontdesk-api/internal/repository/postgres"
	"github.com/citymed/frontdesk-api/internal/router"
	appointmentService "github.com/citymed/frontdesk-api/internal/service/appointment"
	lookupService "github.com/citymed/frontdesk-api/internal/service/lookup"
	queueService "github.com/citymed/frontdesk-api/internal/service/queue"
	"github.com/citymed/frontdesk-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Logging.Level)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to the hospital database")

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	appointmentRepo := postgres.NewAppointmentRepository(db)
	queueRepo := postgres.NewQueueRepository(db)

	appointmentSvc := appointmentService.NewService(appointmentRepo)
	queueSvc := queueService.NewService(queueRepo)
	lookupSvc := lookupService.NewService(appointmentRepo)

	h := handler.NewHandler(db)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	queueH := queueHandler.NewHandler(queueSvc)
	loginH := loginHandler.NewHandler(lookupSvc)

	r := router.NewRouter(cfg, appointmentH, queueH, loginH, h)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// The HTTPS listener is best effort: missing certificates leave the
	// server running HTTP-only, matching how the front desk is deployed.
	var tlsSrv *http.Server
	if cfg.Server.CertFile != "" && cfg.Server.KeyFile != "" {
		if fileExists(cfg.Server.CertFile) && fileExists(cfg.Server.KeyFile) {
			tlsSrv = &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPSPort),
				Handler: r.Engine(),
			}
			go func() {
				log.Info().Int("port", cfg.Server.HTTPSPort).Msg("https server listening")
				if err := tlsSrv.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("failed to start https server")
				}
			}()
		} else {
			log.Warn().Msg("https certificates missing, https not enabled")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	if tlsSrv != nil {
		if err := tlsSrv.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("https server forced to shutdown")
		}
	}

	log.Info().Msg("server exited properly")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
