package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/mongodb-errors/internal/config"
	"github.com/deppfellow/mongodb-errors/internal/handler"
	"github.com/deppfellow/mongodb-errors/internal/logger"
	"github.com/deppfellow/mongodb-errors/internal/mongoerr"
	"github.com/deppfellow/mongodb-errors/internal/repository"
	"github.com/deppfellow/mongodb-errors/internal/router"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/deppfellow/mongodb-errors/internal/service"
	"github.com/rs/zerolog"
)

// DefaultContextTimeout bounds graceful shutdown.
const DefaultContextTimeout = 30

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Observability)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		// Startup failures are mostly driver errors ("connection refused",
		// "auth failed"); log the curated text next to the raw one.
		log.Fatal().
			Err(err).
			Str("reason", mongoerr.Resolve(err).Error()).
			Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
