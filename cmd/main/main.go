package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"mostruario-service/internal/catalog/service"
	"mostruario-service/internal/config"
	"mostruario-service/internal/render"
	serverhttp "mostruario-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// the catalog is built once; the service cannot start without it
	cat, err := service.Load(cfg.CatalogFile, service.Options{ProductsSheet: cfg.ProductsSheet})
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalog load")
	}
	logger.Info().
		Int("products", len(cat.Products)).
		Int("finishes", len(cat.Finishes)).
		Msg("catalog loaded")

	pages, err := render.NewHTML()
	if err != nil {
		logger.Fatal().Err(err).Msg("templates")
	}

	r := serverhttp.NewRouter(cfg, logger, cat, pages)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
