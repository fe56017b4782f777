// Treeflow serves the municipal street-tree inventory API.
//
// @title        Treeflow API
// @version      1.0
// @description  Municipal street-tree census, plantings, maintenance and work orders.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"p9e.in/treeflow/config"
	"p9e.in/treeflow/handlers"
	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/metrics"
	"p9e.in/treeflow/middleware"
	"p9e.in/treeflow/routes"
	"p9e.in/treeflow/storage"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version info and exit")
	approveUser := flag.String("approve-user", "", "Approve the account with this email and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDatabase(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("could not connect to database")
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			logging.Warn().Err(err).Msg("close database")
		}
	}()

	if *approveUser != "" {
		if err := config.ApproveUser(db, *approveUser); err != nil {
			logging.Error().Err(err).Str("email", *approveUser).Msg("could not approve user")
			os.Exit(1)
		}
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB, cfg.DBDatabase); err != nil {
			logging.Warn().Err(err).Msg("database metrics disabled")
		}
	}

	store, uploadDir, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("could not initialise photo storage")
	}
	defer closeStore()

	ttl, err := cfg.TokenTTL()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid JWT_EXPIRES_IN")
	}
	auth := middleware.NewAuth(cfg.JWTSecret, ttl)

	handler := routes.RegisterRoutes(handlers.New(db, store, auth), auth, routes.Options{
		RequireAuth:    cfg.RequireAuth,
		LoginRateLimit: cfg.LoginRateLimit,
		UploadDir:      uploadDir,
	})
	handlerWithCORS := cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:         300,
	})(handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlerWithCORS,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Port).Str("version", Version).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore picks the photo backend. uploadDir is empty when photos are not
// kept on local disk.
func openStore(ctx context.Context, cfg *config.Config) (store storage.Store, uploadDir string, closeFn func(), err error) {
	if cfg.StorageBackend() == "gcs" {
		gcs, err := storage.NewGCS(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, "", nil, err
		}
		logging.Info().Str("bucket", cfg.GCSBucket).Msg("storing photos in GCS")
		return gcs, "", func() { gcs.Close() }, nil
	}

	local, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return nil, "", nil, err
	}
	logging.Info().Str("dir", cfg.UploadDir).Msg("storing photos on local disk")
	return local, cfg.UploadDir, func() {}, nil
}
