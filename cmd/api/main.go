package main

import (
	"net/http"
	"os"
	"time"

	"petmate/internal/adapters/auth/token"
	pg "petmate/internal/adapters/storage/postgres"
	"petmate/internal/config"
	"petmate/internal/platform/logger"
	"petmate/internal/router"
)

// @title PetMate API
// @version 1.0
// @description API de cuidado de mascotas: perfiles, consumo, medicación, hospital y sustancias peligrosas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		DataDir: cfg.DataDir,
		Logger:  log,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		if err := pg.Migrate(db, cfg.MigrationsDir); err != nil {
			log.Error("db migrate", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.DB = db
	}

	if cfg.DevAuth() {
		log.Warn("auth secret vacío: modo dev con header X-Debug-User", nil)
	} else {
		src := token.New(cfg.AuthSecret)
		opts.AuthVerifier = src
		opts.TokenIssuer = src
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("router init", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
