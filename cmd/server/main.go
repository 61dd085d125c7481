package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/api"
	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/config"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

type application struct {
	logger internal.Logger
	vitals storage.VitalLogRepository
	meds   storage.MedicationRepository
}

func (a *application) Logger() internal.Logger                      { return a.logger }
func (a *application) VitalRepo() storage.VitalLogRepository        { return a.vitals }
func (a *application) MedicationRepo() storage.MedicationRepository { return a.meds }

func main() {
	cfg := config.Load()

	zl, err := buildZap(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := internal.NewZapLogger(zl.Sugar())

	vitalRepo, medRepo, closeStore, err := storage.FromConfig(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage (%s): %v", cfg.StorageBackend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Errorf("failed to close storage: %v", err)
		}
	}()

	provider, err := auth.FromConfig(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init auth provider: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &application{logger: logger, vitals: vitalRepo, meds: medRepo}
	r := api.NewRouter(app, provider)

	logger.Infof("meditrack listening on %s (storage=%s, auth=%s)", cfg.Addr, cfg.StorageBackend, cfg.AuthProvider)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

func buildZap(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "development" {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zc.Level = lvl
	}
	return zc.Build()
}
