package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/hosammostafait/AICareerAdvisor/config"
	"github.com/hosammostafait/AICareerAdvisor/database"
	"github.com/hosammostafait/AICareerAdvisor/logger"
	"github.com/hosammostafait/AICareerAdvisor/pkg/ai"
	genrepo "github.com/hosammostafait/AICareerAdvisor/pkg/generation/repository"
	genRepoImp "github.com/hosammostafait/AICareerAdvisor/pkg/generation/repositoryImp"
	"github.com/hosammostafait/AICareerAdvisor/pkg/metrics"
	planSvc "github.com/hosammostafait/AICareerAdvisor/pkg/plan/serviceImp"
)

// app is everything both commands share.
type app struct {
	cfg     config.AppConfig
	log     logger.Logger
	db      *gorm.DB
	metrics *metrics.Metrics
	genRepo genrepo.GenerationRepository
	plans   *planSvc.PlanSvc
}

func newApp(load loadConfig) (*app, error) {
	cfg, envErr := load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn("read .env", logger.Err(envErr))
	}
	log.Info("config loaded", logger.String("config", cfg.String()))

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var factory ai.Factory
	switch cfg.LLMProvider {
	case "mock":
		log.Warn("using mock model provider")
		factory = ai.NewMockFactory()
	case "gemini":
		factory = ai.NewGeminiFactory(cfg.GeminiBaseURL, nil)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want gemini or mock)", cfg.LLMProvider)
	}
	if !planSvc.CredentialConfigured(cfg.GeminiAPIKey) {
		log.Warn("API_KEY is not configured; plan generation will fail until it is set")
	}

	repo := genRepoImp.New(db)
	svc := planSvc.NewPlanService(planSvc.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GenerateTimeout,
	}, factory, repo, m, log)

	return &app{cfg: cfg, log: log, db: db, metrics: m, genRepo: repo, plans: svc}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.log.Sync()
}
