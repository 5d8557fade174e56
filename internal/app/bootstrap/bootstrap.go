package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	awardcatalog "laureate/contexts/award-program/award-catalog"
	awardpostgres "laureate/contexts/award-program/award-catalog/adapters/postgres"
	evaluationledger "laureate/contexts/award-program/evaluation-ledger"
	evaluationpostgres "laureate/contexts/award-program/evaluation-ledger/adapters/postgres"
	projectlifecycle "laureate/contexts/award-program/project-lifecycle"
	projectpostgres "laureate/contexts/award-program/project-lifecycle/adapters/postgres"
	rankingengine "laureate/contexts/award-program/ranking-engine"
	rankingpostgres "laureate/contexts/award-program/ranking-engine/adapters/postgres"
	accountservice "laureate/contexts/identity-access/account-service"
	bcryptadapter "laureate/contexts/identity-access/account-service/adapters/bcrypt"
	accountpostgres "laureate/contexts/identity-access/account-service/adapters/postgres"
	policyservice "laureate/contexts/identity-access/policy-service"
	"laureate/internal/platform/config"
	"laureate/internal/platform/db"
	"laureate/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	// The policy module is stateless; every other module consumes its guard
	// through a context-local PolicyGuard port.
	policyModule := policyservice.NewModule(policyservice.Dependencies{Logger: logger})
	guard := policyModule.Guard

	awardRepo := awardpostgres.NewRepository(pg.DB, logger)
	awardModule := awardcatalog.NewModule(awardcatalog.Dependencies{
		Awards: awardRepo,
		Policy: guard,
		Clock:  awardpostgres.SystemClock{},
		IDGen:  awardpostgres.UUIDGenerator{},
		Logger: logger,
	})

	projectRepo := projectpostgres.NewRepository(pg.DB, logger)
	projectModule := projectlifecycle.NewModule(projectlifecycle.Dependencies{
		Projects: projectRepo,
		Awards:   projectRepo,
		Accounts: projectRepo,
		Policy:   guard,
		Clock:    projectpostgres.SystemClock{},
		IDGen:    projectpostgres.UUIDGenerator{},
		Logger:   logger,
	})

	evaluationRepo := evaluationpostgres.NewRepository(pg.DB, logger)
	evaluationModule := evaluationledger.NewModule(evaluationledger.Dependencies{
		Evaluations: evaluationRepo,
		Projects:    evaluationRepo,
		Policy:      guard,
		Clock:       evaluationpostgres.SystemClock{},
		IDGen:       evaluationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	rankingRepo := rankingpostgres.NewRepository(pg.DB, logger)
	rankingModule := rankingengine.NewModule(rankingengine.Dependencies{
		Source:    rankingRepo,
		Policy:    guard,
		Threshold: cfg.WinnerScoreThreshold,
		Logger:    logger,
	})

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accountModule := accountservice.NewModule(accountservice.Dependencies{
		Accounts: accountRepo,
		Hasher:   bcryptadapter.Hasher{Cost: cfg.BcryptCost},
		Policy:   guard,
		Clock:    accountpostgres.SystemClock{},
		IDGen:    accountpostgres.UUIDGenerator{},
		Logger:   logger,
	})

	server := httpserver.New(
		awardModule,
		projectModule,
		evaluationModule,
		rankingModule,
		accountModule,
		policyModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
