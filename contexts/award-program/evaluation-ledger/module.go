package evaluationledger

import (
	"log/slog"

	httpadapter "laureate/contexts/award-program/evaluation-ledger/adapters/http"
	"laureate/contexts/award-program/evaluation-ledger/adapters/memory"
	"laureate/contexts/award-program/evaluation-ledger/application/commands"
	"laureate/contexts/award-program/evaluation-ledger/application/queries"
	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	"laureate/contexts/award-program/evaluation-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Evaluations ports.EvaluationRepository
	Projects    ports.ProjectDirectory
	Policy      ports.PolicyGuard
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	ledgerUseCase := commands.LedgerUseCase{
		Evaluations: deps.Evaluations,
		Projects:    deps.Projects,
		Policy:      deps.Policy,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	deskUseCase := queries.ReviewDeskUseCase{
		Evaluations: deps.Evaluations,
		Projects:    deps.Projects,
		Policy:      deps.Policy,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Ledger: ledgerUseCase,
			Desk:   deskUseCase,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Evaluation, policy ports.PolicyGuard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Evaluations: store,
		Projects:    store,
		Policy:      policy,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
