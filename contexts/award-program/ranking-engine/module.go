package rankingengine

import (
	"log/slog"

	httpadapter "laureate/contexts/award-program/ranking-engine/adapters/http"
	"laureate/contexts/award-program/ranking-engine/adapters/memory"
	"laureate/contexts/award-program/ranking-engine/application/queries"
	"laureate/contexts/award-program/ranking-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Source    ports.RankingSource
	Policy    ports.PolicyGuard
	Threshold float64
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	winnersUseCase := queries.WinnersUseCase{
		Source:    deps.Source,
		Policy:    deps.Policy,
		Threshold: deps.Threshold,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Winners: winnersUseCase,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(policy ports.PolicyGuard, threshold float64, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Source:    store,
		Policy:    policy,
		Threshold: threshold,
		Logger:    logger,
	})
	module.Store = store
	return module
}
