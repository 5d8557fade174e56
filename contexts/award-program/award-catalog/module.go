package awardcatalog

import (
	"log/slog"

	httpadapter "laureate/contexts/award-program/award-catalog/adapters/http"
	"laureate/contexts/award-program/award-catalog/adapters/memory"
	"laureate/contexts/award-program/award-catalog/application/commands"
	"laureate/contexts/award-program/award-catalog/application/queries"
	"laureate/contexts/award-program/award-catalog/domain/entities"
	"laureate/contexts/award-program/award-catalog/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Awards ports.AwardRepository
	Policy ports.PolicyGuard
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	awardUseCase := commands.AwardUseCase{
		Awards: deps.Awards,
		Policy: deps.Policy,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	catalogUseCase := queries.CatalogUseCase{
		Awards: deps.Awards,
		Policy: deps.Policy,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Awards:  awardUseCase,
			Catalog: catalogUseCase,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Award, policy ports.PolicyGuard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Awards: store,
		Policy: policy,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
