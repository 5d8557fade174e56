package projectlifecycle

import (
	"log/slog"

	httpadapter "laureate/contexts/award-program/project-lifecycle/adapters/http"
	"laureate/contexts/award-program/project-lifecycle/adapters/memory"
	"laureate/contexts/award-program/project-lifecycle/application/commands"
	"laureate/contexts/award-program/project-lifecycle/application/queries"
	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	"laureate/contexts/award-program/project-lifecycle/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Projects ports.ProjectRepository
	Awards   ports.AwardDirectory
	Accounts ports.AccountDirectory
	Policy   ports.PolicyGuard
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	projectUseCase := commands.ProjectUseCase{
		Projects: deps.Projects,
		Awards:   deps.Awards,
		Accounts: deps.Accounts,
		Policy:   deps.Policy,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	boardUseCase := queries.BoardUseCase{
		Projects: deps.Projects,
		Policy:   deps.Policy,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Projects: projectUseCase,
			Board:    boardUseCase,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Project, policy ports.PolicyGuard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Projects: store,
		Awards:   store,
		Accounts: store,
		Policy:   policy,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
