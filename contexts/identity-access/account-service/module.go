package accountservice

import (
	"log/slog"

	bcryptadapter "laureate/contexts/identity-access/account-service/adapters/bcrypt"
	httpadapter "laureate/contexts/identity-access/account-service/adapters/http"
	"laureate/contexts/identity-access/account-service/adapters/memory"
	"laureate/contexts/identity-access/account-service/application/commands"
	"laureate/contexts/identity-access/account-service/application/queries"
	"laureate/contexts/identity-access/account-service/domain/entities"
	"laureate/contexts/identity-access/account-service/ports"

	"golang.org/x/crypto/bcrypt"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Accounts ports.AccountRepository
	Hasher   ports.PasswordHasher
	Policy   ports.PolicyGuard
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	accountUseCase := commands.AccountUseCase{
		Accounts: deps.Accounts,
		Hasher:   deps.Hasher,
		Policy:   deps.Policy,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	directoryUseCase := queries.DirectoryUseCase{
		Accounts: deps.Accounts,
		Hasher:   deps.Hasher,
		Policy:   deps.Policy,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Accounts:  accountUseCase,
			Directory: directoryUseCase,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Account, policy ports.PolicyGuard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Accounts: store,
		// MinCost keeps test suites fast; runtime wiring uses the default.
		Hasher: bcryptadapter.Hasher{Cost: bcrypt.MinCost},
		Policy: policy,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
