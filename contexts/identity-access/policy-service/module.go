package policy

import (
	"log/slog"

	httpadapter "laureate/contexts/identity-access/policy-service/adapters/http"
	"laureate/contexts/identity-access/policy-service/application/queries"
)

type Module struct {
	Handler httpadapter.Handler
	Guard   queries.Guard
}

type Dependencies struct {
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	authorizer := queries.AuthorizeUseCase{Logger: deps.Logger}
	return Module{
		Handler: httpadapter.Handler{
			Authorizer: authorizer,
			Logger:     deps.Logger,
		},
		Guard: queries.Guard{Authorizer: authorizer},
	}
}
