package httpadapter

import (
	"context"
	"log/slog"

	"laureate/contexts/identity-access/policy-service/application/queries"
	"laureate/contexts/identity-access/policy-service/domain/entities"
	httptransport "laureate/contexts/identity-access/policy-service/transport/http"
)

type Handler struct {
	Authorizer queries.AuthorizeUseCase
	Logger     *slog.Logger
}

// CheckHandler exposes the decision function for debugging and for callers
// that want a dry-run answer without attempting the operation.
func (h Handler) CheckHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	req httptransport.CheckRequest,
) (httptransport.CheckResponse, error) {
	decision, err := h.Authorizer.Execute(ctx, queries.AuthorizeQuery{
		Principal: entities.Principal{
			ID:   principalID,
			Role: entities.Role(principalRole),
		},
		Action: entities.Action(req.Action),
		Resource: entities.Resource{
			Type:    req.ResourceType,
			OwnerID: req.ResourceOwner,
			State:   req.ResourceState,
		},
	})
	if err != nil {
		return httptransport.CheckResponse{}, err
	}
	return httptransport.CheckResponse{
		Allowed: decision.Allowed,
		Reason:  decision.Reason,
	}, nil
}
