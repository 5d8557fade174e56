package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "laureate/contexts/identity-access/policy-service/application"
	"laureate/contexts/identity-access/policy-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/policy-service/domain/errors"
	"laureate/contexts/identity-access/policy-service/domain/services"
)

// AuthorizeQuery is the request model for a single policy decision.
type AuthorizeQuery struct {
	Principal entities.Principal
	Action    entities.Action
	Resource  entities.Resource
}

// AuthorizeUseCase wraps the pure policy function with denial logging.
type AuthorizeUseCase struct {
	Logger *slog.Logger
}

// Execute evaluates the policy and returns the decision. Denials are logged
// with their machine-readable reason; they are not errors.
func (u AuthorizeUseCase) Execute(ctx context.Context, query AuthorizeQuery) (entities.Decision, error) {
	decision, err := services.Evaluate(query.Principal, query.Action, query.Resource)
	if err != nil {
		return entities.Decision{}, err
	}
	if !decision.Allowed {
		application.ResolveLogger(u.Logger).Warn("policy denied action",
			"event", "policy_authorize_denied",
			"module", "identity-access/policy-service",
			"layer", "application",
			"principal_id", strings.TrimSpace(query.Principal.ID),
			"principal_role", string(query.Principal.Role),
			"action", string(query.Action),
			"resource_type", strings.TrimSpace(query.Resource.Type),
			"reason", decision.Reason,
		)
	}
	return decision, nil
}

// Guard adapts the decision into the error-based contract the other modules
// consume through their primitive-typed PolicyGuard ports.
type Guard struct {
	Authorizer AuthorizeUseCase
}

func (g Guard) Authorize(
	ctx context.Context,
	principalID string,
	principalRole string,
	action string,
	resourceType string,
	ownerID string,
	resourceState string,
) error {
	decision, err := g.Authorizer.Execute(ctx, AuthorizeQuery{
		Principal: entities.Principal{
			ID:   strings.TrimSpace(principalID),
			Role: entities.Role(strings.TrimSpace(principalRole)),
		},
		Action: entities.Action(action),
		Resource: entities.Resource{
			Type:    strings.TrimSpace(resourceType),
			OwnerID: strings.TrimSpace(ownerID),
			State:   strings.TrimSpace(resourceState),
		},
	})
	if err != nil {
		return err
	}
	if decision.Allowed {
		return nil
	}
	if decision.Reason == entities.ReasonUnauthenticated {
		return fmt.Errorf("%w: %s", domainerrors.ErrUnauthenticated, decision.Reason)
	}
	return fmt.Errorf("%w: %s", domainerrors.ErrForbidden, decision.Reason)
}
