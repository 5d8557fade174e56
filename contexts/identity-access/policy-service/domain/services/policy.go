package services

import (
	"strings"

	"laureate/contexts/identity-access/policy-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

// Evaluate is the policy decision function. It is pure: no lookups, no side
// effects. Rules are evaluated first-match-wins; a normal "not allowed" case
// is a deny decision, never an error. The only error path is a malformed
// (unknown) action.
func Evaluate(principal entities.Principal, action entities.Action, resource entities.Resource) (entities.Decision, error) {
	if !knownAction(action) {
		return entities.Decision{}, domainerrors.ErrUnknownAction
	}

	// Self-service signup is the one action open to anonymous callers. Admin
	// accounts are never self-service-created, whoever asks.
	if action == entities.ActionAccountRegister {
		if strings.EqualFold(strings.TrimSpace(resource.State), string(entities.RoleAdmin)) {
			return deny(entities.ReasonAdminSignupForbidden), nil
		}
		return allow(), nil
	}

	if strings.TrimSpace(principal.ID) == "" || strings.TrimSpace(string(principal.Role)) == "" {
		return deny(entities.ReasonUnauthenticated), nil
	}
	if !principal.Role.Known() {
		return deny(entities.ReasonUnknownRole), nil
	}

	if principal.Role == entities.RoleAdmin {
		// Admin records are never deleted, not even by their owner.
		if action == entities.ActionAccountDelete &&
			strings.EqualFold(strings.TrimSpace(resource.State), string(entities.RoleAdmin)) {
			return deny(entities.ReasonAdminAccountUndeletable), nil
		}
		return allow(), nil
	}

	switch action {
	case entities.ActionAwardCreate, entities.ActionAwardUpdate, entities.ActionAwardDelete:
		return deny(entities.ReasonAdminRequired), nil
	case entities.ActionAwardRead,
		entities.ActionProjectRead,
		entities.ActionEvaluationRead,
		entities.ActionWinnerRead,
		entities.ActionAccountRead:
		return allow(), nil
	case entities.ActionProjectCreate:
		if principal.Role != entities.RoleAuthor {
			return deny(entities.ReasonAuthorRoleRequired), nil
		}
		return allow(), nil
	case entities.ActionProjectUpdate, entities.ActionProjectDelete:
		if !sameID(principal.ID, resource.OwnerID) {
			return deny(entities.ReasonOwnerRequired), nil
		}
		return allow(), nil
	case entities.ActionEvaluationCreate:
		if principal.Role != entities.RoleEvaluator {
			return deny(entities.ReasonEvaluatorRoleRequired), nil
		}
		return allow(), nil
	case entities.ActionEvaluationUpdate:
		if !sameID(principal.ID, resource.OwnerID) {
			return deny(entities.ReasonOwnerRequired), nil
		}
		return allow(), nil
	case entities.ActionEvaluationDelete:
		return deny(entities.ReasonAdminRequired), nil
	case entities.ActionAccountUpdate:
		if !sameID(principal.ID, resource.OwnerID) {
			return deny(entities.ReasonOwnerRequired), nil
		}
		return allow(), nil
	case entities.ActionAccountUpdateIdentity:
		// Role, national id, and email changes are admin-only, own record
		// included.
		return deny(entities.ReasonAdminRequired), nil
	case entities.ActionAccountDelete:
		return deny(entities.ReasonAdminRequired), nil
	}

	return entities.Decision{}, domainerrors.ErrUnknownAction
}

func knownAction(action entities.Action) bool {
	switch action {
	case entities.ActionAwardCreate, entities.ActionAwardRead,
		entities.ActionAwardUpdate, entities.ActionAwardDelete,
		entities.ActionProjectCreate, entities.ActionProjectRead,
		entities.ActionProjectUpdate, entities.ActionProjectDelete,
		entities.ActionEvaluationCreate, entities.ActionEvaluationRead,
		entities.ActionEvaluationUpdate, entities.ActionEvaluationDelete,
		entities.ActionWinnerRead,
		entities.ActionAccountRegister, entities.ActionAccountRead,
		entities.ActionAccountUpdate, entities.ActionAccountUpdateIdentity,
		entities.ActionAccountDelete:
		return true
	default:
		return false
	}
}

func allow() entities.Decision {
	return entities.Decision{Allowed: true, Reason: entities.ReasonAllowed}
}

func deny(reason string) entities.Decision {
	return entities.Decision{Allowed: false, Reason: reason}
}

func sameID(a string, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && a == b
}
