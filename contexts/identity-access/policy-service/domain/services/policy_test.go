package services

import (
	"errors"
	"testing"

	"laureate/contexts/identity-access/policy-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func TestEvaluateRoleGates(t *testing.T) {
	admin := entities.Principal{ID: "user-admin", Role: entities.RoleAdmin}
	author := entities.Principal{ID: "user-author", Role: entities.RoleAuthor}
	evaluator := entities.Principal{ID: "user-eval", Role: entities.RoleEvaluator}

	cases := []struct {
		name      string
		principal entities.Principal
		action    entities.Action
		resource  entities.Resource
		allowed   bool
		reason    string
	}{
		{"admin creates award", admin, entities.ActionAwardCreate, entities.Resource{Type: "award"}, true, entities.ReasonAllowed},
		{"author cannot create award", author, entities.ActionAwardCreate, entities.Resource{Type: "award"}, false, entities.ReasonAdminRequired},
		{"evaluator cannot delete award", evaluator, entities.ActionAwardDelete, entities.Resource{Type: "award"}, false, entities.ReasonAdminRequired},
		{"evaluator reads awards", evaluator, entities.ActionAwardRead, entities.Resource{Type: "award"}, true, entities.ReasonAllowed},
		{"author creates project", author, entities.ActionProjectCreate, entities.Resource{Type: "project"}, true, entities.ReasonAllowed},
		{"evaluator cannot create project", evaluator, entities.ActionProjectCreate, entities.Resource{Type: "project"}, false, entities.ReasonAuthorRoleRequired},
		{"owner updates own project", author, entities.ActionProjectUpdate, entities.Resource{Type: "project", OwnerID: "user-author", State: "pending"}, true, entities.ReasonAllowed},
		{"non-owner cannot update project", author, entities.ActionProjectUpdate, entities.Resource{Type: "project", OwnerID: "someone-else", State: "pending"}, false, entities.ReasonOwnerRequired},
		{"admin updates any project", admin, entities.ActionProjectUpdate, entities.Resource{Type: "project", OwnerID: "someone-else", State: "pending"}, true, entities.ReasonAllowed},
		{"evaluator creates evaluation", evaluator, entities.ActionEvaluationCreate, entities.Resource{Type: "evaluation"}, true, entities.ReasonAllowed},
		{"author cannot create evaluation", author, entities.ActionEvaluationCreate, entities.Resource{Type: "evaluation"}, false, entities.ReasonEvaluatorRoleRequired},
		{"authoring evaluator updates evaluation", evaluator, entities.ActionEvaluationUpdate, entities.Resource{Type: "evaluation", OwnerID: "user-eval"}, true, entities.ReasonAllowed},
		{"other evaluator cannot update evaluation", evaluator, entities.ActionEvaluationUpdate, entities.Resource{Type: "evaluation", OwnerID: "user-eval-2"}, false, entities.ReasonOwnerRequired},
		{"evaluator cannot delete evaluation", evaluator, entities.ActionEvaluationDelete, entities.Resource{Type: "evaluation", OwnerID: "user-eval"}, false, entities.ReasonAdminRequired},
		{"admin deletes evaluation", admin, entities.ActionEvaluationDelete, entities.Resource{Type: "evaluation", OwnerID: "user-eval"}, true, entities.ReasonAllowed},
		{"anyone reads winners", author, entities.ActionWinnerRead, entities.Resource{Type: "winner"}, true, entities.ReasonAllowed},
		{"self updates own account", author, entities.ActionAccountUpdate, entities.Resource{Type: "account", OwnerID: "user-author"}, true, entities.ReasonAllowed},
		{"non-admin cannot update other account", author, entities.ActionAccountUpdate, entities.Resource{Type: "account", OwnerID: "someone-else"}, false, entities.ReasonOwnerRequired},
		{"identity fields are admin-only", author, entities.ActionAccountUpdateIdentity, entities.Resource{Type: "account", OwnerID: "user-author"}, false, entities.ReasonAdminRequired},
		{"admin changes identity fields", admin, entities.ActionAccountUpdateIdentity, entities.Resource{Type: "account", OwnerID: "someone-else"}, true, entities.ReasonAllowed},
		{"non-admin cannot delete account", author, entities.ActionAccountDelete, entities.Resource{Type: "account", OwnerID: "someone-else", State: "author"}, false, entities.ReasonAdminRequired},
		{"admin deletes author account", admin, entities.ActionAccountDelete, entities.Resource{Type: "account", OwnerID: "someone-else", State: "author"}, true, entities.ReasonAllowed},
		{"admin cannot delete admin account", admin, entities.ActionAccountDelete, entities.Resource{Type: "account", OwnerID: "user-admin", State: "admin"}, false, entities.ReasonAdminAccountUndeletable},
		{"anonymous signup allowed", entities.Principal{}, entities.ActionAccountRegister, entities.Resource{Type: "account", State: "author"}, true, entities.ReasonAllowed},
		{"admin signup always denied", admin, entities.ActionAccountRegister, entities.Resource{Type: "account", State: "admin"}, false, entities.ReasonAdminSignupForbidden},
		{"anonymous cannot read projects", entities.Principal{}, entities.ActionProjectRead, entities.Resource{Type: "project"}, false, entities.ReasonUnauthenticated},
		{"unknown role denied", entities.Principal{ID: "x", Role: "director"}, entities.ActionAwardRead, entities.Resource{Type: "award"}, false, entities.ReasonUnknownRole},
	}

	for _, tc := range cases {
		decision, err := Evaluate(tc.principal, tc.action, tc.resource)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if decision.Allowed != tc.allowed {
			t.Fatalf("%s: expected allowed=%v, got %v (reason %s)", tc.name, tc.allowed, decision.Allowed, decision.Reason)
		}
		if decision.Reason != tc.reason {
			t.Fatalf("%s: expected reason %s, got %s", tc.name, tc.reason, decision.Reason)
		}
	}
}

func TestEvaluateUnknownActionErrors(t *testing.T) {
	_, err := Evaluate(entities.Principal{ID: "u", Role: entities.RoleAdmin}, "award.publish", entities.Resource{})
	if !errors.Is(err, domainerrors.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}
