package accountservice_test

import (
	"context"
	"errors"
	"testing"

	accountservice "laureate/contexts/identity-access/account-service"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
	httptransport "laureate/contexts/identity-access/account-service/transport/http"
	policy "laureate/contexts/identity-access/policy-service"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func newAccountModule() accountservice.Module {
	guard := policy.NewModule(policy.Dependencies{}).Guard
	return accountservice.NewInMemoryModule(nil, guard, nil)
}

func registerAuthor(t *testing.T, module accountservice.Module, name string, email string) httptransport.AccountResponse {
	t.Helper()
	account, err := module.Handler.RegisterAccountHandler(context.Background(), "", "", httptransport.RegisterAccountRequest{
		Name:        name,
		Role:        "author",
		Institution: "State University",
		Email:       email,
		Password:    "hunter22",
		Contact:     httptransport.ContactPayload{Phone: "+1-555-0100"},
		Address:     httptransport.AddressPayload{Street: "1 Campus Way", City: "Springfield", State: "IL", PostalCode: "62701"},
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", name, err)
	}
	return account
}

func TestRegisterAndLogin(t *testing.T) {
	module := newAccountModule()

	account := registerAuthor(t, module, "Ada Moreira", "ada@example.org")
	if account.Role != "author" {
		t.Fatalf("expected author role, got %s", account.Role)
	}

	principal, err := module.Handler.LoginHandler(context.Background(), httptransport.LoginRequest{
		Email:    "Ada@Example.org",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if principal.AccountID != account.AccountID || principal.Role != "author" {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if _, err := module.Handler.LoginHandler(context.Background(), httptransport.LoginRequest{
		Email:    "ada@example.org",
		Password: "wrong-password",
	}); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := module.Handler.LoginHandler(context.Background(), httptransport.LoginRequest{
		Email:    "nobody@example.org",
		Password: "hunter22",
	}); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestRegisterRejectsAdminAndDuplicates(t *testing.T) {
	module := newAccountModule()

	_, err := module.Handler.RegisterAccountHandler(context.Background(), "", "", httptransport.RegisterAccountRequest{
		Name:     "Mallory",
		Role:     "admin",
		Email:    "mallory@example.org",
		Password: "hunter22",
	})
	if !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for admin signup, got %v", err)
	}

	registerAuthor(t, module, "Ada Moreira", "ada@example.org")
	_, err = module.Handler.RegisterAccountHandler(context.Background(), "", "", httptransport.RegisterAccountRequest{
		Name:     "Ada Second",
		Role:     "author",
		Email:    "ada@example.org",
		Password: "hunter22",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestRegisterCollectsFieldErrors(t *testing.T) {
	module := newAccountModule()

	_, err := module.Handler.RegisterAccountHandler(context.Background(), "", "", httptransport.RegisterAccountRequest{
		Name:        "",
		Role:        "evaluator",
		Institution: "Should not be set for evaluators",
		Email:       "not-an-email",
		Password:    "short",
	})
	var validation *domainerrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	byField := make(map[string]string, len(validation.Fields))
	for _, field := range validation.Fields {
		byField[field.Field] = field.Message
	}
	for _, want := range []string{"name", "email", "password", "institution"} {
		if _, ok := byField[want]; !ok {
			t.Fatalf("expected field error for %q, got %v", want, validation.Fields)
		}
	}
}

func TestIdentityFieldChangesAreAdminOnly(t *testing.T) {
	module := newAccountModule()
	account := registerAuthor(t, module, "Ada Moreira", "ada@example.org")

	// Self-service update of non-identity fields works.
	selfUpdate := httptransport.UpdateAccountRequest{
		Name:        "Ada M. Moreira",
		Role:        "author",
		Institution: "State University",
		Email:       "ada@example.org",
		Contact:     httptransport.ContactPayload{Phone: "+1-555-0199"},
	}
	updated, err := module.Handler.UpdateAccountHandler(context.Background(), account.AccountID, "author", account.AccountID, selfUpdate)
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Contact.Phone != "+1-555-0199" {
		t.Fatalf("expected phone updated, got %s", updated.Contact.Phone)
	}

	// Changing the email is an identity change and needs an admin.
	identityUpdate := selfUpdate
	identityUpdate.Email = "ada.new@example.org"
	if _, err := module.Handler.UpdateAccountHandler(context.Background(), account.AccountID, "author", account.AccountID, identityUpdate); !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for self identity change, got %v", err)
	}
	if _, err := module.Handler.UpdateAccountHandler(context.Background(), "admin-1", "admin", account.AccountID, identityUpdate); err != nil {
		t.Fatalf("admin identity change failed: %v", err)
	}

	// Another author cannot touch the record at all.
	other := registerAuthor(t, module, "Grace", "grace@example.org")
	if _, err := module.Handler.UpdateAccountHandler(context.Background(), other.AccountID, "author", account.AccountID, selfUpdate); !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign update, got %v", err)
	}
}

func TestAdminAccountsAreUndeletable(t *testing.T) {
	module := newAccountModule()
	account := registerAuthor(t, module, "Ada Moreira", "ada@example.org")

	if err := module.Handler.DeleteAccountHandler(context.Background(), account.AccountID, "author", account.AccountID); !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for self delete, got %v", err)
	}
	if err := module.Handler.DeleteAccountHandler(context.Background(), "admin-1", "admin", account.AccountID); err != nil {
		t.Fatalf("admin delete of author failed: %v", err)
	}

	// Seed an admin record through an admin-driven identity change.
	seeded := registerAuthor(t, module, "Root", "root@example.org")
	promote := httptransport.UpdateAccountRequest{Name: "Root", Role: "admin", Email: "root@example.org"}
	if _, err := module.Handler.UpdateAccountHandler(context.Background(), "admin-1", "admin", seeded.AccountID, promote); err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	if err := module.Handler.DeleteAccountHandler(context.Background(), "admin-1", "admin", seeded.AccountID); !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden deleting an admin record, got %v", err)
	}
}

func TestListAccountsFiltersByRole(t *testing.T) {
	module := newAccountModule()
	registerAuthor(t, module, "Ada", "ada@example.org")
	if _, err := module.Handler.RegisterAccountHandler(context.Background(), "", "", httptransport.RegisterAccountRequest{
		Name:      "Evan",
		Role:      "evaluator",
		Specialty: "materials science",
		Email:     "evan@example.org",
		Password:  "hunter22",
	}); err != nil {
		t.Fatalf("register evaluator failed: %v", err)
	}

	evaluators, err := module.Handler.ListAccountsHandler(context.Background(), "admin-1", "admin", "evaluator")
	if err != nil {
		t.Fatalf("list evaluators failed: %v", err)
	}
	if len(evaluators.Items) != 1 || evaluators.Items[0].Email != "evan@example.org" {
		t.Fatalf("unexpected evaluator list: %+v", evaluators.Items)
	}
	all, err := module.Handler.ListAccountsHandler(context.Background(), "admin-1", "admin", "")
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all.Items) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(all.Items))
	}
}
