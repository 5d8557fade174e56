package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "laureate/contexts/identity-access/account-service/application"
	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
	"laureate/contexts/identity-access/account-service/ports"
)

const minPasswordLength = 6

// RegisterAccountCommand is the self-service signup input. PrincipalID and
// PrincipalRole may be empty: registration is open to anonymous callers.
type RegisterAccountCommand struct {
	PrincipalID   string
	PrincipalRole string
	Name          string
	NationalID    string
	BirthDate     time.Time
	Role          string
	Institution   string
	Specialty     string
	Email         string
	Password      string
	Contact       entities.Contact
	Address       entities.Address
}

// AccountUseCase orchestrates account mutations: policy gating, field-level
// validation, password hashing, and persistence.
type AccountUseCase struct {
	Accounts ports.AccountRepository
	Hasher   ports.PasswordHasher
	Policy   ports.PolicyGuard
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// RegisterAccount validates and persists a new account. The requested role
// travels to the policy as resource state so admin signups are rejected
// before any validation runs.
func (uc AccountUseCase) RegisterAccount(ctx context.Context, cmd RegisterAccountCommand) (entities.Account, error) {
	logger := application.ResolveLogger(uc.Logger)
	role := strings.ToLower(strings.TrimSpace(cmd.Role))
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "account.register", "account", "", role); err != nil {
		return entities.Account{}, err
	}

	if fields := validateRegistration(cmd, role); len(fields) > 0 {
		logger.Warn("account registration validation failed",
			"event", "account_register_validation_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"field_errors", len(fields),
		)
		return entities.Account{}, &domainerrors.ValidationError{Fields: fields}
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.Account{}, err
	}
	accountID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Account{}, err
	}
	now := uc.now()
	account := entities.Account{
		AccountID:    accountID,
		Name:         strings.TrimSpace(cmd.Name),
		NationalID:   strings.TrimSpace(cmd.NationalID),
		BirthDate:    cmd.BirthDate.UTC(),
		Role:         role,
		Institution:  strings.TrimSpace(cmd.Institution),
		Specialty:    strings.TrimSpace(cmd.Specialty),
		Email:        normalizeEmail(cmd.Email),
		PasswordHash: hash,
		Contact:      cmd.Contact,
		Address:      cmd.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Accounts.CreateAccount(ctx, account); err != nil {
		return entities.Account{}, err
	}

	logger.Info("account registered",
		"event", "account_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.AccountID,
		"role", account.Role,
	)
	return account, nil
}

func validateRegistration(cmd RegisterAccountCommand, role string) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if strings.TrimSpace(cmd.Name) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}
	email := normalizeEmail(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(cmd.Password) < minPasswordLength {
		fields = append(fields, domainerrors.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	switch role {
	case "":
		fields = append(fields, domainerrors.FieldError{Field: "role", Message: "role is required"})
	case "author", "evaluator":
	default:
		// Admin never reaches here; the policy rejects it first.
		fields = append(fields, domainerrors.FieldError{Field: "role", Message: "role must be author or evaluator"})
	}
	if role == "evaluator" && strings.TrimSpace(cmd.Institution) != "" {
		fields = append(fields, domainerrors.FieldError{Field: "institution", Message: "institution applies to authors only"})
	}
	if role == "author" && strings.TrimSpace(cmd.Specialty) != "" {
		fields = append(fields, domainerrors.FieldError{Field: "specialty", Message: "specialty applies to evaluators only"})
	}
	return fields
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc AccountUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
