package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	application "laureate/contexts/identity-access/account-service/application"
	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
)

// UpdateAccountCommand revises an account. Role, national id, and email are
// identity fields: changing any of them takes the admin-only identity action
// on top of the ownership check.
type UpdateAccountCommand struct {
	PrincipalID   string
	PrincipalRole string
	AccountID     string
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

func (uc AccountUseCase) UpdateAccount(ctx context.Context, cmd UpdateAccountCommand) (entities.Account, error) {
	logger := application.ResolveLogger(uc.Logger)
	existing, err := uc.loadForMutation(ctx, cmd.PrincipalID, cmd.PrincipalRole, "account.update", cmd.AccountID)
	if err != nil {
		return entities.Account{}, err
	}

	role := strings.ToLower(strings.TrimSpace(cmd.Role))
	email := normalizeEmail(cmd.Email)
	nationalID := strings.TrimSpace(cmd.NationalID)
	if role != existing.Role || email != existing.Email || nationalID != existing.NationalID {
		if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "account.update_identity", "account", existing.AccountID, existing.Role); err != nil {
			return entities.Account{}, err
		}
	}

	var fields []domainerrors.FieldError
	if strings.TrimSpace(cmd.Name) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}
	if email == "" || !strings.Contains(email, "@") {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if !entities.KnownRole(role) {
		fields = append(fields, domainerrors.FieldError{Field: "role", Message: "unknown role"})
	}
	if cmd.Password != "" && len(cmd.Password) < minPasswordLength {
		fields = append(fields, domainerrors.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return entities.Account{}, &domainerrors.ValidationError{Fields: fields}
	}

	updated := existing
	updated.Name = strings.TrimSpace(cmd.Name)
	updated.NationalID = nationalID
	if !cmd.BirthDate.IsZero() {
		updated.BirthDate = cmd.BirthDate.UTC()
	}
	updated.Role = role
	updated.Institution = strings.TrimSpace(cmd.Institution)
	updated.Specialty = strings.TrimSpace(cmd.Specialty)
	updated.Email = email
	updated.Contact = cmd.Contact
	updated.Address = cmd.Address
	if cmd.Password != "" {
		hash, err := uc.Hasher.Hash(cmd.Password)
		if err != nil {
			return entities.Account{}, err
		}
		updated.PasswordHash = hash
	}
	updated.UpdatedAt = uc.now()
	if err := uc.Accounts.UpdateAccount(ctx, updated); err != nil {
		return entities.Account{}, err
	}

	logger.Info("account updated",
		"event", "account_updated",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", updated.AccountID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return updated, nil
}

// DeleteAccountCommand removes a non-admin account.
type DeleteAccountCommand struct {
	PrincipalID   string
	PrincipalRole string
	AccountID     string
}

func (uc AccountUseCase) DeleteAccount(ctx context.Context, cmd DeleteAccountCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	existing, err := uc.loadForMutation(ctx, cmd.PrincipalID, cmd.PrincipalRole, "account.delete", cmd.AccountID)
	if err != nil {
		return err
	}
	if err := uc.Accounts.DeleteAccount(ctx, existing.AccountID); err != nil {
		return err
	}

	logger.Info("account deleted",
		"event", "account_deleted",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", existing.AccountID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return nil
}

// loadForMutation fetches the account and gates the mutation. The record's
// role is passed as resource state so the policy can refuse deleting admin
// accounts. A missing id still runs the guard against an empty owner, so a
// non-owner probe gets the same forbidden answer whether or not the id is
// real; only admins learn it is missing.
func (uc AccountUseCase) loadForMutation(ctx context.Context, principalID string, principalRole string, action string, accountID string) (entities.Account, error) {
	existing, err := uc.Accounts.GetAccount(ctx, strings.TrimSpace(accountID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			if guardErr := uc.Policy.Authorize(ctx, principalID, principalRole, action, "account", "", ""); guardErr != nil {
				return entities.Account{}, guardErr
			}
		}
		return entities.Account{}, err
	}
	if err := uc.Policy.Authorize(ctx, principalID, principalRole, action, "account", existing.AccountID, existing.Role); err != nil {
		return entities.Account{}, err
	}
	return existing, nil
}
