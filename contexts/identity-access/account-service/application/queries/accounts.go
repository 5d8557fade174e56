package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "laureate/contexts/identity-access/account-service/application"
	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
	"laureate/contexts/identity-access/account-service/ports"
)

// DirectoryUseCase serves account reads and the credential check.
type DirectoryUseCase struct {
	Accounts ports.AccountRepository
	Hasher   ports.PasswordHasher
	Policy   ports.PolicyGuard
	Logger   *slog.Logger
}

type GetAccountQuery struct {
	PrincipalID   string
	PrincipalRole string
	AccountID     string
}

func (uc DirectoryUseCase) GetAccount(ctx context.Context, query GetAccountQuery) (entities.Account, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "account.read", "account", "", ""); err != nil {
		return entities.Account{}, err
	}
	return uc.Accounts.GetAccount(ctx, strings.TrimSpace(query.AccountID))
}

type ListAccountsQuery struct {
	PrincipalID   string
	PrincipalRole string
	Role          string
}

func (uc DirectoryUseCase) ListAccounts(ctx context.Context, query ListAccountsQuery) ([]entities.Account, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "account.read", "account", "", ""); err != nil {
		return nil, err
	}
	return uc.Accounts.ListAccounts(ctx, strings.ToLower(strings.TrimSpace(query.Role)))
}

// VerifyCredentials resolves an email/password pair to a principal. Unknown
// emails and wrong passwords share one error so callers cannot probe which
// addresses are registered.
func (uc DirectoryUseCase) VerifyCredentials(ctx context.Context, email string, password string) (entities.Principal, error) {
	logger := application.ResolveLogger(uc.Logger)
	account, err := uc.Accounts.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return entities.Principal{}, domainerrors.ErrInvalidCredentials
		}
		return entities.Principal{}, err
	}
	if err := uc.Hasher.Compare(account.PasswordHash, password); err != nil {
		logger.Warn("credential check failed",
			"event", "account_login_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"account_id", account.AccountID,
		)
		return entities.Principal{}, domainerrors.ErrInvalidCredentials
	}
	return entities.Principal{
		AccountID: account.AccountID,
		Name:      account.Name,
		Role:      account.Role,
	}, nil
}
