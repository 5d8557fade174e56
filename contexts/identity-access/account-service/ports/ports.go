package ports

import (
	"context"
	"time"

	"laureate/contexts/identity-access/account-service/domain/entities"
)

type AccountRepository interface {
	// CreateAccount persists the account; a taken email returns
	// ErrEmailTaken.
	CreateAccount(ctx context.Context, account entities.Account) error
	UpdateAccount(ctx context.Context, account entities.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
	GetAccount(ctx context.Context, accountID string) (entities.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (entities.Account, error)
	// ListAccounts returns all accounts, or only those holding role when it
	// is non-empty.
	ListAccounts(ctx context.Context, role string) ([]entities.Account, error)
}

// PasswordHasher hides the hashing scheme from the application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// PolicyGuard is satisfied by the policy module's guard, wired in bootstrap.
type PolicyGuard interface {
	Authorize(
		ctx context.Context,
		principalID string,
		principalRole string,
		action string,
		resourceType string,
		ownerID string,
		resourceState string,
	) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
