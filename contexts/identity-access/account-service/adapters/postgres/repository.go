package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
	"laureate/contexts/identity-access/account-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateAccount(ctx context.Context, account entities.Account) error {
	row := accountModelFromEntity(account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		return r.logError("account_repo_create_failed", err, "account_id", row.ID)
	}
	return nil
}

func (r *Repository) UpdateAccount(ctx context.Context, account entities.Account) error {
	row := accountModelFromEntity(account)
	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":          row.Name,
			"national_id":   row.NationalID,
			"birth_date":    row.BirthDate,
			"role":          row.Role,
			"institution":   row.Institution,
			"specialty":     row.Specialty,
			"email":         row.Email,
			"password_hash": row.PasswordHash,
			"phone":         row.Phone,
			"street":        row.Street,
			"city":          row.City,
			"state":         row.State,
			"postal_code":   row.PostalCode,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}
		return r.logError("account_repo_update_failed", result.Error, "account_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) DeleteAccount(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	result := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		Delete(&accountModel{})
	if result.Error != nil {
		return r.logError("account_repo_delete_failed", result.Error, "account_id", accountID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, r.logError("account_repo_get_failed", err, "account_id", strings.TrimSpace(accountID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, r.logError("account_repo_get_by_email_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAccounts(ctx context.Context, role string) ([]entities.Account, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var rows []accountModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("account_repo_list_failed", err)
	}
	items := make([]entities.Account, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "identity-access/account-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("account repository operation failed", fields...)
	return err
}

type accountModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	NationalID   string    `gorm:"column:national_id"`
	BirthDate    time.Time `gorm:"column:birth_date"`
	Role         string    `gorm:"column:role"`
	Institution  string    `gorm:"column:institution"`
	Specialty    string    `gorm:"column:specialty"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Phone        string    `gorm:"column:phone"`
	Street       string    `gorm:"column:street"`
	City         string    `gorm:"column:city"`
	State        string    `gorm:"column:state"`
	PostalCode   string    `gorm:"column:postal_code"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (accountModel) TableName() string {
	return "accounts"
}

func accountModelFromEntity(account entities.Account) accountModel {
	return accountModel{
		ID:           strings.TrimSpace(account.AccountID),
		Name:         account.Name,
		NationalID:   account.NationalID,
		BirthDate:    account.BirthDate.UTC(),
		Role:         account.Role,
		Institution:  account.Institution,
		Specialty:    account.Specialty,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Phone:        account.Contact.Phone,
		Street:       account.Address.Street,
		City:         account.Address.City,
		State:        account.Address.State,
		PostalCode:   account.Address.PostalCode,
		CreatedAt:    account.CreatedAt.UTC(),
		UpdatedAt:    account.UpdatedAt.UTC(),
	}
}

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		AccountID:    m.ID,
		Name:         m.Name,
		NationalID:   m.NationalID,
		BirthDate:    m.BirthDate.UTC(),
		Role:         m.Role,
		Institution:  m.Institution,
		Specialty:    m.Specialty,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Contact:      entities.Contact{Phone: m.Phone},
		Address: entities.Address{
			Street:     m.Street,
			City:       m.City,
			State:      m.State,
			PostalCode: m.PostalCode,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.AccountRepository = (*Repository)(nil)
