package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"laureate/contexts/identity-access/account-service/application/commands"
	"laureate/contexts/identity-access/account-service/application/queries"
	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"
	httptransport "laureate/contexts/identity-access/account-service/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Accounts  commands.AccountUseCase
	Directory queries.DirectoryUseCase
	Logger    *slog.Logger
}

func (h Handler) RegisterAccountHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	req httptransport.RegisterAccountRequest,
) (httptransport.AccountResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	account, err := h.Accounts.RegisterAccount(ctx, commands.RegisterAccountCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		Name:          req.Name,
		NationalID:    req.NationalID,
		BirthDate:     birthDate,
		Role:          req.Role,
		Institution:   req.Institution,
		Specialty:     req.Specialty,
		Email:         req.Email,
		Password:      req.Password,
		Contact:       entities.Contact{Phone: req.Contact.Phone},
		Address: entities.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
		},
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

func (h Handler) UpdateAccountHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	accountID string,
	req httptransport.UpdateAccountRequest,
) (httptransport.AccountResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	account, err := h.Accounts.UpdateAccount(ctx, commands.UpdateAccountCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AccountID:     accountID,
		Name:          req.Name,
		NationalID:    req.NationalID,
		BirthDate:     birthDate,
		Role:          req.Role,
		Institution:   req.Institution,
		Specialty:     req.Specialty,
		Email:         req.Email,
		Password:      req.Password,
		Contact:       entities.Contact{Phone: req.Contact.Phone},
		Address: entities.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
		},
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

func (h Handler) DeleteAccountHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	accountID string,
) error {
	return h.Accounts.DeleteAccount(ctx, commands.DeleteAccountCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AccountID:     accountID,
	})
}

func (h Handler) GetAccountHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	accountID string,
) (httptransport.AccountResponse, error) {
	account, err := h.Directory.GetAccount(ctx, queries.GetAccountQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AccountID:     accountID,
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

func (h Handler) ListAccountsHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	role string,
) (httptransport.AccountListResponse, error) {
	accounts, err := h.Directory.ListAccounts(ctx, queries.ListAccountsQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		Role:          role,
	})
	if err != nil {
		return httptransport.AccountListResponse{}, err
	}
	items := make([]httptransport.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, toAccountResponse(account))
	}
	return httptransport.AccountListResponse{Items: items}, nil
}

func (h Handler) LoginHandler(
	ctx context.Context,
	req httptransport.LoginRequest,
) (httptransport.LoginResponse, error) {
	principal, err := h.Directory.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		AccountID: principal.AccountID,
		Name:      principal.Name,
		Role:      principal.Role,
	}, nil
}

func parseBirthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	birthDate, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &domainerrors.ValidationError{Fields: []domainerrors.FieldError{{
			Field:   "birth_date",
			Message: "date must use YYYY-MM-DD",
		}}}
	}
	return birthDate, nil
}

func toAccountResponse(account entities.Account) httptransport.AccountResponse {
	birthDate := ""
	if !account.BirthDate.IsZero() {
		birthDate = account.BirthDate.UTC().Format(dateLayout)
	}
	return httptransport.AccountResponse{
		AccountID:   account.AccountID,
		Name:        account.Name,
		NationalID:  account.NationalID,
		BirthDate:   birthDate,
		Role:        account.Role,
		Institution: account.Institution,
		Specialty:   account.Specialty,
		Email:       account.Email,
		Contact:     httptransport.ContactPayload{Phone: account.Contact.Phone},
		Address: httptransport.AddressPayload{
			Street:     account.Address.Street,
			City:       account.Address.City,
			State:      account.Address.State,
			PostalCode: account.Address.PostalCode,
		},
	}
}
