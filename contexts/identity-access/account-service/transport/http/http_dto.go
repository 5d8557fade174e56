package http

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ContactPayload struct {
	Phone string `json:"phone"`
}

type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type RegisterAccountRequest struct {
	Name        string         `json:"name"`
	NationalID  string         `json:"national_id"`
	BirthDate   string         `json:"birth_date,omitempty"`
	Role        string         `json:"role"`
	Institution string         `json:"institution,omitempty"`
	Specialty   string         `json:"specialty,omitempty"`
	Email       string         `json:"email"`
	Password    string         `json:"password"`
	Contact     ContactPayload `json:"contact"`
	Address     AddressPayload `json:"address"`
}

type UpdateAccountRequest struct {
	Name        string         `json:"name"`
	NationalID  string         `json:"national_id"`
	BirthDate   string         `json:"birth_date,omitempty"`
	Role        string         `json:"role"`
	Institution string         `json:"institution,omitempty"`
	Specialty   string         `json:"specialty,omitempty"`
	Email       string         `json:"email"`
	Password    string         `json:"password,omitempty"`
	Contact     ContactPayload `json:"contact"`
	Address     AddressPayload `json:"address"`
}

type AccountResponse struct {
	AccountID   string         `json:"account_id"`
	Name        string         `json:"name"`
	NationalID  string         `json:"national_id,omitempty"`
	BirthDate   string         `json:"birth_date,omitempty"`
	Role        string         `json:"role"`
	Institution string         `json:"institution,omitempty"`
	Specialty   string         `json:"specialty,omitempty"`
	Email       string         `json:"email"`
	Contact     ContactPayload `json:"contact"`
	Address     AddressPayload `json:"address"`
}

type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
