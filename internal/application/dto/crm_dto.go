package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Kind      string `json:"kind" validate:"omitempty,oneof=PF PJ"`
	Name      string `json:"name" validate:"max=200"`
	LegalName string `json:"legal_name" validate:"max=200"`
	TradeName string `json:"trade_name" validate:"max=200"`
	TaxID     string `json:"tax_id" validate:"max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=320"`
	Phone     string `json:"phone" validate:"max=30"`
	Mobile    string `json:"mobile" validate:"max=30"`
	Address   string `json:"address" validate:"max=500"`
	City      string `json:"city" validate:"max=100"`
	State     string `json:"state" validate:"max=2"`
	ZipCode   string `json:"zip_code" validate:"max=10"`
	Potential string `json:"potential" validate:"omitempty,oneof=Baixo Medio Alto"`
	Active    *bool  `json:"active"`
	Note      string `json:"note" validate:"max=2000"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	Kind      *string `json:"kind" validate:"omitempty,oneof=PF PJ"`
	Name      *string `json:"name" validate:"omitempty,max=200"`
	LegalName *string `json:"legal_name" validate:"omitempty,max=200"`
	TradeName *string `json:"trade_name" validate:"omitempty,max=200"`
	TaxID     *string `json:"tax_id" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email|len=0"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Mobile    *string `json:"mobile" validate:"omitempty,max=30"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	State     *string `json:"state" validate:"omitempty,max=2"`
	ZipCode   *string `json:"zip_code" validate:"omitempty,max=10"`
	Potential *string `json:"potential" validate:"omitempty,oneof=Baixo Medio Alto"`
	Active    *bool   `json:"active"`
	Note      *string `json:"note" validate:"omitempty,max=2000"`
}

// CustomerResponse salida de un cliente con su nombre a mostrar.
type CustomerResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	LegalName   string    `json:"legal_name"`
	TradeName   string    `json:"trade_name"`
	TaxID       string    `json:"tax_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Mobile      string    `json:"mobile"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	Potential   string    `json:"potential"`
	Active      bool      `json:"active"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateOpportunityRequest entrada para crear una oportunidad.
type CreateOpportunityRequest struct {
	CustomerID      string     `json:"customer_id" validate:"required,uuid"`
	Title           string     `json:"title" validate:"required,min=1,max=200"`
	Description     string     `json:"description" validate:"max=2000"`
	EstimatedValue  int64      `json:"estimated_value" validate:"gte=0"`
	Status          string     `json:"status" validate:"omitempty,oneof=prospecting qualification proposal negotiation won lost"`
	Probability     int        `json:"probability" validate:"gte=0,lte=100"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
}

// UpdateOpportunityRequest actualización parcial de una oportunidad.
type UpdateOpportunityRequest struct {
	CustomerID      *string    `json:"customer_id" validate:"omitempty,uuid"`
	Title           *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" validate:"omitempty,max=2000"`
	EstimatedValue  *int64     `json:"estimated_value" validate:"omitempty,gte=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=prospecting qualification proposal negotiation won lost"`
	Probability     *int       `json:"probability" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
	ClosedAt        *time.Time `json:"closed_at"`
}

// OpportunityResponse salida de una oportunidad.
type OpportunityResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedValue  int64      `json:"estimated_value"`
	Status          string     `json:"status"`
	Probability     int        `json:"probability"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
	ClosedAt        *time.Time `json:"closed_at"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
