package dto

import "time"

// CreateAccountRequest entrada del plan de cuentas.
type CreateAccountRequest struct {
	Code     string  `json:"code" validate:"required,min=1,max=20"`
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Kind     string  `json:"kind" validate:"required,oneof=revenue expense"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
	Active   *bool   `json:"active"`
}

// UpdateAccountRequest actualización parcial de una cuenta.
type UpdateAccountRequest struct {
	Code     *string `json:"code" validate:"omitempty,min=1,max=20"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Kind     *string `json:"kind" validate:"omitempty,oneof=revenue expense"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid|len=0"`
	Active   *bool   `json:"active"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	ParentID  *string   `json:"parent_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePayableRequest entrada de una cuenta por pagar.
type CreatePayableRequest struct {
	Description  string     `json:"description" validate:"required,min=1,max=500"`
	Amount       int64      `json:"amount" validate:"gte=0"`
	DueDate      time.Time  `json:"due_date" validate:"required"`
	PaidAt       *time.Time `json:"paid_at"`
	Status       string     `json:"status" validate:"omitempty,oneof=open paid overdue cancelled"`
	SupplierName string     `json:"supplier_name" validate:"max=200"`
	AccountID    *string    `json:"account_id" validate:"omitempty,uuid"`
	Note         string     `json:"note" validate:"max=2000"`
}

// UpdatePayableRequest actualización parcial de una cuenta por pagar.
type UpdatePayableRequest struct {
	Description  *string    `json:"description" validate:"omitempty,min=1,max=500"`
	Amount       *int64     `json:"amount" validate:"omitempty,gte=0"`
	DueDate      *time.Time `json:"due_date"`
	PaidAt       *time.Time `json:"paid_at"`
	Status       *string    `json:"status" validate:"omitempty,oneof=open paid overdue cancelled"`
	SupplierName *string    `json:"supplier_name" validate:"omitempty,max=200"`
	AccountID    *string    `json:"account_id" validate:"omitempty,uuid|len=0"`
	Note         *string    `json:"note" validate:"omitempty,max=2000"`
}

// PayableResponse salida de una cuenta por pagar.
type PayableResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Amount       int64      `json:"amount"`
	DueDate      time.Time  `json:"due_date"`
	PaidAt       *time.Time `json:"paid_at"`
	Status       string     `json:"status"`
	Overdue      bool       `json:"overdue"`
	SupplierName string     `json:"supplier_name"`
	AccountID    *string    `json:"account_id"`
	AccountName  string     `json:"account_name"`
	Note         string     `json:"note"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateReceivableRequest entrada de una cuenta por cobrar.
type CreateReceivableRequest struct {
	Description string     `json:"description" validate:"required,min=1,max=500"`
	Amount      int64      `json:"amount" validate:"gte=0"`
	DueDate     time.Time  `json:"due_date" validate:"required"`
	ReceivedAt  *time.Time `json:"received_at"`
	Status      string     `json:"status" validate:"omitempty,oneof=open received overdue cancelled"`
	CustomerID  *string    `json:"customer_id" validate:"omitempty,uuid"`
	AccountID   *string    `json:"account_id" validate:"omitempty,uuid"`
	Note        string     `json:"note" validate:"max=2000"`
}

// UpdateReceivableRequest actualización parcial de una cuenta por cobrar.
type UpdateReceivableRequest struct {
	Description *string    `json:"description" validate:"omitempty,min=1,max=500"`
	Amount      *int64     `json:"amount" validate:"omitempty,gte=0"`
	DueDate     *time.Time `json:"due_date"`
	ReceivedAt  *time.Time `json:"received_at"`
	Status      *string    `json:"status" validate:"omitempty,oneof=open received overdue cancelled"`
	CustomerID  *string    `json:"customer_id" validate:"omitempty,uuid|len=0"`
	AccountID   *string    `json:"account_id" validate:"omitempty,uuid|len=0"`
	Note        *string    `json:"note" validate:"omitempty,max=2000"`
}

// ReceivableResponse salida de una cuenta por cobrar.
type ReceivableResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Amount       int64      `json:"amount"`
	DueDate      time.Time  `json:"due_date"`
	ReceivedAt   *time.Time `json:"received_at"`
	Status       string     `json:"status"`
	Overdue      bool       `json:"overdue"`
	CustomerID   *string    `json:"customer_id"`
	CustomerName string     `json:"customer_name,omitempty"`
	AccountID    *string    `json:"account_id"`
	AccountName  string     `json:"account_name"`
	Note         string     `json:"note"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
