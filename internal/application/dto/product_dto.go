package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateCategoryRequest actualización parcial de una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest entrada para crear una mercadería. OnHandQuantity es la existencia inicial.
type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	SKU            string  `json:"sku" validate:"max=100"`
	CategoryID     *string `json:"category_id" validate:"omitempty,uuid"`
	Description    string  `json:"description" validate:"max=2000"`
	CostPrice      int64   `json:"cost_price" validate:"gte=0"`
	SalePrice      int64   `json:"sale_price" validate:"gte=0"`
	OnHandQuantity int64   `json:"on_hand_quantity" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"max=10"`
	Active         *bool   `json:"active"`
}

// UpdateProductRequest actualización parcial (sin existencia: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU         *string `json:"sku" validate:"omitempty,max=100"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid|len=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	CostPrice   *int64  `json:"cost_price" validate:"omitempty,gte=0"`
	SalePrice   *int64  `json:"sale_price" validate:"omitempty,gte=0"`
	Unit        *string `json:"unit" validate:"omitempty,min=1,max=10"`
	Active      *bool   `json:"active"`
}

// ProductResponse salida de una mercadería.
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	CategoryID     *string   `json:"category_id"`
	CategoryName   string    `json:"category_name,omitempty"`
	Description    string    `json:"description"`
	CostPrice      int64     `json:"cost_price"`
	SalePrice      int64     `json:"sale_price"`
	OnHandQuantity int64     `json:"on_hand_quantity"`
	Unit           string    `json:"unit"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateCarrierRequest entrada para crear una transportadora.
type CreateCarrierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"max=20"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email,max=320"`
	Address string `json:"address" validate:"max=500"`
	Active  *bool  `json:"active"`
}

// UpdateCarrierRequest actualización parcial de una transportadora.
type UpdateCarrierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID   *string `json:"tax_id" validate:"omitempty,max=20"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email|len=0"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Active  *bool   `json:"active"`
}

// CarrierResponse salida de una transportadora.
type CarrierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
