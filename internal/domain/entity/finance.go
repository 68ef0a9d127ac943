package entity

import "time"

// Tipos de cuenta del plan de cuentas.
const (
	AccountRevenue = "revenue"
	AccountExpense = "expense"
)

// Estados de cuentas por pagar y por cobrar. StatusOpen es el único que cuenta como vencido.
const (
	StatusOpen      = "open"
	StatusPaid      = "paid"
	StatusReceived  = "received"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

// Account entrada del plan de cuentas.
type Account struct {
	ID        string    `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	Kind      string    `db:"kind"`
	ParentID  *string   `db:"parent_id"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Payable cuenta por pagar.
type Payable struct {
	ID           string     `db:"id"`
	Description  string     `db:"description"`
	Amount       int64      `db:"amount"` // centavos
	DueDate      time.Time  `db:"due_date"`
	PaidAt       *time.Time `db:"paid_at"`
	Status       string     `db:"status"`
	SupplierName string     `db:"supplier_name"`
	AccountID    *string    `db:"account_id"`
	Note         string     `db:"note"`
	UserID       string     `db:"user_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// PayableView cuenta por pagar con plan de cuentas y usuario.
type PayableView struct {
	Payable
	AccountName string `db:"account_name"`
	UserName    string `db:"user_name"`
}

// Receivable cuenta por cobrar.
type Receivable struct {
	ID          string     `db:"id"`
	Description string     `db:"description"`
	Amount      int64      `db:"amount"` // centavos
	DueDate     time.Time  `db:"due_date"`
	ReceivedAt  *time.Time `db:"received_at"`
	Status      string     `db:"status"`
	CustomerID  *string    `db:"customer_id"`
	AccountID   *string    `db:"account_id"`
	Note        string     `db:"note"`
	UserID      string     `db:"user_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ReceivableView cuenta por cobrar con cliente, plan de cuentas y usuario.
type ReceivableView struct {
	Receivable
	CustomerRef
	AccountName string `db:"account_name"`
	UserName    string `db:"user_name"`
}

// IsOverdue indica si una cuenta abierta ya venció respecto de now.
func IsOverdue(status string, dueDate, now time.Time) bool {
	return status == StatusOpen && !dueDate.After(now)
}
