package entity

import "time"

// Etapas del embudo de ventas.
const (
	OpportunityProspecting   = "prospecting"
	OpportunityQualification = "qualification"
	OpportunityProposal      = "proposal"
	OpportunityNegotiation   = "negotiation"
	OpportunityWon           = "won"
	OpportunityLost          = "lost"
)

// Opportunity oportunidad comercial asociada a un cliente.
type Opportunity struct {
	ID              string     `db:"id"`
	CustomerID      string     `db:"customer_id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	EstimatedValue  int64      `db:"estimated_value"` // centavos
	Status          string     `db:"status"`
	Probability     int        `db:"probability"` // 0..100
	ExpectedCloseAt *time.Time `db:"expected_close_at"`
	ClosedAt        *time.Time `db:"closed_at"`
	UserID          string     `db:"user_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// IsClosed indica si la oportunidad terminó (ganada o perdida).
func (o *Opportunity) IsClosed() bool {
	return o.Status == OpportunityWon || o.Status == OpportunityLost
}

// OpportunityView oportunidad con cliente y responsable.
type OpportunityView struct {
	Opportunity
	CustomerRef
	UserName string `db:"user_name"`
}
