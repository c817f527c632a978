package models

import "time"

// PaymentStatus tracks a payment request through review
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment represents a payment-based role upgrade request, reviewed by a
// superadmin. Approval changes the user's role.
type Payment struct {
	ID            string        `json:"id" bson:"_id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	Amount        int64         `json:"amount" bson:"amount"` // in cents
	Currency      string        `json:"currency" bson:"currency"`
	Reference     string        `json:"reference" bson:"reference"` // external receipt/transfer reference
	RequestedRole Role          `json:"requested_role" bson:"requested_role"`
	Status        PaymentStatus `json:"status" bson:"status"`
	ReviewedBy    string        `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}

// IsPending returns true while the payment awaits review
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}
