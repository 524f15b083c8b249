package payments

import "time"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Payment stores amounts as integer cents. ClientName is a display copy kept
// in sync with the clients table on every write; reads join the live name.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      uint      `gorm:"not null;index" json:"client_id"`
	ClientName    string    `gorm:"not null" json:"client_name"`
	PaymentDate   string    `gorm:"not null" json:"payment_date"`
	AmountCents   int64     `gorm:"not null" json:"amount_cents"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	PaymentType   string    `json:"payment_type"`
	Description   string    `json:"description"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ListFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type Input struct {
	ClientID      uint
	PaymentDate   string
	AmountCents   int64
	PaymentMethod string
	Status        string
	PaymentType   string
	Description   string
	ReceiptNumber string
}
