package processes

import "time"

const (
	StatusInProgress = "in_progress"
	StatusConcluded  = "concluded"
	StatusSuspended  = "suspended"
)

type Process struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      uint      `gorm:"not null;index" json:"client_id"`
	ProcessNumber string    `json:"process_number"`
	ProcessType   string    `gorm:"not null" json:"process_type"`
	Status        string    `gorm:"not null;default:in_progress" json:"status"`
	Description   string    `json:"description"`
	InitialDate   string    `json:"initial_date"`
	FinalDate     string    `json:"final_date"`
	ValueCents    *int64    `json:"value_cents"`
	Observations  string    `json:"observations"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProcessWithClient is a process denormalized with the joined client name for
// display.
type ProcessWithClient struct {
	Process
	ClientName string `gorm:"column:client_name" json:"client_name"`
}

type ListFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type Input struct {
	ClientID      uint
	ProcessNumber string
	ProcessType   string
	Status        string
	Description   string
	InitialDate   string
	FinalDate     string
	ValueCents    *int64
	Observations  string
}

func ValidStatus(status string) bool {
	switch status {
	case StatusInProgress, StatusConcluded, StatusSuspended:
		return true
	}
	return false
}
