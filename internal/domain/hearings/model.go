package hearings

import "time"

const (
	StatusScheduled = "scheduled"
	StatusHeld      = "held"
	StatusCancelled = "cancelled"
)

type Hearing struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProcessID    uint      `gorm:"not null;index" json:"process_id"`
	Date         string    `gorm:"not null" json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Status       string    `gorm:"not null;default:scheduled" json:"status"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HearingWithProcess carries the joined process and client display fields.
type HearingWithProcess struct {
	Hearing
	ProcessNumber string `gorm:"column:process_number" json:"process_number"`
	ProcessType   string `gorm:"column:process_type" json:"process_type"`
	ClientName    string `gorm:"column:client_name" json:"client_name"`
}

type ListFilter struct {
	ProcessID uint
	Date      string
	Status    string
	Limit     int
	Offset    int
}

type Input struct {
	ProcessID    uint
	Date         string
	Time         string
	Location     string
	Type         string
	Status       string
	Observations string
}

func ValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusHeld, StatusCancelled:
		return true
	}
	return false
}
