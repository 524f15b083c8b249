package appointments

import "time"

const (
	StatusScheduled = "scheduled"

	TypeINSS = "INSS"
)

// Appointment is an INSS queue entry. ClientID links the appointment to the
// client record when known; rows entered by hand may carry only a name and
// CPF.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClientID        *uint     `gorm:"index" json:"client_id"`
	ClientName      string    `gorm:"not null" json:"client_name"`
	CPF             string    `json:"cpf"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ProtocolNumber  string    `json:"protocol_number"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	AppointmentType string    `json:"appointment_type"`
	Location        string    `json:"location"`
	Status          string    `gorm:"not null;default:scheduled" json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "inss_appointments"
}

type ListFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type Input struct {
	ClientID        *uint
	ClientName      string
	CPF             string
	Phone           string
	Email           string
	ProtocolNumber  string
	AppointmentDate string
	AppointmentTime string
	AppointmentType string
	Location        string
	Status          string
	Notes           string
}
