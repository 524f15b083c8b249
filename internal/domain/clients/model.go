package clients

import "time"

type Client struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	CPF                string    `json:"cpf"`
	RG                 string    `json:"rg"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	CEP                string    `json:"cep"`
	BirthDate          string    `json:"birth_date"`
	ProcessType        string    `json:"process_type"`
	ProcessNumber      string    `json:"process_number"`
	ProtocolNumber     string    `json:"protocol_number"`
	INSSPassword       string    `json:"inss_password"`
	LawyerName         string    `json:"lawyer_name"`
	Indication         string    `json:"indication"`
	RegistrationDate   string    `json:"registration_date"`
	ContractValueCents *int64    `json:"contract_value_cents"`
	PhotoURL           string    `json:"photo_url"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

type Input struct {
	Name               string
	CPF                string
	RG                 string
	Phone              string
	Email              string
	Address            string
	City               string
	State              string
	CEP                string
	BirthDate          string
	ProcessType        string
	ProcessNumber      string
	ProtocolNumber     string
	INSSPassword       string
	LawyerName         string
	Indication         string
	RegistrationDate   string
	ContractValueCents *int64
	PhotoURL           string
}
