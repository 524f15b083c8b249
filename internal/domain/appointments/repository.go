package appointments

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, filter ListFilter) ([]Appointment, int64, error)
	GetByID(ctx context.Context, id uint) (*Appointment, error)
	Create(ctx context.Context, appointment *Appointment) error
	Update(ctx context.Context, appointment *Appointment) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByClientID(ctx context.Context, clientID uint) (int64, error)
	CountByNameAndCPF(ctx context.Context, name, cpf string) (int64, error)
}
