package payments

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Payment, int64, error)
	GetByID(ctx context.Context, id uint) (*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ClientName(ctx context.Context, clientID uint) (string, error)
}
