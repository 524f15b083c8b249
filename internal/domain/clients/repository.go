package clients

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, filter ListFilter) ([]Client, int64, error)
	GetByID(ctx context.Context, id uint) (*Client, error)
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByCPF(ctx context.Context, cpf string, excludeID uint) (int64, error)
	CountProcesses(ctx context.Context, clientID uint) (int64, error)
}
