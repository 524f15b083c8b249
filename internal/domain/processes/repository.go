package processes

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, filter ListFilter) ([]ProcessWithClient, int64, error)
	GetByID(ctx context.Context, id uint) (*ProcessWithClient, error)
	Create(ctx context.Context, process *Process) error
	Update(ctx context.Context, process *Process) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByNumber(ctx context.Context, number string, excludeID uint) (int64, error)
	CountHearings(ctx context.Context, processID uint) (int64, error)
	ClientExists(ctx context.Context, clientID uint) (bool, error)
}
