package hearings

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]HearingWithProcess, int64, error)
	GetByID(ctx context.Context, id uint) (*HearingWithProcess, error)
	Create(ctx context.Context, hearing *Hearing) error
	Update(ctx context.Context, hearing *Hearing) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ProcessExists(ctx context.Context, processID uint) (bool, error)
}
