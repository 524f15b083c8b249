package stats

import "context"

type Repository interface {
	CountClients(ctx context.Context) (int64, error)
	CountProcesses(ctx context.Context) (int64, error)
	CountHearings(ctx context.Context) (int64, error)
	ProcessesByStatus(ctx context.Context) ([]StatusCount, error)
	HearingsByStatus(ctx context.Context) ([]StatusCount, error)
}
