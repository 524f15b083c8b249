package stats

import (
	"context"
	"time"
)

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
}

func NewService(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

// Dashboard aggregates the landing-page counters. Results are cached for a
// short TTL; staleness is acceptable here.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	totalClients, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}
	totalProcesses, err := s.repo.CountProcesses(ctx)
	if err != nil {
		return nil, err
	}
	totalHearings, err := s.repo.CountHearings(ctx)
	if err != nil {
		return nil, err
	}
	processesByStatus, err := s.repo.ProcessesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	hearingsByStatus, err := s.repo.HearingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		TotalClients:      totalClients,
		TotalProcesses:    totalProcesses,
		TotalHearings:     totalHearings,
		ProcessesByStatus: processesByStatus,
		HearingsByStatus:  hearingsByStatus,
	}

	s.cache.Set(dashboard, s.ttl)
	return dashboard, nil
}
