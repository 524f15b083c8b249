package hearings

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]HearingWithProcess, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*HearingWithProcess, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*HearingWithProcess, error) {
	hearing, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	if hearing.ProcessID == 0 {
		return nil, fmt.Errorf("process_id is required")
	}

	exists, err := s.repo.ProcessExists(ctx, hearing.ProcessID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProcessNotFound
	}

	if err := s.repo.Create(ctx, hearing); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, hearing.ID)
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*HearingWithProcess, error) {
	hearing, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	hearing.ID = id

	updated, err := s.repo.Update(ctx, hearing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrHearingNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHearingNotFound
	}
	return nil
}

func fromInput(input Input) (*Hearing, error) {
	if strings.TrimSpace(input.Date) == "" {
		return nil, fmt.Errorf("date is required")
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = StatusScheduled
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	return &Hearing{
		ProcessID:    input.ProcessID,
		Date:         strings.TrimSpace(input.Date),
		Time:         input.Time,
		Location:     input.Location,
		Type:         input.Type,
		Status:       status,
		Observations: input.Observations,
	}, nil
}
