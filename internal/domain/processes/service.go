package processes

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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]ProcessWithClient, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*ProcessWithClient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*ProcessWithClient, error) {
	process, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	if process.ClientID == 0 {
		return nil, fmt.Errorf("client_id is required")
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.ClientExists(ctx, process.ClientID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrClientNotFound
		}

		if process.ProcessNumber != "" {
			count, err := tx.CountByNumber(ctx, process.ProcessNumber, 0)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrProcessNumberTaken
			}
		}
		return tx.Create(ctx, process)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, process.ID)
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*ProcessWithClient, error) {
	process, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	process.ID = id

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if process.ProcessNumber != "" {
			count, err := tx.CountByNumber(ctx, process.ProcessNumber, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrProcessNumberTaken
			}
		}

		updated, err := tx.Update(ctx, process)
		if err != nil {
			return err
		}
		if !updated {
			return ErrProcessNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := tx.CountHearings(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrProcessHasHearings
		}

		deleted, err := tx.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrProcessNotFound
		}
		return nil
	})
}

// fromInput validates the fields shared by create and update; client_id is
// fixed at creation and never reassigned on update.
func fromInput(input Input) (*Process, error) {
	if strings.TrimSpace(input.ProcessType) == "" {
		return nil, fmt.Errorf("process_type is required")
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = StatusInProgress
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	return &Process{
		ClientID:      input.ClientID,
		ProcessNumber: strings.TrimSpace(input.ProcessNumber),
		ProcessType:   strings.TrimSpace(input.ProcessType),
		Status:        status,
		Description:   input.Description,
		InitialDate:   input.InitialDate,
		FinalDate:     input.FinalDate,
		ValueCents:    input.ValueCents,
		Observations:  input.Observations,
	}, nil
}
