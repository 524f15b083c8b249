package clients

import (
	"context"
	"fmt"
	"strings"

	"law-office-go/pkg/logger"
)

// ProtocolScheduler creates the INSS appointment a filed protocol implies.
// Implemented by the appointments service.
type ProtocolScheduler interface {
	EnsureProtocolAppointment(ctx context.Context, clientID uint, name, cpf, phone, email, protocol string) error
}

type Service struct {
	repo      Repository
	scheduler ProtocolScheduler
	log       logger.Logger
}

func NewService(repo Repository, scheduler ProtocolScheduler, log logger.Logger) *Service {
	return &Service{repo: repo, scheduler: scheduler, log: log}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Client, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	client := fromInput(input)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if client.CPF != "" {
			count, err := tx.CountByCPF(ctx, client.CPF, 0)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrCPFTaken
			}
		}
		return tx.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}

	s.scheduleAppointment(ctx, client)
	return client, nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	client := fromInput(input)
	client.ID = id

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if client.CPF != "" {
			count, err := tx.CountByCPF(ctx, client.CPF, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrCPFTaken
			}
		}

		updated, err := tx.Update(ctx, client)
		if err != nil {
			return err
		}
		if !updated {
			return ErrClientNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.scheduleAppointment(ctx, stored)
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := tx.CountProcesses(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrClientHasChildren
		}

		deleted, err := tx.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrClientNotFound
		}
		return nil
	})
}

// scheduleAppointment is best-effort: a failure is logged and never fails the
// parent client write.
func (s *Service) scheduleAppointment(ctx context.Context, client *Client) {
	if s.scheduler == nil || strings.TrimSpace(client.ProtocolNumber) == "" {
		return
	}

	err := s.scheduler.EnsureProtocolAppointment(ctx, client.ID, client.Name, client.CPF, client.Phone, client.Email, client.ProtocolNumber)
	if err != nil {
		s.log.BusinessError("clients: auto INSS appointment failed", err, "client_id", client.ID)
	}
}

func fromInput(input Input) *Client {
	return &Client{
		Name:               strings.TrimSpace(input.Name),
		CPF:                strings.TrimSpace(input.CPF),
		RG:                 input.RG,
		Phone:              input.Phone,
		Email:              input.Email,
		Address:            input.Address,
		City:               input.City,
		State:              input.State,
		CEP:                input.CEP,
		BirthDate:          input.BirthDate,
		ProcessType:        input.ProcessType,
		ProcessNumber:      strings.TrimSpace(input.ProcessNumber),
		ProtocolNumber:     strings.TrimSpace(input.ProtocolNumber),
		INSSPassword:       input.INSSPassword,
		LawyerName:         input.LawyerName,
		Indication:         input.Indication,
		RegistrationDate:   input.RegistrationDate,
		ContractValueCents: input.ContractValueCents,
		PhotoURL:           input.PhotoURL,
	}
}
