package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Appointment, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Create enforces the one-appointment-per-client rule inside a transaction:
// matched by client_id when the caller links one, otherwise by the
// (client_name, cpf) pair.
func (s *Service) Create(ctx context.Context, input Input) (*Appointment, error) {
	appointment, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := countExisting(ctx, tx, appointment)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAppointmentExists
		}
		return tx.Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*Appointment, error) {
	appointment, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	appointment.ID = id

	updated, err := s.repo.Update(ctx, appointment)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAppointmentNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	return nil
}

// EnsureProtocolAppointment backs the auto-appointment rule: when a client
// gains a protocol number, synthesize a scheduled INSS appointment unless the
// client already has one. Callers treat failures as non-fatal.
func (s *Service) EnsureProtocolAppointment(ctx context.Context, clientID uint, name, cpf, phone, email, protocol string) error {
	appointment := &Appointment{
		ClientID:        &clientID,
		ClientName:      name,
		CPF:             strings.TrimSpace(cpf),
		Phone:           phone,
		Email:           email,
		ProtocolNumber:  strings.TrimSpace(protocol),
		AppointmentType: TypeINSS,
		Status:          StatusScheduled,
		Notes:           fmt.Sprintf("Protocol: %s - created automatically", strings.TrimSpace(protocol)),
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := countExisting(ctx, tx, appointment)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(ctx, appointment)
	})
	// A concurrent writer may beat the count check; the unique index then
	// rejects the insert, which is the outcome we wanted anyway.
	if errors.Is(err, ErrAppointmentExists) {
		return nil
	}
	return err
}

func countExisting(ctx context.Context, repo Repository, appointment *Appointment) (int64, error) {
	if appointment.ClientID != nil {
		return repo.CountByClientID(ctx, *appointment.ClientID)
	}
	return repo.CountByNameAndCPF(ctx, appointment.ClientName, appointment.CPF)
}

func fromInput(input Input) (*Appointment, error) {
	name := strings.TrimSpace(input.ClientName)
	if name == "" {
		return nil, fmt.Errorf("client_name is required")
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = StatusScheduled
	}

	return &Appointment{
		ClientID:        input.ClientID,
		ClientName:      name,
		CPF:             strings.TrimSpace(input.CPF),
		Phone:           input.Phone,
		Email:           input.Email,
		ProtocolNumber:  strings.TrimSpace(input.ProtocolNumber),
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		AppointmentType: input.AppointmentType,
		Location:        input.Location,
		Status:          status,
		Notes:           input.Notes,
	}, nil
}
