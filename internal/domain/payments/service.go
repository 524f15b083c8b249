package payments

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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Payment, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*Payment, error) {
	payment, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	// The display name always comes from the clients table, never from the
	// request body.
	name, err := s.repo.ClientName(ctx, payment.ClientID)
	if err != nil {
		return nil, err
	}
	payment.ClientName = name

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*Payment, error) {
	payment, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	payment.ID = id

	name, err := s.repo.ClientName(ctx, payment.ClientID)
	if err != nil {
		return nil, err
	}
	payment.ClientName = name

	updated, err := s.repo.Update(ctx, payment)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPaymentNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	return nil
}

func fromInput(input Input) (*Payment, error) {
	if input.ClientID == 0 {
		return nil, fmt.Errorf("client_id is required")
	}
	if strings.TrimSpace(input.PaymentDate) == "" {
		return nil, fmt.Errorf("payment_date is required")
	}
	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("amount_cents must be positive")
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = StatusPending
	}

	return &Payment{
		ClientID:      input.ClientID,
		PaymentDate:   strings.TrimSpace(input.PaymentDate),
		AmountCents:   input.AmountCents,
		PaymentMethod: input.PaymentMethod,
		Status:        status,
		PaymentType:   input.PaymentType,
		Description:   input.Description,
		ReceiptNumber: input.ReceiptNumber,
	}, nil
}
