package payments

import (
	"context"
	"errors"
	"testing"
)

type fakePaymentRepo struct {
	payments map[uint]*Payment
	clients  map[uint]string
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uint]*Payment),
		clients:  make(map[uint]string),
		nextID:   1,
	}
}

func (r *fakePaymentRepo) List(ctx context.Context, filter ListFilter) ([]Payment, int64, error) {
	result := make([]Payment, 0)
	for _, payment := range r.payments {
		if filter.Status != "" && payment.Status != filter.Status {
			continue
		}
		result = append(result, *payment)
	}
	return result, int64(len(result)), nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uint) (*Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	copied := *payment
	return &copied, nil
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *Payment) error {
	payment.ID = r.nextID
	r.nextID++
	stored := *payment
	r.payments[payment.ID] = &stored
	return nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *Payment) (bool, error) {
	if _, ok := r.payments[payment.ID]; !ok {
		return false, nil
	}
	stored := *payment
	r.payments[payment.ID] = &stored
	return true, nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.payments[id]; !ok {
		return false, nil
	}
	delete(r.payments, id)
	return true, nil
}

func (r *fakePaymentRepo) ClientName(ctx context.Context, clientID uint) (string, error) {
	name, ok := r.clients[clientID]
	if !ok {
		return "", ErrClientNotFound
	}
	return name, nil
}

func TestCreatePaymentSuccess(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.clients[3] = "Maria Silva"

	svc := NewService(repo)
	created, err := svc.Create(context.Background(), Input{ClientID: 3, PaymentDate: "2026-08-01", AmountCents: 150_00})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ClientName != "Maria Silva" {
		t.Fatalf("expected name from clients table, got %q", created.ClientName)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected default status, got %q", created.Status)
	}
	if created.AmountCents != 150_00 {
		t.Fatalf("expected amount kept in cents, got %d", created.AmountCents)
	}
}

func TestCreatePaymentClientMissing(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{ClientID: 99, PaymentDate: "2026-08-01", AmountCents: 100})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.clients[3] = "Maria"
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Input{ClientID: 3, PaymentDate: "2026-08-01", AmountCents: 0}); err == nil {
		t.Fatalf("expected an error for zero amount")
	}
	if _, err := svc.Create(context.Background(), Input{ClientID: 3, PaymentDate: "2026-08-01", AmountCents: -100}); err == nil {
		t.Fatalf("expected an error for negative amount")
	}
}

func TestUpdatePaymentRefreshesClientName(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.clients[3] = "Maria Remarried"
	repo.payments[1] = &Payment{ID: 1, ClientID: 3, ClientName: "Maria Silva", PaymentDate: "2026-08-01", AmountCents: 100, Status: StatusPending}

	svc := NewService(repo)
	updated, err := svc.Update(context.Background(), 1, Input{ClientID: 3, PaymentDate: "2026-08-01", AmountCents: 100, Status: StatusPaid})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ClientName != "Maria Remarried" {
		t.Fatalf("expected refreshed client name, got %q", updated.ClientName)
	}
	if updated.Status != StatusPaid {
		t.Fatalf("expected status updated, got %q", updated.Status)
	}
}

func TestUpdatePaymentNotFound(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.clients[3] = "Maria"
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 42, Input{ClientID: 3, PaymentDate: "2026-08-01", AmountCents: 100})
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestDeletePaymentNotFound(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
