package payments

import (
	"context"
	"errors"

	paymentsdomain "law-office-go/internal/domain/payments"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List joins the live client name so a renamed client shows up correctly on
// every payment, not just the ones written after the rename.
func (r *PostgresRepository) List(ctx context.Context, filter paymentsdomain.ListFilter) ([]paymentsdomain.Payment, int64, error) {
	query := r.db.WithContext(ctx).
		Table("payments").
		Joins("JOIN clients ON clients.id = payments.client_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("clients.name LIKE ? OR payments.description LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("payments.status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Select("payments.*, clients.name AS client_name").
		Order("payments.payment_date DESC, payments.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []paymentsdomain.Payment
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*paymentsdomain.Payment, error) {
	var payment paymentsdomain.Payment
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = payments.client_id").
		Where("payments.id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentsdomain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) Create(ctx context.Context, payment *paymentsdomain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PostgresRepository) Update(ctx context.Context, payment *paymentsdomain.Payment) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&paymentsdomain.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"client_id":      payment.ClientID,
			"client_name":    payment.ClientName,
			"payment_date":   payment.PaymentDate,
			"amount_cents":   payment.AmountCents,
			"payment_method": payment.PaymentMethod,
			"status":         payment.Status,
			"payment_type":   payment.PaymentType,
			"description":    payment.Description,
			"receipt_number": payment.ReceiptNumber,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&paymentsdomain.Payment{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ClientName(ctx context.Context, clientID uint) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("clients").
		Select("name").
		Where("id = ?", clientID).
		Scan(&name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", paymentsdomain.ErrClientNotFound
	}
	return name, nil
}
