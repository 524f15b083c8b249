package appointments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	appointmentsdomain "law-office-go/internal/domain/appointments"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(appointmentsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, filter appointmentsdomain.ListFilter) ([]appointmentsdomain.Appointment, int64, error) {
	query := r.db.WithContext(ctx).Model(&appointmentsdomain.Appointment{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR cpf LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("appointment_date DESC, appointment_time ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []appointmentsdomain.Appointment
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*appointmentsdomain.Appointment, error) {
	var appointment appointmentsdomain.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointmentsdomain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// Create relies on the partial unique indexes over client_id and
// (client_name, cpf) to reject a second appointment for the same client, so
// concurrent inserts that both pass the count check still cannot slip through.
func (r *PostgresRepository) Create(ctx context.Context, appointment *appointmentsdomain.Appointment) error {
	err := r.db.WithContext(ctx).Create(appointment).Error
	if isUniqueViolation(err) {
		return appointmentsdomain.ErrAppointmentExists
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PostgresRepository) Update(ctx context.Context, appointment *appointmentsdomain.Appointment) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&appointmentsdomain.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"client_id":        appointment.ClientID,
			"client_name":      appointment.ClientName,
			"cpf":              appointment.CPF,
			"phone":            appointment.Phone,
			"email":            appointment.Email,
			"protocol_number":  appointment.ProtocolNumber,
			"appointment_date": appointment.AppointmentDate,
			"appointment_time": appointment.AppointmentTime,
			"appointment_type": appointment.AppointmentType,
			"location":         appointment.Location,
			"status":           appointment.Status,
			"notes":            appointment.Notes,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&appointmentsdomain.Appointment{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByClientID(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appointmentsdomain.Appointment{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountByNameAndCPF(ctx context.Context, name, cpf string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appointmentsdomain.Appointment{}).
		Where("client_name = ? AND cpf = ?", name, cpf).
		Count(&count).Error
	return count, err
}
