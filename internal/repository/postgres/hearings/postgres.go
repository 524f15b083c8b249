package hearings

import (
	"context"
	"errors"

	hearingsdomain "law-office-go/internal/domain/hearings"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter hearingsdomain.ListFilter) ([]hearingsdomain.HearingWithProcess, int64, error) {
	query := r.db.WithContext(ctx).
		Table("hearings").
		Joins("JOIN processes ON processes.id = hearings.process_id").
		Joins("JOIN clients ON clients.id = processes.client_id")

	if filter.ProcessID != 0 {
		query = query.Where("hearings.process_id = ?", filter.ProcessID)
	}
	if filter.Date != "" {
		query = query.Where("hearings.date = ?", filter.Date)
	}
	if filter.Status != "" {
		query = query.Where("hearings.status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Select("hearings.*, processes.process_number, processes.process_type, clients.name AS client_name").
		Order("hearings.date ASC, hearings.time ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []hearingsdomain.HearingWithProcess
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*hearingsdomain.HearingWithProcess, error) {
	var hearing hearingsdomain.HearingWithProcess
	err := r.db.WithContext(ctx).
		Table("hearings").
		Select("hearings.*, processes.process_number, processes.process_type, clients.name AS client_name").
		Joins("JOIN processes ON processes.id = hearings.process_id").
		Joins("JOIN clients ON clients.id = processes.client_id").
		Where("hearings.id = ?", id).
		First(&hearing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hearingsdomain.ErrHearingNotFound
		}
		return nil, err
	}
	return &hearing, nil
}

func (r *PostgresRepository) Create(ctx context.Context, hearing *hearingsdomain.Hearing) error {
	return r.db.WithContext(ctx).Create(hearing).Error
}

func (r *PostgresRepository) Update(ctx context.Context, hearing *hearingsdomain.Hearing) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&hearingsdomain.Hearing{}).
		Where("id = ?", hearing.ID).
		Updates(map[string]interface{}{
			"date":         hearing.Date,
			"time":         hearing.Time,
			"location":     hearing.Location,
			"type":         hearing.Type,
			"status":       hearing.Status,
			"observations": hearing.Observations,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&hearingsdomain.Hearing{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ProcessExists(ctx context.Context, processID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("processes").
		Where("id = ?", processID).
		Count(&count).Error
	return count > 0, err
}
