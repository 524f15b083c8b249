package processes

import (
	"context"
	"errors"

	processesdomain "law-office-go/internal/domain/processes"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(processesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, filter processesdomain.ListFilter) ([]processesdomain.ProcessWithClient, int64, error) {
	query := r.db.WithContext(ctx).
		Table("processes").
		Joins("JOIN clients ON clients.id = processes.client_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("processes.process_number LIKE ? OR processes.description LIKE ? OR clients.name LIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("processes.status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Select("processes.*, clients.name AS client_name").
		Order("processes.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []processesdomain.ProcessWithClient
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*processesdomain.ProcessWithClient, error) {
	var process processesdomain.ProcessWithClient
	err := r.db.WithContext(ctx).
		Table("processes").
		Select("processes.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = processes.client_id").
		Where("processes.id = ?", id).
		First(&process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, processesdomain.ErrProcessNotFound
		}
		return nil, err
	}
	return &process, nil
}

func (r *PostgresRepository) Create(ctx context.Context, process *processesdomain.Process) error {
	return r.db.WithContext(ctx).Create(process).Error
}

func (r *PostgresRepository) Update(ctx context.Context, process *processesdomain.Process) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&processesdomain.Process{}).
		Where("id = ?", process.ID).
		Updates(map[string]interface{}{
			"process_number": process.ProcessNumber,
			"process_type":   process.ProcessType,
			"status":         process.Status,
			"description":    process.Description,
			"initial_date":   process.InitialDate,
			"final_date":     process.FinalDate,
			"value_cents":    process.ValueCents,
			"observations":   process.Observations,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&processesdomain.Process{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByNumber(ctx context.Context, number string, excludeID uint) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&processesdomain.Process{}).
		Where("process_number = ?", number)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountHearings(ctx context.Context, processID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("hearings").
		Where("process_id = ?", processID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ClientExists(ctx context.Context, clientID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("clients").
		Where("id = ?", clientID).
		Count(&count).Error
	return count > 0, err
}
