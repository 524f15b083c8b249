package stats

import (
	"context"

	statsdomain "law-office-go/internal/domain/stats"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountClients(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "clients")
}

func (r *PostgresRepository) CountProcesses(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "processes")
}

func (r *PostgresRepository) CountHearings(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "hearings")
}

func (r *PostgresRepository) ProcessesByStatus(ctx context.Context) ([]statsdomain.StatusCount, error) {
	return r.groupByStatus(ctx, "processes")
}

func (r *PostgresRepository) HearingsByStatus(ctx context.Context) ([]statsdomain.StatusCount, error) {
	return r.groupByStatus(ctx, "hearings")
}

func (r *PostgresRepository) countTable(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) groupByStatus(ctx context.Context, table string) ([]statsdomain.StatusCount, error) {
	var rows []statsdomain.StatusCount
	err := r.db.WithContext(ctx).
		Table(table).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []statsdomain.StatusCount{}
	}
	return rows, nil
}
