package clients

import (
	"context"
	"errors"

	clientsdomain "law-office-go/internal/domain/clients"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(clientsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, filter clientsdomain.ListFilter) ([]clientsdomain.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&clientsdomain.Client{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR cpf LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("name asc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []clientsdomain.Client
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*clientsdomain.Client, error) {
	var client clientsdomain.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientsdomain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *PostgresRepository) Create(ctx context.Context, client *clientsdomain.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *PostgresRepository) Update(ctx context.Context, client *clientsdomain.Client) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&clientsdomain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":                 client.Name,
			"cpf":                  client.CPF,
			"rg":                   client.RG,
			"phone":                client.Phone,
			"email":                client.Email,
			"address":              client.Address,
			"city":                 client.City,
			"state":                client.State,
			"cep":                  client.CEP,
			"birth_date":           client.BirthDate,
			"process_type":         client.ProcessType,
			"process_number":       client.ProcessNumber,
			"protocol_number":      client.ProtocolNumber,
			"inss_password":        client.INSSPassword,
			"lawyer_name":          client.LawyerName,
			"indication":           client.Indication,
			"registration_date":    client.RegistrationDate,
			"contract_value_cents": client.ContractValueCents,
			"photo_url":            client.PhotoURL,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clientsdomain.Client{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByCPF(ctx context.Context, cpf string, excludeID uint) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&clientsdomain.Client{}).
		Where("cpf = ?", cpf)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountProcesses(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("processes").
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}
