package api_keys

import (
	"sportsdata/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApiKeyRepository interface {
	Create(apiKey *ApiKey) error
	Update(apiKey *ApiKey) error
	GetByID(id uuid.UUID) (*ApiKey, error)
	GetByKeyHash(keyHash string) (*ApiKey, error)
	List(ownerID string, limit int, offset int) ([]*ApiKey, int64, error)
	CountAll() (int64, error)
}

type ApiUsageLogRepository interface {
	Create(entry *ApiUsageLog) error
}

type gormApiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository() ApiKeyRepository {
	return &gormApiKeyRepository{db: storage.GetDb()}
}

func (r *gormApiKeyRepository) Create(apiKey *ApiKey) error {
	return r.db.Create(apiKey).Error
}

func (r *gormApiKeyRepository) Update(apiKey *ApiKey) error {
	return r.db.Save(apiKey).Error
}

func (r *gormApiKeyRepository) GetByID(id uuid.UUID) (*ApiKey, error) {
	var apiKey ApiKey
	if err := r.db.Where("id = ?", id).First(&apiKey).Error; err != nil {
		return nil, err
	}

	return &apiKey, nil
}

func (r *gormApiKeyRepository) GetByKeyHash(keyHash string) (*ApiKey, error) {
	var apiKey ApiKey
	if err := r.db.Where("key_hash = ?", keyHash).First(&apiKey).Error; err != nil {
		return nil, err
	}

	return &apiKey, nil
}

func (r *gormApiKeyRepository) List(ownerID string, limit int, offset int) ([]*ApiKey, int64, error) {
	query := r.db.Model(&ApiKey{})
	if ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apiKeys []*ApiKey
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apiKeys).Error; err != nil {
		return nil, 0, err
	}

	return apiKeys, total, nil
}

func (r *gormApiKeyRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&ApiKey{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

type gormApiUsageLogRepository struct {
	db *gorm.DB
}

func NewApiUsageLogRepository() ApiUsageLogRepository {
	return &gormApiUsageLogRepository{db: storage.GetDb()}
}

func (r *gormApiUsageLogRepository) Create(entry *ApiUsageLog) error {
	return r.db.Create(entry).Error
}
