package api_keys

import (
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryApiKeyRepository is an in-memory ApiKeyRepository for tests. Set
// Err to simulate a failing key store.
type MemoryApiKeyRepository struct {
	mu   sync.Mutex
	keys map[uuid.UUID]*ApiKey
	Err  error
}

func NewMemoryApiKeyRepository() *MemoryApiKeyRepository {
	return &MemoryApiKeyRepository{keys: make(map[uuid.UUID]*ApiKey)}
}

func (r *MemoryApiKeyRepository) Create(apiKey *ApiKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	copied := *apiKey
	r.keys[apiKey.ID] = &copied

	return nil
}

func (r *MemoryApiKeyRepository) Update(apiKey *ApiKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	if _, exists := r.keys[apiKey.ID]; !exists {
		return gorm.ErrRecordNotFound
	}

	copied := *apiKey
	r.keys[apiKey.ID] = &copied

	return nil
}

func (r *MemoryApiKeyRepository) GetByID(id uuid.UUID) (*ApiKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	apiKey, exists := r.keys[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *apiKey

	return &copied, nil
}

func (r *MemoryApiKeyRepository) GetByKeyHash(keyHash string) (*ApiKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	for _, apiKey := range r.keys {
		if apiKey.KeyHash == keyHash {
			copied := *apiKey
			return &copied, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryApiKeyRepository) List(ownerID string, limit int, offset int) ([]*ApiKey, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, 0, r.Err
	}

	var matched []*ApiKey
	for _, apiKey := range r.keys {
		if ownerID == "" || apiKey.OwnerID == ownerID {
			copied := *apiKey
			matched = append(matched, &copied)
		}
	}

	total := int64(len(matched))

	if offset >= len(matched) {
		return []*ApiKey{}, total, nil
	}

	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (r *MemoryApiKeyRepository) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}

	return int64(len(r.keys)), nil
}

// MemoryUsageLogRepository records usage entries in memory for tests.
type MemoryUsageLogRepository struct {
	mu      sync.Mutex
	Entries []*ApiUsageLog
	Err     error
}

func NewMemoryUsageLogRepository() *MemoryUsageLogRepository {
	return &MemoryUsageLogRepository{}
}

func (r *MemoryUsageLogRepository) Create(entry *ApiUsageLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	copied := *entry
	r.Entries = append(r.Entries, &copied)

	return nil
}

func (r *MemoryUsageLogRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Entries)
}
