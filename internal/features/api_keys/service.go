package api_keys

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ApiKeyService struct {
	apiKeyRepository ApiKeyRepository
	keyGenerator     *KeyGenerator
	logger           *slog.Logger

	singleflight singleflight.Group // Collapses concurrent lookups for the same key
}

func NewApiKeyService(
	apiKeyRepository ApiKeyRepository,
	keyGenerator *KeyGenerator,
	logger *slog.Logger,
) *ApiKeyService {
	return &ApiKeyService{
		apiKeyRepository: apiKeyRepository,
		keyGenerator:     keyGenerator,
		logger:           logger,
	}
}

func (s *ApiKeyService) CreateApiKey(request *CreateApiKeyRequestDTO) (*CreateApiKeyResponseDTO, error) {
	if !request.Plan.IsValid() {
		return nil, fmt.Errorf("unknown plan: %s", request.Plan)
	}

	if request.ExpiresAt != nil && !request.ExpiresAt.After(time.Now().UTC()) {
		return nil, errors.New("expiration must be in the future")
	}

	rateLimitPerMinute := request.Plan.DefaultRateLimitPerMinute()
	if request.RateLimitPerMinute != nil && *request.RateLimitPerMinute > 0 {
		rateLimitPerMinute = *request.RateLimitPerMinute
	}

	rateLimitPerDay := request.Plan.DefaultRateLimitPerDay()
	if request.RateLimitPerDay != nil && *request.RateLimitPerDay > 0 {
		rateLimitPerDay = *request.RateLimitPerDay
	}

	rawKey, err := s.keyGenerator.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	apiKey := &ApiKey{
		ID:                 uuid.New(),
		Name:               request.Name,
		KeyHash:            s.keyGenerator.HashToken(rawKey),
		OwnerID:            request.OwnerID,
		Plan:               request.Plan,
		RateLimitPerMinute: rateLimitPerMinute,
		RateLimitPerDay:    rateLimitPerDay,
		IsActive:           true,
		ExpiresAt:          request.ExpiresAt,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.apiKeyRepository.Create(apiKey); err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	return &CreateApiKeyResponseDTO{
		ApiKey: apiKey,
		RawKey: rawKey,
	}, nil
}

func (s *ApiKeyService) GetApiKeys(request *GetApiKeysRequestDTO) (*GetApiKeysResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := request.Offset
	if offset < 0 {
		offset = 0
	}

	apiKeys, total, err := s.apiKeyRepository.List(request.OwnerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}

	if apiKeys == nil {
		apiKeys = []*ApiKey{}
	}

	return &GetApiKeysResponseDTO{
		ApiKeys: apiKeys,
		Total:   total,
	}, nil
}

func (s *ApiKeyService) GetApiKeyByID(apiKeyID uuid.UUID) (*ApiKey, error) {
	apiKey, err := s.apiKeyRepository.GetByID(apiKeyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}

	return apiKey, nil
}

func (s *ApiKeyService) RevokeApiKey(apiKeyID uuid.UUID) error {
	apiKey, err := s.GetApiKeyByID(apiKeyID)
	if err != nil {
		return err
	}

	apiKey.Revoke()

	if err := s.apiKeyRepository.Update(apiKey); err != nil {
		return fmt.Errorf("failed to revoke API key: %w", err)
	}

	return nil
}

// RotateApiKey revokes the old key and mints a replacement carrying the
// same name, owner, plan, limits and expiry. Rotating an already revoked
// key is allowed: it reissues credentials without resurrecting the old one.
func (s *ApiKeyService) RotateApiKey(apiKeyID uuid.UUID) (*CreateApiKeyResponseDTO, error) {
	oldKey, err := s.GetApiKeyByID(apiKeyID)
	if err != nil {
		return nil, err
	}

	if oldKey.RevokedAt == nil {
		oldKey.Revoke()
		if err := s.apiKeyRepository.Update(oldKey); err != nil {
			return nil, fmt.Errorf("failed to revoke API key during rotation: %w", err)
		}
	}

	rawKey, err := s.keyGenerator.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	newKey := &ApiKey{
		ID:                 uuid.New(),
		Name:               oldKey.Name,
		KeyHash:            s.keyGenerator.HashToken(rawKey),
		OwnerID:            oldKey.OwnerID,
		Plan:               oldKey.Plan,
		RateLimitPerMinute: oldKey.RateLimitPerMinute,
		RateLimitPerDay:    oldKey.RateLimitPerDay,
		IsActive:           true,
		ExpiresAt:          oldKey.ExpiresAt,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.apiKeyRepository.Create(newKey); err != nil {
		return nil, fmt.Errorf("failed to create replacement API key: %w", err)
	}

	return &CreateApiKeyResponseDTO{
		ApiKey: newKey,
		RawKey: rawKey,
	}, nil
}

// ValidateApiKey resolves a raw key to its stored record and checks it in a
// fixed order: missing, unknown, revoked, inactive, expired. Store failures
// are reported as ErrUnavailable so callers never mistake an outage for a
// bad credential.
func (s *ApiKeyService) ValidateApiKey(rawKey string) (*ApiKey, error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return nil, ErrMissingKey
	}

	keyHash := s.keyGenerator.HashToken(rawKey)

	result, err, _ := s.singleflight.Do(keyHash, func() (any, error) {
		return s.apiKeyRepository.GetByKeyHash(keyHash)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidKey
		}

		s.logger.Error("failed to look up API key", "error", err)

		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	apiKey, ok := result.(*ApiKey)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected lookup result", ErrUnavailable)
	}

	if apiKey.RevokedAt != nil {
		return nil, ErrKeyRevoked
	}

	if !apiKey.IsActive {
		return nil, ErrKeyInactive
	}

	if apiKey.IsExpired() {
		return nil, ErrKeyExpired
	}

	return apiKey, nil
}

// SeedDemoKeys mints one key per plan when the table is empty. Raw keys
// are logged once so a fresh deployment can be exercised immediately.
func (s *ApiKeyService) SeedDemoKeys() error {
	total, err := s.apiKeyRepository.CountAll()
	if err != nil {
		return fmt.Errorf("failed to count API keys: %w", err)
	}

	if total > 0 {
		return nil
	}

	for _, plan := range []ApiKeyPlan{ApiKeyPlanFree, ApiKeyPlanPro, ApiKeyPlanEnterprise} {
		response, err := s.CreateApiKey(&CreateApiKeyRequestDTO{
			Name:    fmt.Sprintf("Demo %s key", strings.ToLower(string(plan))),
			OwnerID: "demo",
			Plan:    plan,
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s key: %w", plan, err)
		}

		s.logger.Info("seeded demo API key", "plan", plan, "rawKey", response.RawKey)
	}

	return nil
}
