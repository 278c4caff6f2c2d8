package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type CreateApiKeyRequestDTO struct {
	Name               string     `json:"name"               binding:"required,min=1,max=128"`
	OwnerID            string     `json:"ownerId"            binding:"required,min=1,max=128"`
	Plan               ApiKeyPlan `json:"plan"               binding:"required"`
	RateLimitPerMinute *int       `json:"rateLimitPerMinute"`
	RateLimitPerDay    *int       `json:"rateLimitPerDay"`
	ExpiresAt          *time.Time `json:"expiresAt"`
}

// CreateApiKeyResponseDTO carries the raw key exactly once, at mint time.
// Only the hash is persisted, so the key cannot be shown again.
type CreateApiKeyResponseDTO struct {
	ApiKey *ApiKey `json:"apiKey"`
	RawKey string  `json:"rawKey"`
}

type GetApiKeysRequestDTO struct {
	OwnerID string `form:"ownerId"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

type GetApiKeysResponseDTO struct {
	ApiKeys []*ApiKey `json:"apiKeys"`
	Total   int64     `json:"total"`
}

// ApiKeyContext is what the middleware attaches to authenticated requests:
// just enough identity and limits for downstream handlers, never the hash.
type ApiKeyContext struct {
	ApiKeyID           uuid.UUID  `json:"apiKeyId"`
	OwnerID            string     `json:"ownerId"`
	Plan               ApiKeyPlan `json:"plan"`
	RateLimitPerMinute int        `json:"rateLimitPerMinute"`
	RateLimitPerDay    int        `json:"rateLimitPerDay"`
}
