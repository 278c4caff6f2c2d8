package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"          json:"id"`
	Name               string     `gorm:"not null"                      json:"name"`
	KeyHash            string     `gorm:"uniqueIndex;not null"          json:"-"`
	OwnerID            string     `gorm:"index;not null"                json:"ownerId"`
	Plan               ApiKeyPlan `gorm:"not null"                      json:"plan"`
	RateLimitPerMinute int        `gorm:"not null"                      json:"rateLimitPerMinute"`
	RateLimitPerDay    int        `gorm:"not null"                      json:"rateLimitPerDay"`
	IsActive           bool       `gorm:"not null;default:true"         json:"isActive"`
	ExpiresAt          *time.Time `json:"expiresAt"`
	RevokedAt          *time.Time `json:"revokedAt"`
	LastUsedAt         *time.Time `json:"lastUsedAt"`
	CreatedAt          time.Time  `gorm:"not null"                      json:"createdAt"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}

func (k *ApiKey) Revoke() {
	now := time.Now().UTC()
	k.RevokedAt = &now
	k.IsActive = false
}

func (k *ApiKey) TouchLastUsed() {
	now := time.Now().UTC()
	k.LastUsedAt = &now
}

func (k *ApiKey) IsExpired() bool {
	return k.ExpiresAt != nil && time.Now().UTC().After(*k.ExpiresAt)
}

type ApiUsageLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApiKeyID   uuid.UUID `gorm:"type:uuid;index;not null" json:"apiKeyId"`
	Endpoint   string    `gorm:"not null"             json:"endpoint"`
	Method     string    `gorm:"not null"             json:"method"`
	StatusCode int       `gorm:"not null"             json:"statusCode"`
	DurationMs int64     `gorm:"not null"             json:"durationMs"`
	CreatedAt  time.Time `gorm:"index;not null"       json:"createdAt"`
}

func (ApiUsageLog) TableName() string {
	return "api_usage_logs"
}
