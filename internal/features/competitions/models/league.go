package competitions_models

import (
	"time"

	"github.com/google/uuid"
)

type League struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null"             json:"name"`
	Country   string    `gorm:"index;not null"       json:"country"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `gorm:"not null"             json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null"             json:"updatedAt"`
}

func (League) TableName() string {
	return "leagues"
}

type Season struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	LeagueID  uuid.UUID `gorm:"type:uuid;index;not null" json:"leagueId"`
	Year      int       `gorm:"not null"                 json:"year"`
	IsCurrent bool      `gorm:"not null;default:false"   json:"isCurrent"`
	CreatedAt time.Time `gorm:"not null"                 json:"createdAt"`
}

func (Season) TableName() string {
	return "seasons"
}
