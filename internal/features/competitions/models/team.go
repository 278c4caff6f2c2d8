package competitions_models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string     `gorm:"not null"             json:"name"`
	Code            string     `gorm:"index"                json:"code"`
	LogoURL         string     `json:"logoUrl"`
	CurrentLeagueID *uuid.UUID `gorm:"type:uuid;index"      json:"currentLeagueId"`
	CreatedAt       time.Time  `gorm:"not null"             json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"not null"             json:"updatedAt"`
}

func (Team) TableName() string {
	return "teams"
}

type Player struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"not null"             json:"name"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Nationality string     `gorm:"index"                json:"nationality"`
	Position    string     `gorm:"index"                json:"position"`
	HeightCm    *int       `json:"heightCm"`
	WeightKg    *int       `json:"weightKg"`
	TeamID      *uuid.UUID `gorm:"type:uuid;index"      json:"teamId"`
	CreatedAt   time.Time  `gorm:"not null"             json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null"             json:"updatedAt"`
}

func (Player) TableName() string {
	return "players"
}
