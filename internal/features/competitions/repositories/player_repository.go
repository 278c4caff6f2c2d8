package competitions_repositories

import (
	competitions_models "sportsdata/internal/features/competitions/models"
	"sportsdata/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerFilter struct {
	TeamID      *uuid.UUID
	Nationality string
	Position    string
}

type PlayerRepository interface {
	Create(player *competitions_models.Player) error
	Update(player *competitions_models.Player) error
	Delete(playerID uuid.UUID) error
	GetByID(playerID uuid.UUID) (*competitions_models.Player, error)
	List(filter PlayerFilter, limit int, offset int) ([]*competitions_models.Player, int64, error)
}

type gormPlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository() PlayerRepository {
	return &gormPlayerRepository{db: storage.GetDb()}
}

func (r *gormPlayerRepository) Create(player *competitions_models.Player) error {
	return r.db.Create(player).Error
}

func (r *gormPlayerRepository) Update(player *competitions_models.Player) error {
	return r.db.Save(player).Error
}

func (r *gormPlayerRepository) Delete(playerID uuid.UUID) error {
	return r.db.Where("id = ?", playerID).Delete(&competitions_models.Player{}).Error
}

func (r *gormPlayerRepository) GetByID(playerID uuid.UUID) (*competitions_models.Player, error) {
	var player competitions_models.Player
	if err := r.db.Where("id = ?", playerID).First(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

func (r *gormPlayerRepository) List(
	filter PlayerFilter,
	limit int,
	offset int,
) ([]*competitions_models.Player, int64, error) {
	query := r.db.Model(&competitions_models.Player{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Nationality != "" {
		query = query.Where("nationality = ?", filter.Nationality)
	}
	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var players []*competitions_models.Player
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&players).Error; err != nil {
		return nil, 0, err
	}

	return players, total, nil
}
