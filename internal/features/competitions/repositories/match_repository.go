package competitions_repositories

import (
	"time"

	competitions_models "sportsdata/internal/features/competitions/models"
	"sportsdata/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchFilter struct {
	SeasonID *uuid.UUID
	TeamID   *uuid.UUID
	Status   competitions_models.MatchStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

type MatchRepository interface {
	Create(match *competitions_models.Match) error
	Update(match *competitions_models.Match) error
	Delete(matchID uuid.UUID) error
	GetByID(matchID uuid.UUID) (*competitions_models.Match, error)
	List(filter MatchFilter, limit int, offset int) ([]*competitions_models.Match, int64, error)
}

type gormMatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository() MatchRepository {
	return &gormMatchRepository{db: storage.GetDb()}
}

func (r *gormMatchRepository) Create(match *competitions_models.Match) error {
	return r.db.Create(match).Error
}

func (r *gormMatchRepository) Update(match *competitions_models.Match) error {
	return r.db.Save(match).Error
}

func (r *gormMatchRepository) Delete(matchID uuid.UUID) error {
	return r.db.Where("id = ?", matchID).Delete(&competitions_models.Match{}).Error
}

func (r *gormMatchRepository) GetByID(matchID uuid.UUID) (*competitions_models.Match, error) {
	var match competitions_models.Match
	if err := r.db.Where("id = ?", matchID).First(&match).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

func (r *gormMatchRepository) List(
	filter MatchFilter,
	limit int,
	offset int,
) ([]*competitions_models.Match, int64, error) {
	query := r.db.Model(&competitions_models.Match{})
	if filter.SeasonID != nil {
		query = query.Where("season_id = ?", *filter.SeasonID)
	}
	if filter.TeamID != nil {
		query = query.Where("home_team_id = ? OR away_team_id = ?", *filter.TeamID, *filter.TeamID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("match_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("match_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []*competitions_models.Match
	if err := query.Order("match_date ASC").Limit(limit).Offset(offset).Find(&matches).Error; err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}
