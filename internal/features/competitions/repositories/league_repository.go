package competitions_repositories

import (
	competitions_models "sportsdata/internal/features/competitions/models"
	"sportsdata/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeagueRepository interface {
	Create(league *competitions_models.League) error
	Update(league *competitions_models.League) error
	Delete(leagueID uuid.UUID) error
	GetByID(leagueID uuid.UUID) (*competitions_models.League, error)
	List(country string, limit int, offset int) ([]*competitions_models.League, int64, error)

	CreateSeason(season *competitions_models.Season) error
	GetSeasonByID(seasonID uuid.UUID) (*competitions_models.Season, error)
	GetSeasonsByLeagueID(leagueID uuid.UUID) ([]*competitions_models.Season, error)
	ClearCurrentSeason(leagueID uuid.UUID) error
}

type gormLeagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository() LeagueRepository {
	return &gormLeagueRepository{db: storage.GetDb()}
}

func (r *gormLeagueRepository) Create(league *competitions_models.League) error {
	return r.db.Create(league).Error
}

func (r *gormLeagueRepository) Update(league *competitions_models.League) error {
	return r.db.Save(league).Error
}

func (r *gormLeagueRepository) Delete(leagueID uuid.UUID) error {
	return r.db.Where("id = ?", leagueID).Delete(&competitions_models.League{}).Error
}

func (r *gormLeagueRepository) GetByID(leagueID uuid.UUID) (*competitions_models.League, error) {
	var league competitions_models.League
	if err := r.db.Where("id = ?", leagueID).First(&league).Error; err != nil {
		return nil, err
	}

	return &league, nil
}

func (r *gormLeagueRepository) List(
	country string,
	limit int,
	offset int,
) ([]*competitions_models.League, int64, error) {
	query := r.db.Model(&competitions_models.League{})
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leagues []*competitions_models.League
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&leagues).Error; err != nil {
		return nil, 0, err
	}

	return leagues, total, nil
}

func (r *gormLeagueRepository) CreateSeason(season *competitions_models.Season) error {
	return r.db.Create(season).Error
}

func (r *gormLeagueRepository) GetSeasonByID(seasonID uuid.UUID) (*competitions_models.Season, error) {
	var season competitions_models.Season
	if err := r.db.Where("id = ?", seasonID).First(&season).Error; err != nil {
		return nil, err
	}

	return &season, nil
}

func (r *gormLeagueRepository) GetSeasonsByLeagueID(leagueID uuid.UUID) ([]*competitions_models.Season, error) {
	var seasons []*competitions_models.Season
	if err := r.db.Where("league_id = ?", leagueID).Order("year DESC").Find(&seasons).Error; err != nil {
		return nil, err
	}

	return seasons, nil
}

func (r *gormLeagueRepository) ClearCurrentSeason(leagueID uuid.UUID) error {
	return r.db.Model(&competitions_models.Season{}).
		Where("league_id = ? AND is_current = ?", leagueID, true).
		Update("is_current", false).Error
}
