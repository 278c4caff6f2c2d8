package competitions_repositories

import (
	competitions_models "sportsdata/internal/features/competitions/models"
	"sportsdata/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(team *competitions_models.Team) error
	Update(team *competitions_models.Team) error
	Delete(teamID uuid.UUID) error
	GetByID(teamID uuid.UUID) (*competitions_models.Team, error)
	List(leagueID *uuid.UUID, limit int, offset int) ([]*competitions_models.Team, int64, error)
}

type gormTeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository() TeamRepository {
	return &gormTeamRepository{db: storage.GetDb()}
}

func (r *gormTeamRepository) Create(team *competitions_models.Team) error {
	return r.db.Create(team).Error
}

func (r *gormTeamRepository) Update(team *competitions_models.Team) error {
	return r.db.Save(team).Error
}

func (r *gormTeamRepository) Delete(teamID uuid.UUID) error {
	return r.db.Where("id = ?", teamID).Delete(&competitions_models.Team{}).Error
}

func (r *gormTeamRepository) GetByID(teamID uuid.UUID) (*competitions_models.Team, error) {
	var team competitions_models.Team
	if err := r.db.Where("id = ?", teamID).First(&team).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *gormTeamRepository) List(
	leagueID *uuid.UUID,
	limit int,
	offset int,
) ([]*competitions_models.Team, int64, error) {
	query := r.db.Model(&competitions_models.Team{})
	if leagueID != nil {
		query = query.Where("current_league_id = ?", *leagueID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var teams []*competitions_models.Team
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}
