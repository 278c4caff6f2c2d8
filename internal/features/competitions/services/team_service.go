package competitions_services

import (
	"errors"
	"fmt"
	"time"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_repositories "sportsdata/internal/features/competitions/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamService struct {
	teamRepository competitions_repositories.TeamRepository
	leagueService  *LeagueService
}

func NewTeamService(
	teamRepository competitions_repositories.TeamRepository,
	leagueService *LeagueService,
) *TeamService {
	return &TeamService{
		teamRepository: teamRepository,
		leagueService:  leagueService,
	}
}

func (s *TeamService) CreateTeam(request *competitions_dto.CreateTeamRequestDTO) (*competitions_models.Team, error) {
	if request.CurrentLeagueID != nil {
		if _, err := s.leagueService.GetLeagueByID(*request.CurrentLeagueID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	team := &competitions_models.Team{
		ID:              uuid.New(),
		Name:            request.Name,
		Code:            request.Code,
		LogoURL:         request.LogoURL,
		CurrentLeagueID: request.CurrentLeagueID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.teamRepository.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

func (s *TeamService) GetTeamByID(teamID uuid.UUID) (*competitions_models.Team, error) {
	team, err := s.teamRepository.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return team, nil
}

func (s *TeamService) GetTeams(
	request *competitions_dto.GetTeamsRequestDTO,
) (*competitions_dto.GetTeamsResponseDTO, error) {
	limit, offset := normalizePage(request.Limit, request.Offset)

	teams, total, err := s.teamRepository.List(request.LeagueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	if teams == nil {
		teams = []*competitions_models.Team{}
	}

	return &competitions_dto.GetTeamsResponseDTO{
		Teams: teams,
		Total: total,
	}, nil
}

func (s *TeamService) UpdateTeam(
	teamID uuid.UUID,
	request *competitions_dto.UpdateTeamRequestDTO,
) (*competitions_models.Team, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	if request.CurrentLeagueID != nil {
		if _, err := s.leagueService.GetLeagueByID(*request.CurrentLeagueID); err != nil {
			return nil, err
		}
		team.CurrentLeagueID = request.CurrentLeagueID
	}

	if request.Name != nil {
		team.Name = *request.Name
	}
	if request.Code != nil {
		team.Code = *request.Code
	}
	if request.LogoURL != nil {
		team.LogoURL = *request.LogoURL
	}
	team.UpdatedAt = time.Now().UTC()

	if err := s.teamRepository.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

func (s *TeamService) DeleteTeam(teamID uuid.UUID) error {
	if _, err := s.GetTeamByID(teamID); err != nil {
		return err
	}

	if err := s.teamRepository.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
