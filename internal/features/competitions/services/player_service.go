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

var ErrPlayerNotFound = errors.New("player not found")

type PlayerService struct {
	playerRepository competitions_repositories.PlayerRepository
	teamService      *TeamService
}

func NewPlayerService(
	playerRepository competitions_repositories.PlayerRepository,
	teamService *TeamService,
) *PlayerService {
	return &PlayerService{
		playerRepository: playerRepository,
		teamService:      teamService,
	}
}

func (s *PlayerService) CreatePlayer(
	request *competitions_dto.CreatePlayerRequestDTO,
) (*competitions_models.Player, error) {
	if request.TeamID != nil {
		if _, err := s.teamService.GetTeamByID(*request.TeamID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	player := &competitions_models.Player{
		ID:          uuid.New(),
		Name:        request.Name,
		DateOfBirth: request.DateOfBirth,
		Nationality: request.Nationality,
		Position:    request.Position,
		HeightCm:    request.HeightCm,
		WeightKg:    request.WeightKg,
		TeamID:      request.TeamID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.playerRepository.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(playerID uuid.UUID) (*competitions_models.Player, error) {
	player, err := s.playerRepository.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (s *PlayerService) GetPlayers(
	request *competitions_dto.GetPlayersRequestDTO,
) (*competitions_dto.GetPlayersResponseDTO, error) {
	limit, offset := normalizePage(request.Limit, request.Offset)

	filter := competitions_repositories.PlayerFilter{
		TeamID:      request.TeamID,
		Nationality: request.Nationality,
		Position:    request.Position,
	}

	players, total, err := s.playerRepository.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	if players == nil {
		players = []*competitions_models.Player{}
	}

	return &competitions_dto.GetPlayersResponseDTO{
		Players: players,
		Total:   total,
	}, nil
}

func (s *PlayerService) UpdatePlayer(
	playerID uuid.UUID,
	request *competitions_dto.UpdatePlayerRequestDTO,
) (*competitions_models.Player, error) {
	player, err := s.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		player.Name = *request.Name
	}
	if request.DateOfBirth != nil {
		player.DateOfBirth = request.DateOfBirth
	}
	if request.Nationality != nil {
		player.Nationality = *request.Nationality
	}
	if request.Position != nil {
		player.Position = *request.Position
	}
	if request.HeightCm != nil {
		player.HeightCm = request.HeightCm
	}
	if request.WeightKg != nil {
		player.WeightKg = request.WeightKg
	}
	player.UpdatedAt = time.Now().UTC()

	if err := s.playerRepository.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return player, nil
}

// AssignPlayerToTeam moves a player to a team, or releases them when the
// team ID is nil.
func (s *PlayerService) AssignPlayerToTeam(
	playerID uuid.UUID,
	teamID *uuid.UUID,
) (*competitions_models.Player, error) {
	player, err := s.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	if teamID != nil {
		if _, err := s.teamService.GetTeamByID(*teamID); err != nil {
			return nil, err
		}
	}

	player.TeamID = teamID
	player.UpdatedAt = time.Now().UTC()

	if err := s.playerRepository.Update(player); err != nil {
		return nil, fmt.Errorf("failed to assign player to team: %w", err)
	}

	return player, nil
}

func (s *PlayerService) DeletePlayer(playerID uuid.UUID) error {
	if _, err := s.GetPlayerByID(playerID); err != nil {
		return err
	}

	if err := s.playerRepository.Delete(playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}
