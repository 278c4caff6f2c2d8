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

var ErrMatchNotFound = errors.New("match not found")

type MatchService struct {
	matchRepository competitions_repositories.MatchRepository
	leagueService   *LeagueService
	teamService     *TeamService
}

func NewMatchService(
	matchRepository competitions_repositories.MatchRepository,
	leagueService *LeagueService,
	teamService *TeamService,
) *MatchService {
	return &MatchService{
		matchRepository: matchRepository,
		leagueService:   leagueService,
		teamService:     teamService,
	}
}

func (s *MatchService) CreateMatch(
	request *competitions_dto.CreateMatchRequestDTO,
) (*competitions_models.Match, error) {
	if request.HomeTeamID == request.AwayTeamID {
		return nil, errors.New("a team cannot play against itself")
	}

	if _, err := s.leagueService.GetSeasonByID(request.SeasonID); err != nil {
		return nil, err
	}

	if _, err := s.teamService.GetTeamByID(request.HomeTeamID); err != nil {
		return nil, err
	}
	if _, err := s.teamService.GetTeamByID(request.AwayTeamID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	match := &competitions_models.Match{
		ID:         uuid.New(),
		SeasonID:   request.SeasonID,
		HomeTeamID: request.HomeTeamID,
		AwayTeamID: request.AwayTeamID,
		MatchDate:  request.MatchDate,
		Status:     competitions_models.MatchStatusScheduled,
		Venue:      request.Venue,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.matchRepository.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return match, nil
}

func (s *MatchService) GetMatchByID(matchID uuid.UUID) (*competitions_models.Match, error) {
	match, err := s.matchRepository.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (s *MatchService) GetMatches(
	request *competitions_dto.GetMatchesRequestDTO,
) (*competitions_dto.GetMatchesResponseDTO, error) {
	if request.Status != "" && !request.Status.IsValid() {
		return nil, fmt.Errorf("unknown match status: %s", request.Status)
	}

	limit, offset := normalizePage(request.Limit, request.Offset)

	filter := competitions_repositories.MatchFilter{
		SeasonID: request.SeasonID,
		TeamID:   request.TeamID,
		Status:   request.Status,
		DateFrom: request.DateFrom,
		DateTo:   request.DateTo,
	}

	matches, total, err := s.matchRepository.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	if matches == nil {
		matches = []*competitions_models.Match{}
	}

	return &competitions_dto.GetMatchesResponseDTO{
		Matches: matches,
		Total:   total,
	}, nil
}

func (s *MatchService) UpdateMatchScore(
	matchID uuid.UUID,
	request *competitions_dto.UpdateMatchScoreRequestDTO,
) (*competitions_models.Match, error) {
	match, err := s.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	if request.IsFinal {
		err = match.SetFinalScore(request.HomeScore, request.AwayScore)
	} else {
		err = match.UpdateLiveScore(request.HomeScore, request.AwayScore)
	}
	if err != nil {
		return nil, err
	}

	match.UpdatedAt = time.Now().UTC()

	if err := s.matchRepository.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match score: %w", err)
	}

	return match, nil
}

// UpdateMatchStatus drives the lifecycle transitions the model allows:
// postponing, cancelling and rescheduling. Scores go through
// UpdateMatchScore instead.
func (s *MatchService) UpdateMatchStatus(
	matchID uuid.UUID,
	request *competitions_dto.UpdateMatchStatusRequestDTO,
) (*competitions_models.Match, error) {
	match, err := s.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	switch request.Status {
	case competitions_models.MatchStatusPostponed:
		err = match.Postpone()
	case competitions_models.MatchStatusCancelled:
		err = match.Cancel()
	case competitions_models.MatchStatusScheduled:
		if request.MatchDate == nil {
			return nil, errors.New("rescheduling requires a new match date")
		}
		err = match.Reschedule(*request.MatchDate)
	default:
		return nil, fmt.Errorf("unsupported status transition: %s", request.Status)
	}
	if err != nil {
		return nil, err
	}

	match.UpdatedAt = time.Now().UTC()

	if err := s.matchRepository.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match status: %w", err)
	}

	return match, nil
}

func (s *MatchService) DeleteMatch(matchID uuid.UUID) error {
	if _, err := s.GetMatchByID(matchID); err != nil {
		return err
	}

	if err := s.matchRepository.Delete(matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
