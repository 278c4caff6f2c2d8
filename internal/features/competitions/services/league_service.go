package competitions_services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_repositories "sportsdata/internal/features/competitions/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var ErrLeagueNotFound = errors.New("league not found")
var ErrSeasonNotFound = errors.New("season not found")

// LeagueCache is what LeagueService needs from a cache; the valkey-backed
// CacheUtil satisfies it. A nil cache disables caching entirely.
type LeagueCache interface {
	Get(key string) *competitions_models.League
	Set(key string, league *competitions_models.League)
	Invalidate(key string)
}

type LeagueService struct {
	leagueRepository competitions_repositories.LeagueRepository
	leagueCache      LeagueCache
	logger           *slog.Logger

	singleflight singleflight.Group
}

func NewLeagueService(
	leagueRepository competitions_repositories.LeagueRepository,
	leagueCache LeagueCache,
	logger *slog.Logger,
) *LeagueService {
	return &LeagueService{
		leagueRepository: leagueRepository,
		leagueCache:      leagueCache,
		logger:           logger,
	}
}

func (s *LeagueService) CreateLeague(request *competitions_dto.CreateLeagueRequestDTO) (*competitions_models.League, error) {
	now := time.Now().UTC()

	league := &competitions_models.League{
		ID:        uuid.New(),
		Name:      request.Name,
		Country:   request.Country,
		LogoURL:   request.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.leagueRepository.Create(league); err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return league, nil
}

func (s *LeagueService) GetLeagueByID(leagueID uuid.UUID) (*competitions_models.League, error) {
	if s.leagueCache != nil {
		if cached := s.leagueCache.Get(leagueID.String()); cached != nil {
			return cached, nil
		}
	}

	result, err, _ := s.singleflight.Do(leagueID.String(), func() (any, error) {
		return s.leagueRepository.GetByID(leagueID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	league, ok := result.(*competitions_models.League)
	if !ok {
		return nil, errors.New("unexpected league lookup result")
	}

	if s.leagueCache != nil {
		s.leagueCache.Set(leagueID.String(), league)
	}

	return league, nil
}

func (s *LeagueService) GetLeagues(
	request *competitions_dto.GetLeaguesRequestDTO,
) (*competitions_dto.GetLeaguesResponseDTO, error) {
	limit, offset := normalizePage(request.Limit, request.Offset)

	leagues, total, err := s.leagueRepository.List(request.Country, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	if leagues == nil {
		leagues = []*competitions_models.League{}
	}

	return &competitions_dto.GetLeaguesResponseDTO{
		Leagues: leagues,
		Total:   total,
	}, nil
}

func (s *LeagueService) UpdateLeague(
	leagueID uuid.UUID,
	request *competitions_dto.UpdateLeagueRequestDTO,
) (*competitions_models.League, error) {
	league, err := s.GetLeagueByID(leagueID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		league.Name = *request.Name
	}
	if request.Country != nil {
		league.Country = *request.Country
	}
	if request.LogoURL != nil {
		league.LogoURL = *request.LogoURL
	}
	league.UpdatedAt = time.Now().UTC()

	if err := s.leagueRepository.Update(league); err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	if s.leagueCache != nil {
		s.leagueCache.Invalidate(leagueID.String())
	}

	return league, nil
}

func (s *LeagueService) DeleteLeague(leagueID uuid.UUID) error {
	if _, err := s.GetLeagueByID(leagueID); err != nil {
		return err
	}

	if err := s.leagueRepository.Delete(leagueID); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}

	if s.leagueCache != nil {
		s.leagueCache.Invalidate(leagueID.String())
	}

	return nil
}

// CreateSeason adds a season to a league. Marking it current demotes any
// previously current season so a league has at most one.
func (s *LeagueService) CreateSeason(
	leagueID uuid.UUID,
	request *competitions_dto.CreateSeasonRequestDTO,
) (*competitions_models.Season, error) {
	if _, err := s.GetLeagueByID(leagueID); err != nil {
		return nil, err
	}

	if request.IsCurrent {
		if err := s.leagueRepository.ClearCurrentSeason(leagueID); err != nil {
			return nil, fmt.Errorf("failed to clear current season: %w", err)
		}
	}

	season := &competitions_models.Season{
		ID:        uuid.New(),
		LeagueID:  leagueID,
		Year:      request.Year,
		IsCurrent: request.IsCurrent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.leagueRepository.CreateSeason(season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return season, nil
}

func (s *LeagueService) GetSeasonByID(seasonID uuid.UUID) (*competitions_models.Season, error) {
	season, err := s.leagueRepository.GetSeasonByID(seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	return season, nil
}

func (s *LeagueService) GetLeagueSeasons(leagueID uuid.UUID) (*competitions_dto.GetSeasonsResponseDTO, error) {
	if _, err := s.GetLeagueByID(leagueID); err != nil {
		return nil, err
	}

	seasons, err := s.leagueRepository.GetSeasonsByLeagueID(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	if seasons == nil {
		seasons = []*competitions_models.Season{}
	}

	return &competitions_dto.GetSeasonsResponseDTO{Seasons: seasons}, nil
}

func normalizePage(limit int, offset int) (int, int) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
