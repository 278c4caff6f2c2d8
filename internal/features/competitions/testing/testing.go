package competitions_testing

import (
	"sort"
	"sync"

	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_repositories "sportsdata/internal/features/competitions/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository implementations for service and controller tests.

type MemoryLeagueRepository struct {
	mu      sync.Mutex
	leagues map[uuid.UUID]*competitions_models.League
	seasons map[uuid.UUID]*competitions_models.Season
}

func NewMemoryLeagueRepository() *MemoryLeagueRepository {
	return &MemoryLeagueRepository{
		leagues: make(map[uuid.UUID]*competitions_models.League),
		seasons: make(map[uuid.UUID]*competitions_models.Season),
	}
}

func (r *MemoryLeagueRepository) Create(league *competitions_models.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *league
	r.leagues[league.ID] = &copied

	return nil
}

func (r *MemoryLeagueRepository) Update(league *competitions_models.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.leagues[league.ID]; !exists {
		return gorm.ErrRecordNotFound
	}

	copied := *league
	r.leagues[league.ID] = &copied

	return nil
}

func (r *MemoryLeagueRepository) Delete(leagueID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.leagues, leagueID)

	return nil
}

func (r *MemoryLeagueRepository) GetByID(leagueID uuid.UUID) (*competitions_models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	league, exists := r.leagues[leagueID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *league

	return &copied, nil
}

func (r *MemoryLeagueRepository) List(
	country string,
	limit int,
	offset int,
) ([]*competitions_models.League, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*competitions_models.League
	for _, league := range r.leagues {
		if country == "" || league.Country == country {
			copied := *league
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	return page(matched, limit, offset), int64(len(matched)), nil
}

func (r *MemoryLeagueRepository) CreateSeason(season *competitions_models.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *season
	r.seasons[season.ID] = &copied

	return nil
}

func (r *MemoryLeagueRepository) GetSeasonByID(seasonID uuid.UUID) (*competitions_models.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	season, exists := r.seasons[seasonID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *season

	return &copied, nil
}

func (r *MemoryLeagueRepository) GetSeasonsByLeagueID(
	leagueID uuid.UUID,
) ([]*competitions_models.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*competitions_models.Season
	for _, season := range r.seasons {
		if season.LeagueID == leagueID {
			copied := *season
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Year > matched[j].Year })

	return matched, nil
}

func (r *MemoryLeagueRepository) ClearCurrentSeason(leagueID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, season := range r.seasons {
		if season.LeagueID == leagueID {
			season.IsCurrent = false
		}
	}

	return nil
}

type MemoryTeamRepository struct {
	mu    sync.Mutex
	teams map[uuid.UUID]*competitions_models.Team
}

func NewMemoryTeamRepository() *MemoryTeamRepository {
	return &MemoryTeamRepository{teams: make(map[uuid.UUID]*competitions_models.Team)}
}

func (r *MemoryTeamRepository) Create(team *competitions_models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *team
	r.teams[team.ID] = &copied

	return nil
}

func (r *MemoryTeamRepository) Update(team *competitions_models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[team.ID]; !exists {
		return gorm.ErrRecordNotFound
	}

	copied := *team
	r.teams[team.ID] = &copied

	return nil
}

func (r *MemoryTeamRepository) Delete(teamID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.teams, teamID)

	return nil
}

func (r *MemoryTeamRepository) GetByID(teamID uuid.UUID) (*competitions_models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, exists := r.teams[teamID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *team

	return &copied, nil
}

func (r *MemoryTeamRepository) List(
	leagueID *uuid.UUID,
	limit int,
	offset int,
) ([]*competitions_models.Team, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*competitions_models.Team
	for _, team := range r.teams {
		if leagueID == nil || (team.CurrentLeagueID != nil && *team.CurrentLeagueID == *leagueID) {
			copied := *team
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	return page(matched, limit, offset), int64(len(matched)), nil
}

type MemoryPlayerRepository struct {
	mu      sync.Mutex
	players map[uuid.UUID]*competitions_models.Player
}

func NewMemoryPlayerRepository() *MemoryPlayerRepository {
	return &MemoryPlayerRepository{players: make(map[uuid.UUID]*competitions_models.Player)}
}

func (r *MemoryPlayerRepository) Create(player *competitions_models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *player
	r.players[player.ID] = &copied

	return nil
}

func (r *MemoryPlayerRepository) Update(player *competitions_models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[player.ID]; !exists {
		return gorm.ErrRecordNotFound
	}

	copied := *player
	r.players[player.ID] = &copied

	return nil
}

func (r *MemoryPlayerRepository) Delete(playerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.players, playerID)

	return nil
}

func (r *MemoryPlayerRepository) GetByID(playerID uuid.UUID) (*competitions_models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, exists := r.players[playerID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *player

	return &copied, nil
}

func (r *MemoryPlayerRepository) List(
	filter competitions_repositories.PlayerFilter,
	limit int,
	offset int,
) ([]*competitions_models.Player, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*competitions_models.Player
	for _, player := range r.players {
		if filter.TeamID != nil && (player.TeamID == nil || *player.TeamID != *filter.TeamID) {
			continue
		}
		if filter.Nationality != "" && player.Nationality != filter.Nationality {
			continue
		}
		if filter.Position != "" && player.Position != filter.Position {
			continue
		}

		copied := *player
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	return page(matched, limit, offset), int64(len(matched)), nil
}

type MemoryMatchRepository struct {
	mu      sync.Mutex
	matches map[uuid.UUID]*competitions_models.Match
}

func NewMemoryMatchRepository() *MemoryMatchRepository {
	return &MemoryMatchRepository{matches: make(map[uuid.UUID]*competitions_models.Match)}
}

func (r *MemoryMatchRepository) Create(match *competitions_models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *match
	r.matches[match.ID] = &copied

	return nil
}

func (r *MemoryMatchRepository) Update(match *competitions_models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[match.ID]; !exists {
		return gorm.ErrRecordNotFound
	}

	copied := *match
	r.matches[match.ID] = &copied

	return nil
}

func (r *MemoryMatchRepository) Delete(matchID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.matches, matchID)

	return nil
}

func (r *MemoryMatchRepository) GetByID(matchID uuid.UUID) (*competitions_models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match, exists := r.matches[matchID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	copied := *match

	return &copied, nil
}

func (r *MemoryMatchRepository) List(
	filter competitions_repositories.MatchFilter,
	limit int,
	offset int,
) ([]*competitions_models.Match, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*competitions_models.Match
	for _, match := range r.matches {
		if filter.SeasonID != nil && match.SeasonID != *filter.SeasonID {
			continue
		}
		if filter.TeamID != nil && match.HomeTeamID != *filter.TeamID && match.AwayTeamID != *filter.TeamID {
			continue
		}
		if filter.Status != "" && match.Status != filter.Status {
			continue
		}
		if filter.DateFrom != nil && match.MatchDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && match.MatchDate.After(*filter.DateTo) {
			continue
		}

		copied := *match
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].MatchDate.Before(matched[j].MatchDate) })

	return page(matched, limit, offset), int64(len(matched)), nil
}

func page[T any](items []T, limit int, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
