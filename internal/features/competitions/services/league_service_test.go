package competitions_services

import (
	"sync"
	"testing"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_testing "sportsdata/internal/features/competitions/testing"
	"sportsdata/internal/util/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLeagueCache struct {
	mu      sync.Mutex
	entries map[string]*competitions_models.League
}

func newMemoryLeagueCache() *memoryLeagueCache {
	return &memoryLeagueCache{entries: make(map[string]*competitions_models.League)}
}

func (c *memoryLeagueCache) Get(key string) *competitions_models.League {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries[key]
}

func (c *memoryLeagueCache) Set(key string, league *competitions_models.League) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = league
}

func (c *memoryLeagueCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func newTestLeagueService() (*LeagueService, *memoryLeagueCache) {
	leagueCache := newMemoryLeagueCache()
	service := NewLeagueService(competitions_testing.NewMemoryLeagueRepository(), leagueCache, logger.GetLogger())

	return service, leagueCache
}

func Test_CreateLeague_PersistsLeague(t *testing.T) {
	service, _ := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Premier League",
		Country: "England",
	})

	require.NoError(t, err)

	fetched, err := service.GetLeagueByID(league.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premier League", fetched.Name)
	assert.Equal(t, "England", fetched.Country)
}

func Test_GetLeagueByID_WhenUnknown_ReturnsNotFound(t *testing.T) {
	service, _ := newTestLeagueService()

	_, err := service.GetLeagueByID(uuid.New())

	assert.ErrorIs(t, err, ErrLeagueNotFound)
}

func Test_GetLeagueByID_PopulatesCache(t *testing.T) {
	service, leagueCache := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "La Liga",
		Country: "Spain",
	})
	require.NoError(t, err)

	_, err = service.GetLeagueByID(league.ID)
	require.NoError(t, err)

	assert.NotNil(t, leagueCache.Get(league.ID.String()))
}

func Test_UpdateLeague_InvalidatesCache(t *testing.T) {
	service, leagueCache := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Serie A",
		Country: "Italy",
	})
	require.NoError(t, err)

	_, err = service.GetLeagueByID(league.ID)
	require.NoError(t, err)
	require.NotNil(t, leagueCache.Get(league.ID.String()))

	newName := "Serie A TIM"
	updated, err := service.UpdateLeague(league.ID, &competitions_dto.UpdateLeagueRequestDTO{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Serie A TIM", updated.Name)
	assert.Nil(t, leagueCache.Get(league.ID.String()))
}

func Test_DeleteLeague_RemovesLeague(t *testing.T) {
	service, _ := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Bundesliga",
		Country: "Germany",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteLeague(league.ID))

	_, err = service.GetLeagueByID(league.ID)
	assert.ErrorIs(t, err, ErrLeagueNotFound)
}

func Test_GetLeagues_FiltersByCountry(t *testing.T) {
	service, _ := newTestLeagueService()

	for _, spec := range []struct{ name, country string }{
		{"Premier League", "England"},
		{"Championship", "England"},
		{"Eredivisie", "Netherlands"},
	} {
		_, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
			Name:    spec.name,
			Country: spec.country,
		})
		require.NoError(t, err)
	}

	response, err := service.GetLeagues(&competitions_dto.GetLeaguesRequestDTO{Country: "England"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), response.Total)
	assert.Len(t, response.Leagues, 2)
}

func Test_CreateSeason_MarkingCurrentDemotesPrevious(t *testing.T) {
	service, _ := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Ligue 1",
		Country: "France",
	})
	require.NoError(t, err)

	first, err := service.CreateSeason(league.ID, &competitions_dto.CreateSeasonRequestDTO{
		Year:      2024,
		IsCurrent: true,
	})
	require.NoError(t, err)

	second, err := service.CreateSeason(league.ID, &competitions_dto.CreateSeasonRequestDTO{
		Year:      2025,
		IsCurrent: true,
	})
	require.NoError(t, err)

	firstReloaded, err := service.GetSeasonByID(first.ID)
	require.NoError(t, err)
	assert.False(t, firstReloaded.IsCurrent)

	secondReloaded, err := service.GetSeasonByID(second.ID)
	require.NoError(t, err)
	assert.True(t, secondReloaded.IsCurrent)
}

func Test_CreateSeason_WhenLeagueUnknown_ReturnsNotFound(t *testing.T) {
	service, _ := newTestLeagueService()

	_, err := service.CreateSeason(uuid.New(), &competitions_dto.CreateSeasonRequestDTO{Year: 2025})

	assert.ErrorIs(t, err, ErrLeagueNotFound)
}

func Test_GetLeagueSeasons_ReturnsSeasonsNewestFirst(t *testing.T) {
	service, _ := newTestLeagueService()

	league, err := service.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Primeira Liga",
		Country: "Portugal",
	})
	require.NoError(t, err)

	for _, year := range []int{2023, 2025, 2024} {
		_, err := service.CreateSeason(league.ID, &competitions_dto.CreateSeasonRequestDTO{Year: year})
		require.NoError(t, err)
	}

	response, err := service.GetLeagueSeasons(league.ID)

	require.NoError(t, err)
	require.Len(t, response.Seasons, 3)
	assert.Equal(t, 2025, response.Seasons[0].Year)
	assert.Equal(t, 2024, response.Seasons[1].Year)
	assert.Equal(t, 2023, response.Seasons[2].Year)
}
