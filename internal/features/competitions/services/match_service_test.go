package competitions_services

import (
	"testing"
	"time"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_testing "sportsdata/internal/features/competitions/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchFixture struct {
	matchService *MatchService
	seasonID     uuid.UUID
	homeTeamID   uuid.UUID
	awayTeamID   uuid.UUID
}

func newMatchFixture(t *testing.T) *matchFixture {
	leagueService, _ := newTestLeagueService()
	teamService := NewTeamService(competitions_testing.NewMemoryTeamRepository(), leagueService)
	matchService := NewMatchService(competitions_testing.NewMemoryMatchRepository(), leagueService, teamService)

	league, err := leagueService.CreateLeague(&competitions_dto.CreateLeagueRequestDTO{
		Name:    "Test League",
		Country: "Testland",
	})
	require.NoError(t, err)

	season, err := leagueService.CreateSeason(league.ID, &competitions_dto.CreateSeasonRequestDTO{
		Year:      2025,
		IsCurrent: true,
	})
	require.NoError(t, err)

	home, err := teamService.CreateTeam(&competitions_dto.CreateTeamRequestDTO{Name: "Home FC"})
	require.NoError(t, err)

	away, err := teamService.CreateTeam(&competitions_dto.CreateTeamRequestDTO{Name: "Away FC"})
	require.NoError(t, err)

	return &matchFixture{
		matchService: matchService,
		seasonID:     season.ID,
		homeTeamID:   home.ID,
		awayTeamID:   away.ID,
	}
}

func (f *matchFixture) createMatch(t *testing.T) *competitions_models.Match {
	match, err := f.matchService.CreateMatch(&competitions_dto.CreateMatchRequestDTO{
		SeasonID:   f.seasonID,
		HomeTeamID: f.homeTeamID,
		AwayTeamID: f.awayTeamID,
		MatchDate:  time.Now().UTC().Add(24 * time.Hour),
		Venue:      "Test Stadium",
	})
	require.NoError(t, err)

	return match
}

func Test_CreateMatch_StartsScheduledWithoutScores(t *testing.T) {
	fixture := newMatchFixture(t)

	match := fixture.createMatch(t)

	assert.Equal(t, competitions_models.MatchStatusScheduled, match.Status)
	assert.Nil(t, match.HomeScore)
	assert.Nil(t, match.AwayScore)
}

func Test_CreateMatch_WhenTeamPlaysItself_ReturnsError(t *testing.T) {
	fixture := newMatchFixture(t)

	_, err := fixture.matchService.CreateMatch(&competitions_dto.CreateMatchRequestDTO{
		SeasonID:   fixture.seasonID,
		HomeTeamID: fixture.homeTeamID,
		AwayTeamID: fixture.homeTeamID,
		MatchDate:  time.Now().UTC().Add(24 * time.Hour),
	})

	assert.Error(t, err)
}

func Test_CreateMatch_WhenSeasonUnknown_ReturnsNotFound(t *testing.T) {
	fixture := newMatchFixture(t)

	_, err := fixture.matchService.CreateMatch(&competitions_dto.CreateMatchRequestDTO{
		SeasonID:   uuid.New(),
		HomeTeamID: fixture.homeTeamID,
		AwayTeamID: fixture.awayTeamID,
		MatchDate:  time.Now().UTC().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrSeasonNotFound)
}

func Test_UpdateMatchScore_LiveScoreMovesMatchToLive(t *testing.T) {
	fixture := newMatchFixture(t)
	match := fixture.createMatch(t)

	updated, err := fixture.matchService.UpdateMatchScore(match.ID, &competitions_dto.UpdateMatchScoreRequestDTO{
		HomeScore: 1,
		AwayScore: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, competitions_models.MatchStatusLive, updated.Status)
	require.NotNil(t, updated.HomeScore)
	assert.Equal(t, 1, *updated.HomeScore)
}

func Test_UpdateMatchScore_FinalScoreFinishesMatch(t *testing.T) {
	fixture := newMatchFixture(t)
	match := fixture.createMatch(t)

	updated, err := fixture.matchService.UpdateMatchScore(match.ID, &competitions_dto.UpdateMatchScoreRequestDTO{
		HomeScore: 2,
		AwayScore: 2,
		IsFinal:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, competitions_models.MatchStatusFinished, updated.Status)

	// Finished matches reject further score changes.
	_, err = fixture.matchService.UpdateMatchScore(match.ID, &competitions_dto.UpdateMatchScoreRequestDTO{
		HomeScore: 3,
		AwayScore: 2,
	})
	assert.Error(t, err)
}

func Test_UpdateMatchStatus_PostponeAndReschedule(t *testing.T) {
	fixture := newMatchFixture(t)
	match := fixture.createMatch(t)

	postponed, err := fixture.matchService.UpdateMatchStatus(match.ID, &competitions_dto.UpdateMatchStatusRequestDTO{
		Status: competitions_models.MatchStatusPostponed,
	})
	require.NoError(t, err)
	assert.Equal(t, competitions_models.MatchStatusPostponed, postponed.Status)

	newDate := time.Now().UTC().Add(7 * 24 * time.Hour)
	rescheduled, err := fixture.matchService.UpdateMatchStatus(match.ID, &competitions_dto.UpdateMatchStatusRequestDTO{
		Status:    competitions_models.MatchStatusScheduled,
		MatchDate: &newDate,
	})
	require.NoError(t, err)
	assert.Equal(t, competitions_models.MatchStatusScheduled, rescheduled.Status)
	assert.WithinDuration(t, newDate, rescheduled.MatchDate, time.Second)
}

func Test_UpdateMatchStatus_RescheduleWithoutDate_ReturnsError(t *testing.T) {
	fixture := newMatchFixture(t)
	match := fixture.createMatch(t)

	_, err := fixture.matchService.UpdateMatchStatus(match.ID, &competitions_dto.UpdateMatchStatusRequestDTO{
		Status: competitions_models.MatchStatusScheduled,
	})

	assert.Error(t, err)
}

func Test_UpdateMatchStatus_CancelFinishedMatch_ReturnsError(t *testing.T) {
	fixture := newMatchFixture(t)
	match := fixture.createMatch(t)

	_, err := fixture.matchService.UpdateMatchScore(match.ID, &competitions_dto.UpdateMatchScoreRequestDTO{
		HomeScore: 1,
		AwayScore: 0,
		IsFinal:   true,
	})
	require.NoError(t, err)

	_, err = fixture.matchService.UpdateMatchStatus(match.ID, &competitions_dto.UpdateMatchStatusRequestDTO{
		Status: competitions_models.MatchStatusCancelled,
	})

	assert.Error(t, err)
}

func Test_GetMatches_FiltersByTeamAndStatus(t *testing.T) {
	fixture := newMatchFixture(t)
	first := fixture.createMatch(t)
	fixture.createMatch(t)

	_, err := fixture.matchService.UpdateMatchScore(first.ID, &competitions_dto.UpdateMatchScoreRequestDTO{
		HomeScore: 1,
		AwayScore: 1,
		IsFinal:   true,
	})
	require.NoError(t, err)

	finished, err := fixture.matchService.GetMatches(&competitions_dto.GetMatchesRequestDTO{
		TeamID: &fixture.homeTeamID,
		Status: competitions_models.MatchStatusFinished,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), finished.Total)

	all, err := fixture.matchService.GetMatches(&competitions_dto.GetMatchesRequestDTO{
		TeamID: &fixture.homeTeamID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}
