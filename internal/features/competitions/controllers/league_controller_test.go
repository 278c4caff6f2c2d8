package competitions_controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_services "sportsdata/internal/features/competitions/services"
	competitions_testing "sportsdata/internal/features/competitions/testing"
	"sportsdata/internal/util/envelope"
	"sportsdata/internal/util/logger"
	test_utils "sportsdata/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	leagueService := competitions_services.NewLeagueService(
		competitions_testing.NewMemoryLeagueRepository(), nil, logger.GetLogger())
	teamService := competitions_services.NewTeamService(
		competitions_testing.NewMemoryTeamRepository(), leagueService)
	playerService := competitions_services.NewPlayerService(
		competitions_testing.NewMemoryPlayerRepository(), teamService)
	matchService := competitions_services.NewMatchService(
		competitions_testing.NewMemoryMatchRepository(), leagueService, teamService)

	router := gin.New()
	group := router.Group("/api/v1")

	NewLeagueController(leagueService).RegisterRoutes(group)
	NewTeamController(teamService).RegisterRoutes(group)
	NewPlayerController(playerService).RegisterRoutes(group)
	NewMatchController(matchService).RegisterRoutes(group)

	return router
}

func decode[T any](t *testing.T, body envelope.Envelope) T {
	data, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, json.Unmarshal(data, &decoded))

	return decoded
}

func Test_LeagueEndpoints_CreateGetUpdateDelete(t *testing.T) {
	router := newTestRouter()

	var created envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/leagues",
		Body: competitions_dto.CreateLeagueRequestDTO{
			Name:    "Premier League",
			Country: "England",
		},
		ExpectedStatus: http.StatusOK,
	}, &created)

	league := decode[competitions_models.League](t, created)
	assert.Equal(t, "Premier League", league.Name)

	var fetched envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/leagues/" + league.ID.String(),
		ExpectedStatus: http.StatusOK,
	}, &fetched)
	assert.True(t, fetched.IsSuccess)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodPut,
		URL:            "/api/v1/leagues/" + league.ID.String(),
		Body:           map[string]string{"name": "EPL"},
		ExpectedStatus: http.StatusOK,
	})

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodDelete,
		URL:            "/api/v1/leagues/" + league.ID.String(),
		ExpectedStatus: http.StatusOK,
	})

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/leagues/" + league.ID.String(),
		ExpectedStatus: http.StatusNotFound,
	})
}

func Test_LeagueEndpoints_WhenBodyInvalid_Returns400(t *testing.T) {
	router := newTestRouter()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/leagues",
		Body:           `{"name": ""}`,
		ExpectedStatus: http.StatusBadRequest,
	})
}

func Test_SeasonEndpoints_CreateAndList(t *testing.T) {
	router := newTestRouter()

	var created envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/leagues",
		Body: competitions_dto.CreateLeagueRequestDTO{
			Name:    "La Liga",
			Country: "Spain",
		},
		ExpectedStatus: http.StatusOK,
	}, &created)

	league := decode[competitions_models.League](t, created)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/leagues/" + league.ID.String() + "/seasons",
		Body:           competitions_dto.CreateSeasonRequestDTO{Year: 2025, IsCurrent: true},
		ExpectedStatus: http.StatusOK,
	})

	var listed envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/leagues/" + league.ID.String() + "/seasons",
		ExpectedStatus: http.StatusOK,
	}, &listed)

	seasons := decode[competitions_dto.GetSeasonsResponseDTO](t, listed)
	require.Len(t, seasons.Seasons, 1)
	assert.Equal(t, 2025, seasons.Seasons[0].Year)
}

func Test_MatchEndpoints_FullLifecycle(t *testing.T) {
	router := newTestRouter()

	var leagueEnvelope envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/leagues",
		Body: competitions_dto.CreateLeagueRequestDTO{
			Name:    "Cup",
			Country: "Testland",
		},
		ExpectedStatus: http.StatusOK,
	}, &leagueEnvelope)
	league := decode[competitions_models.League](t, leagueEnvelope)

	var seasonEnvelope envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/leagues/" + league.ID.String() + "/seasons",
		Body:           competitions_dto.CreateSeasonRequestDTO{Year: 2025},
		ExpectedStatus: http.StatusOK,
	}, &seasonEnvelope)
	season := decode[competitions_models.Season](t, seasonEnvelope)

	createTeam := func(name string) competitions_models.Team {
		var teamEnvelope envelope.Envelope
		test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
			Method:         http.MethodPost,
			URL:            "/api/v1/teams",
			Body:           competitions_dto.CreateTeamRequestDTO{Name: name},
			ExpectedStatus: http.StatusOK,
		}, &teamEnvelope)
		return decode[competitions_models.Team](t, teamEnvelope)
	}

	home := createTeam("Home FC")
	away := createTeam("Away FC")

	var matchEnvelope envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/matches",
		Body: competitions_dto.CreateMatchRequestDTO{
			SeasonID:   season.ID,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			MatchDate:  time.Now().UTC().Add(24 * time.Hour),
			Venue:      "Test Arena",
		},
		ExpectedStatus: http.StatusOK,
	}, &matchEnvelope)
	match := decode[competitions_models.Match](t, matchEnvelope)
	assert.Equal(t, competitions_models.MatchStatusScheduled, match.Status)

	var scored envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPut,
		URL:    "/api/v1/matches/" + match.ID.String() + "/score",
		Body: competitions_dto.UpdateMatchScoreRequestDTO{
			HomeScore: 2,
			AwayScore: 1,
			IsFinal:   true,
		},
		ExpectedStatus: http.StatusOK,
	}, &scored)

	finished := decode[competitions_models.Match](t, scored)
	assert.Equal(t, competitions_models.MatchStatusFinished, finished.Status)
	require.NotNil(t, finished.HomeScore)
	assert.Equal(t, 2, *finished.HomeScore)
}

func Test_MatchEndpoints_WhenTeamPlaysItself_Returns400(t *testing.T) {
	router := newTestRouter()

	teamID := uuid.New()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/matches",
		Body: competitions_dto.CreateMatchRequestDTO{
			SeasonID:   uuid.New(),
			HomeTeamID: teamID,
			AwayTeamID: teamID,
			MatchDate:  time.Now().UTC().Add(24 * time.Hour),
		},
		ExpectedStatus: http.StatusBadRequest,
	})
}

func Test_PlayerEndpoints_AssignToTeam(t *testing.T) {
	router := newTestRouter()

	var teamEnvelope envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/teams",
		Body:           competitions_dto.CreateTeamRequestDTO{Name: "Signing FC"},
		ExpectedStatus: http.StatusOK,
	}, &teamEnvelope)
	team := decode[competitions_models.Team](t, teamEnvelope)

	var playerEnvelope envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/players",
		Body:           competitions_dto.CreatePlayerRequestDTO{Name: "New Signing"},
		ExpectedStatus: http.StatusOK,
	}, &playerEnvelope)
	player := decode[competitions_models.Player](t, playerEnvelope)

	var assigned envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodPut,
		URL:            "/api/v1/players/" + player.ID.String() + "/team",
		Body:           competitions_dto.AssignPlayerToTeamRequestDTO{TeamID: &team.ID},
		ExpectedStatus: http.StatusOK,
	}, &assigned)

	assignedPlayer := decode[competitions_models.Player](t, assigned)
	require.NotNil(t, assignedPlayer.TeamID)
	assert.Equal(t, team.ID, *assignedPlayer.TeamID)
}
