package competitions_services

import (
	"testing"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_testing "sportsdata/internal/features/competitions/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayerService() (*PlayerService, *TeamService) {
	leagueService, _ := newTestLeagueService()
	teamService := NewTeamService(competitions_testing.NewMemoryTeamRepository(), leagueService)
	playerService := NewPlayerService(competitions_testing.NewMemoryPlayerRepository(), teamService)

	return playerService, teamService
}

func Test_CreatePlayer_WhenTeamUnknown_ReturnsNotFound(t *testing.T) {
	playerService, _ := newTestPlayerService()

	unknownTeamID := uuid.New()

	_, err := playerService.CreatePlayer(&competitions_dto.CreatePlayerRequestDTO{
		Name:   "Ghost Player",
		TeamID: &unknownTeamID,
	})

	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func Test_AssignPlayerToTeam_MovesAndReleasesPlayer(t *testing.T) {
	playerService, teamService := newTestPlayerService()

	team, err := teamService.CreateTeam(&competitions_dto.CreateTeamRequestDTO{Name: "Signing FC"})
	require.NoError(t, err)

	player, err := playerService.CreatePlayer(&competitions_dto.CreatePlayerRequestDTO{
		Name:        "Free Agent",
		Nationality: "Brazil",
		Position:    "Forward",
	})
	require.NoError(t, err)
	require.Nil(t, player.TeamID)

	assigned, err := playerService.AssignPlayerToTeam(player.ID, &team.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.TeamID)
	assert.Equal(t, team.ID, *assigned.TeamID)

	released, err := playerService.AssignPlayerToTeam(player.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, released.TeamID)
}

func Test_GetPlayers_FiltersByTeamNationalityAndPosition(t *testing.T) {
	playerService, teamService := newTestPlayerService()

	team, err := teamService.CreateTeam(&competitions_dto.CreateTeamRequestDTO{Name: "Filter FC"})
	require.NoError(t, err)

	for _, spec := range []struct {
		name        string
		nationality string
		position    string
		teamID      *uuid.UUID
	}{
		{"Striker One", "Brazil", "Forward", &team.ID},
		{"Keeper One", "Brazil", "Goalkeeper", &team.ID},
		{"Striker Two", "France", "Forward", nil},
	} {
		_, err := playerService.CreatePlayer(&competitions_dto.CreatePlayerRequestDTO{
			Name:        spec.name,
			Nationality: spec.nationality,
			Position:    spec.position,
			TeamID:      spec.teamID,
		})
		require.NoError(t, err)
	}

	brazilians, err := playerService.GetPlayers(&competitions_dto.GetPlayersRequestDTO{Nationality: "Brazil"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), brazilians.Total)

	forwardsOnTeam, err := playerService.GetPlayers(&competitions_dto.GetPlayersRequestDTO{
		TeamID:   &team.ID,
		Position: "Forward",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), forwardsOnTeam.Total)
	assert.Equal(t, "Striker One", forwardsOnTeam.Players[0].Name)
}

func Test_UpdatePlayer_ChangesOnlyProvidedFields(t *testing.T) {
	playerService, _ := newTestPlayerService()

	player, err := playerService.CreatePlayer(&competitions_dto.CreatePlayerRequestDTO{
		Name:        "Original Name",
		Nationality: "Spain",
		Position:    "Midfielder",
	})
	require.NoError(t, err)

	newPosition := "Defender"
	updated, err := playerService.UpdatePlayer(player.ID, &competitions_dto.UpdatePlayerRequestDTO{
		Position: &newPosition,
	})

	require.NoError(t, err)
	assert.Equal(t, "Original Name", updated.Name)
	assert.Equal(t, "Spain", updated.Nationality)
	assert.Equal(t, "Defender", updated.Position)
}

func Test_DeletePlayer_RemovesPlayer(t *testing.T) {
	playerService, _ := newTestPlayerService()

	player, err := playerService.CreatePlayer(&competitions_dto.CreatePlayerRequestDTO{Name: "Leaving"})
	require.NoError(t, err)

	require.NoError(t, playerService.DeletePlayer(player.ID))

	_, err = playerService.GetPlayerByID(player.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func Test_CreateTeam_WhenLeagueUnknown_ReturnsNotFound(t *testing.T) {
	_, teamService := newTestPlayerService()

	unknownLeagueID := uuid.New()

	_, err := teamService.CreateTeam(&competitions_dto.CreateTeamRequestDTO{
		Name:            "Orphan FC",
		CurrentLeagueID: &unknownLeagueID,
	})

	assert.ErrorIs(t, err, ErrLeagueNotFound)
}
