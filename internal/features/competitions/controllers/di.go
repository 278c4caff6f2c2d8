package competitions_controllers

import (
	"sync"

	competitions_services "sportsdata/internal/features/competitions/services"

	"github.com/gin-gonic/gin"
)

var (
	dependenciesOnce sync.Once

	leagueController *LeagueController
	teamController   *TeamController
	playerController *PlayerController
	matchController  *MatchController
)

func setUpDependencies() {
	dependenciesOnce.Do(func() {
		leagueController = NewLeagueController(competitions_services.GetLeagueService())
		teamController = NewTeamController(competitions_services.GetTeamService())
		playerController = NewPlayerController(competitions_services.GetPlayerService())
		matchController = NewMatchController(competitions_services.GetMatchService())
	})
}

func RegisterRoutes(router *gin.RouterGroup) {
	setUpDependencies()

	leagueController.RegisterRoutes(router)
	teamController.RegisterRoutes(router)
	playerController.RegisterRoutes(router)
	matchController.RegisterRoutes(router)
}
