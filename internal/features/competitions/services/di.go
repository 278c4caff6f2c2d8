package competitions_services

import (
	"sync"

	"sportsdata/internal/cache"
	competitions_models "sportsdata/internal/features/competitions/models"
	competitions_repositories "sportsdata/internal/features/competitions/repositories"
	cache_utils "sportsdata/internal/util/cache"
	"sportsdata/internal/util/logger"
)

var (
	dependenciesOnce sync.Once

	leagueService *LeagueService
	teamService   *TeamService
	playerService *PlayerService
	matchService  *MatchService
)

func setUpDependencies() {
	dependenciesOnce.Do(func() {
		log := logger.GetLogger()

		leagueCache := cache_utils.NewCacheUtil[competitions_models.League](cache.GetCache(), "league:")

		leagueService = NewLeagueService(competitions_repositories.NewLeagueRepository(), leagueCache, log)
		teamService = NewTeamService(competitions_repositories.NewTeamRepository(), leagueService)
		playerService = NewPlayerService(competitions_repositories.NewPlayerRepository(), teamService)
		matchService = NewMatchService(competitions_repositories.NewMatchRepository(), leagueService, teamService)
	})
}

func GetLeagueService() *LeagueService {
	setUpDependencies()
	return leagueService
}

func GetTeamService() *TeamService {
	setUpDependencies()
	return teamService
}

func GetPlayerService() *PlayerService {
	setUpDependencies()
	return playerService
}

func GetMatchService() *MatchService {
	setUpDependencies()
	return matchService
}
