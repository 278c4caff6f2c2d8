package competitions_controllers

import (
	"errors"
	"net/http"

	competitions_dto "sportsdata/internal/features/competitions/dto"
	competitions_services "sportsdata/internal/features/competitions/services"
	"sportsdata/internal/util/envelope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlayerController struct {
	playerService *competitions_services.PlayerService
}

func NewPlayerController(playerService *competitions_services.PlayerService) *PlayerController {
	return &PlayerController{playerService: playerService}
}

func (c *PlayerController) RegisterRoutes(router *gin.RouterGroup) {
	playerRoutes := router.Group("/players")

	playerRoutes.POST("", c.CreatePlayer)
	playerRoutes.GET("", c.GetPlayers)
	playerRoutes.GET("/:playerId", c.GetPlayer)
	playerRoutes.PUT("/:playerId", c.UpdatePlayer)
	playerRoutes.DELETE("/:playerId", c.DeletePlayer)
	playerRoutes.PUT("/:playerId/team", c.AssignPlayerToTeam)
}

// CreatePlayer
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body competitions_dto.CreatePlayerRequestDTO true "Player data"
// @Success 200 {object} envelope.Envelope
// @Router /players [post]
func (c *PlayerController) CreatePlayer(ctx *gin.Context) {
	var request competitions_dto.CreatePlayerRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	player, err := c.playerService.CreatePlayer(&request)
	if err != nil {
		respondPlayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(player))
}

// GetPlayers
// @Summary List players
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param teamId query string false "Filter by team"
// @Param nationality query string false "Filter by nationality"
// @Param position query string false "Filter by position"
// @Success 200 {object} envelope.Envelope
// @Router /players [get]
func (c *PlayerController) GetPlayers(ctx *gin.Context) {
	var request competitions_dto.GetPlayersRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid query parameters"))
		return
	}

	response, err := c.playerService.GetPlayers(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

func (c *PlayerController) GetPlayer(ctx *gin.Context) {
	playerID, err := uuid.Parse(ctx.Param("playerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid player ID"))
		return
	}

	player, err := c.playerService.GetPlayerByID(playerID)
	if err != nil {
		respondPlayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(player))
}

func (c *PlayerController) UpdatePlayer(ctx *gin.Context) {
	playerID, err := uuid.Parse(ctx.Param("playerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid player ID"))
		return
	}

	var request competitions_dto.UpdatePlayerRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	player, err := c.playerService.UpdatePlayer(playerID, &request)
	if err != nil {
		respondPlayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(player))
}

// AssignPlayerToTeam
// @Summary Assign a player to a team
// @Description Set the player's team, or release them with a null team ID
// @Tags players
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param playerId path string true "Player ID"
// @Param request body competitions_dto.AssignPlayerToTeamRequestDTO true "Target team"
// @Success 200 {object} envelope.Envelope
// @Router /players/{playerId}/team [put]
func (c *PlayerController) AssignPlayerToTeam(ctx *gin.Context) {
	playerID, err := uuid.Parse(ctx.Param("playerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid player ID"))
		return
	}

	var request competitions_dto.AssignPlayerToTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	player, err := c.playerService.AssignPlayerToTeam(playerID, request.TeamID)
	if err != nil {
		respondPlayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(player))
}

func (c *PlayerController) DeletePlayer(ctx *gin.Context) {
	playerID, err := uuid.Parse(ctx.Param("playerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid player ID"))
		return
	}

	if err := c.playerService.DeletePlayer(playerID); err != nil {
		respondPlayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(gin.H{"message": "Player deleted successfully"}))
}

func respondPlayerError(ctx *gin.Context, err error) {
	if errors.Is(err, competitions_services.ErrPlayerNotFound) ||
		errors.Is(err, competitions_services.ErrTeamNotFound) {
		ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
}
