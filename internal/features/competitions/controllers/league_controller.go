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

type LeagueController struct {
	leagueService *competitions_services.LeagueService
}

func NewLeagueController(leagueService *competitions_services.LeagueService) *LeagueController {
	return &LeagueController{leagueService: leagueService}
}

func (c *LeagueController) RegisterRoutes(router *gin.RouterGroup) {
	leagueRoutes := router.Group("/leagues")

	leagueRoutes.POST("", c.CreateLeague)
	leagueRoutes.GET("", c.GetLeagues)
	leagueRoutes.GET("/:leagueId", c.GetLeague)
	leagueRoutes.PUT("/:leagueId", c.UpdateLeague)
	leagueRoutes.DELETE("/:leagueId", c.DeleteLeague)
	leagueRoutes.POST("/:leagueId/seasons", c.CreateSeason)
	leagueRoutes.GET("/:leagueId/seasons", c.GetSeasons)

	router.GET("/seasons/:seasonId", c.GetSeason)
}

// CreateLeague
// @Summary Create a league
// @Tags leagues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body competitions_dto.CreateLeagueRequestDTO true "League data"
// @Success 200 {object} envelope.Envelope
// @Failure 400 {object} envelope.Envelope
// @Router /leagues [post]
func (c *LeagueController) CreateLeague(ctx *gin.Context) {
	var request competitions_dto.CreateLeagueRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	league, err := c.leagueService.CreateLeague(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(league))
}

// GetLeagues
// @Summary List leagues
// @Tags leagues
// @Produce json
// @Security ApiKeyAuth
// @Param country query string false "Filter by country"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} envelope.Envelope
// @Router /leagues [get]
func (c *LeagueController) GetLeagues(ctx *gin.Context) {
	var request competitions_dto.GetLeaguesRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid query parameters"))
		return
	}

	response, err := c.leagueService.GetLeagues(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

// GetLeague
// @Summary Get a league
// @Tags leagues
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId path string true "League ID"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /leagues/{leagueId} [get]
func (c *LeagueController) GetLeague(ctx *gin.Context) {
	leagueID, err := uuid.Parse(ctx.Param("leagueId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid league ID"))
		return
	}

	league, err := c.leagueService.GetLeagueByID(leagueID)
	if err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(league))
}

// UpdateLeague
// @Summary Update a league
// @Tags leagues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId path string true "League ID"
// @Param request body competitions_dto.UpdateLeagueRequestDTO true "Fields to update"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /leagues/{leagueId} [put]
func (c *LeagueController) UpdateLeague(ctx *gin.Context) {
	leagueID, err := uuid.Parse(ctx.Param("leagueId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid league ID"))
		return
	}

	var request competitions_dto.UpdateLeagueRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	league, err := c.leagueService.UpdateLeague(leagueID, &request)
	if err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(league))
}

// DeleteLeague
// @Summary Delete a league
// @Tags leagues
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId path string true "League ID"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /leagues/{leagueId} [delete]
func (c *LeagueController) DeleteLeague(ctx *gin.Context) {
	leagueID, err := uuid.Parse(ctx.Param("leagueId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid league ID"))
		return
	}

	if err := c.leagueService.DeleteLeague(leagueID); err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(gin.H{"message": "League deleted successfully"}))
}

// CreateSeason
// @Summary Add a season to a league
// @Tags leagues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId path string true "League ID"
// @Param request body competitions_dto.CreateSeasonRequestDTO true "Season data"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /leagues/{leagueId}/seasons [post]
func (c *LeagueController) CreateSeason(ctx *gin.Context) {
	leagueID, err := uuid.Parse(ctx.Param("leagueId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid league ID"))
		return
	}

	var request competitions_dto.CreateSeasonRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	season, err := c.leagueService.CreateSeason(leagueID, &request)
	if err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(season))
}

// GetSeasons
// @Summary List seasons of a league
// @Tags leagues
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId path string true "League ID"
// @Success 200 {object} envelope.Envelope
// @Router /leagues/{leagueId}/seasons [get]
func (c *LeagueController) GetSeasons(ctx *gin.Context) {
	leagueID, err := uuid.Parse(ctx.Param("leagueId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid league ID"))
		return
	}

	response, err := c.leagueService.GetLeagueSeasons(leagueID)
	if err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

// GetSeason
// @Summary Get a season
// @Tags leagues
// @Produce json
// @Security ApiKeyAuth
// @Param seasonId path string true "Season ID"
// @Success 200 {object} envelope.Envelope
// @Router /seasons/{seasonId} [get]
func (c *LeagueController) GetSeason(ctx *gin.Context) {
	seasonID, err := uuid.Parse(ctx.Param("seasonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid season ID"))
		return
	}

	season, err := c.leagueService.GetSeasonByID(seasonID)
	if err != nil {
		respondLeagueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(season))
}

func respondLeagueError(ctx *gin.Context, err error) {
	if errors.Is(err, competitions_services.ErrLeagueNotFound) ||
		errors.Is(err, competitions_services.ErrSeasonNotFound) {
		ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
}
