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

type MatchController struct {
	matchService *competitions_services.MatchService
}

func NewMatchController(matchService *competitions_services.MatchService) *MatchController {
	return &MatchController{matchService: matchService}
}

func (c *MatchController) RegisterRoutes(router *gin.RouterGroup) {
	matchRoutes := router.Group("/matches")

	matchRoutes.POST("", c.CreateMatch)
	matchRoutes.GET("", c.GetMatches)
	matchRoutes.GET("/:matchId", c.GetMatch)
	matchRoutes.PUT("/:matchId/score", c.UpdateMatchScore)
	matchRoutes.PUT("/:matchId/status", c.UpdateMatchStatus)
	matchRoutes.DELETE("/:matchId", c.DeleteMatch)
}

// CreateMatch
// @Summary Schedule a match
// @Tags matches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body competitions_dto.CreateMatchRequestDTO true "Match data"
// @Success 200 {object} envelope.Envelope
// @Router /matches [post]
func (c *MatchController) CreateMatch(ctx *gin.Context) {
	var request competitions_dto.CreateMatchRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	match, err := c.matchService.CreateMatch(&request)
	if err != nil {
		respondMatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(match))
}

// GetMatches
// @Summary List matches
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param seasonId query string false "Filter by season"
// @Param teamId query string false "Filter by team (home or away)"
// @Param status query string false "Filter by status"
// @Param dateFrom query string false "Earliest match date (YYYY-MM-DD)"
// @Param dateTo query string false "Latest match date (YYYY-MM-DD)"
// @Success 200 {object} envelope.Envelope
// @Router /matches [get]
func (c *MatchController) GetMatches(ctx *gin.Context) {
	var request competitions_dto.GetMatchesRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid query parameters"))
		return
	}

	response, err := c.matchService.GetMatches(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

func (c *MatchController) GetMatch(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Param("matchId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid match ID"))
		return
	}

	match, err := c.matchService.GetMatchByID(matchID)
	if err != nil {
		respondMatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(match))
}

// UpdateMatchScore
// @Summary Update a match score
// @Description Record a live score, or the final score when isFinal is set
// @Tags matches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param matchId path string true "Match ID"
// @Param request body competitions_dto.UpdateMatchScoreRequestDTO true "Score data"
// @Success 200 {object} envelope.Envelope
// @Router /matches/{matchId}/score [put]
func (c *MatchController) UpdateMatchScore(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Param("matchId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid match ID"))
		return
	}

	var request competitions_dto.UpdateMatchScoreRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	match, err := c.matchService.UpdateMatchScore(matchID, &request)
	if err != nil {
		respondMatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(match))
}

// UpdateMatchStatus
// @Summary Change a match status
// @Description Postpone, cancel or reschedule a match
// @Tags matches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param matchId path string true "Match ID"
// @Param request body competitions_dto.UpdateMatchStatusRequestDTO true "Status transition"
// @Success 200 {object} envelope.Envelope
// @Router /matches/{matchId}/status [put]
func (c *MatchController) UpdateMatchStatus(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Param("matchId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid match ID"))
		return
	}

	var request competitions_dto.UpdateMatchStatusRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	match, err := c.matchService.UpdateMatchStatus(matchID, &request)
	if err != nil {
		respondMatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(match))
}

func (c *MatchController) DeleteMatch(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Param("matchId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid match ID"))
		return
	}

	if err := c.matchService.DeleteMatch(matchID); err != nil {
		respondMatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(gin.H{"message": "Match deleted successfully"}))
}

func respondMatchError(ctx *gin.Context, err error) {
	if errors.Is(err, competitions_services.ErrMatchNotFound) ||
		errors.Is(err, competitions_services.ErrSeasonNotFound) ||
		errors.Is(err, competitions_services.ErrTeamNotFound) {
		ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
}
