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

type TeamController struct {
	teamService *competitions_services.TeamService
}

func NewTeamController(teamService *competitions_services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	teamRoutes := router.Group("/teams")

	teamRoutes.POST("", c.CreateTeam)
	teamRoutes.GET("", c.GetTeams)
	teamRoutes.GET("/:teamId", c.GetTeam)
	teamRoutes.PUT("/:teamId", c.UpdateTeam)
	teamRoutes.DELETE("/:teamId", c.DeleteTeam)
}

// CreateTeam
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body competitions_dto.CreateTeamRequestDTO true "Team data"
// @Success 200 {object} envelope.Envelope
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var request competitions_dto.CreateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	team, err := c.teamService.CreateTeam(&request)
	if err != nil {
		respondTeamError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(team))
}

// GetTeams
// @Summary List teams
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param leagueId query string false "Filter by current league"
// @Success 200 {object} envelope.Envelope
// @Router /teams [get]
func (c *TeamController) GetTeams(ctx *gin.Context) {
	var request competitions_dto.GetTeamsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid query parameters"))
		return
	}

	response, err := c.teamService.GetTeams(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

func (c *TeamController) GetTeam(ctx *gin.Context) {
	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid team ID"))
		return
	}

	team, err := c.teamService.GetTeamByID(teamID)
	if err != nil {
		respondTeamError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(team))
}

func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid team ID"))
		return
	}

	var request competitions_dto.UpdateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	team, err := c.teamService.UpdateTeam(teamID, &request)
	if err != nil {
		respondTeamError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(team))
}

func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid team ID"))
		return
	}

	if err := c.teamService.DeleteTeam(teamID); err != nil {
		respondTeamError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(gin.H{"message": "Team deleted successfully"}))
}

func respondTeamError(ctx *gin.Context, err error) {
	if errors.Is(err, competitions_services.ErrTeamNotFound) ||
		errors.Is(err, competitions_services.ErrLeagueNotFound) {
		ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
}
