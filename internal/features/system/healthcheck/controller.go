package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.healthcheckService.GetHealthStatus())
}
