package api_keys

import (
	"net/http"
	"time"

	"sportsdata/internal/util/envelope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type ApiKeyController struct {
	apiKeyService *ApiKeyService

	mintLimiter *rate.Limiter // Caps how fast new keys can be minted
}

func NewApiKeyController(apiKeyService *ApiKeyService) *ApiKeyController {
	return &ApiKeyController{
		apiKeyService: apiKeyService,
		mintLimiter:   rate.NewLimiter(rate.Every(time.Second), 10),
	}
}

func (c *ApiKeyController) RegisterRoutes(router *gin.RouterGroup) {
	apiKeyRoutes := router.Group("/admin/api-keys")

	apiKeyRoutes.POST("", c.CreateApiKey)
	apiKeyRoutes.GET("", c.GetApiKeys)
	apiKeyRoutes.GET("/:apiKeyId", c.GetApiKey)
	apiKeyRoutes.DELETE("/:apiKeyId", c.RevokeApiKey)
	apiKeyRoutes.POST("/:apiKeyId/rotate", c.RotateApiKey)
}

// CreateApiKey
// @Summary Create a new API key
// @Description Mint a new API key; the raw key is returned only once
// @Tags admin-api-keys
// @Accept json
// @Produce json
// @Param request body CreateApiKeyRequestDTO true "API key creation data"
// @Success 200 {object} envelope.Envelope
// @Failure 400 {object} envelope.Envelope
// @Failure 429 {object} envelope.Envelope
// @Router /admin/api-keys [post]
func (c *ApiKeyController) CreateApiKey(ctx *gin.Context) {
	if !c.mintLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, envelope.Failure("Too many key creation requests"))
		return
	}

	var request CreateApiKeyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid request format"))
		return
	}

	response, err := c.apiKeyService.CreateApiKey(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

// GetApiKeys
// @Summary List API keys
// @Description Get API keys, optionally filtered by owner
// @Tags admin-api-keys
// @Produce json
// @Param ownerId query string false "Owner ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} envelope.Envelope
// @Failure 400 {object} envelope.Envelope
// @Router /admin/api-keys [get]
func (c *ApiKeyController) GetApiKeys(ctx *gin.Context) {
	var request GetApiKeysRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid query parameters"))
		return
	}

	response, err := c.apiKeyService.GetApiKeys(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}

// GetApiKey
// @Summary Get API key
// @Tags admin-api-keys
// @Produce json
// @Param apiKeyId path string true "API Key ID"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /admin/api-keys/{apiKeyId} [get]
func (c *ApiKeyController) GetApiKey(ctx *gin.Context) {
	apiKeyID, err := uuid.Parse(ctx.Param("apiKeyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid API key ID"))
		return
	}

	apiKey, err := c.apiKeyService.GetApiKeyByID(apiKeyID)
	if err != nil {
		if err == ErrKeyNotFound {
			ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(apiKey))
}

// RevokeApiKey
// @Summary Revoke API key
// @Description Permanently revoke an API key
// @Tags admin-api-keys
// @Produce json
// @Param apiKeyId path string true "API Key ID"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /admin/api-keys/{apiKeyId} [delete]
func (c *ApiKeyController) RevokeApiKey(ctx *gin.Context) {
	apiKeyID, err := uuid.Parse(ctx.Param("apiKeyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid API key ID"))
		return
	}

	if err := c.apiKeyService.RevokeApiKey(apiKeyID); err != nil {
		if err == ErrKeyNotFound {
			ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(gin.H{"message": "API key revoked successfully"}))
}

// RotateApiKey
// @Summary Rotate API key
// @Description Revoke the key and mint a replacement with the same settings
// @Tags admin-api-keys
// @Produce json
// @Param apiKeyId path string true "API Key ID"
// @Success 200 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /admin/api-keys/{apiKeyId}/rotate [post]
func (c *ApiKeyController) RotateApiKey(ctx *gin.Context) {
	apiKeyID, err := uuid.Parse(ctx.Param("apiKeyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, envelope.Failure("Invalid API key ID"))
		return
	}

	response, err := c.apiKeyService.RotateApiKey(apiKeyID)
	if err != nil {
		if err == ErrKeyNotFound {
			ctx.JSON(http.StatusNotFound, envelope.Failure(err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, envelope.Success(response))
}
