package api_keys

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sportsdata/internal/util/envelope"
	"sportsdata/internal/util/logger"
	rate_limit "sportsdata/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

const (
	ApiKeyHeader     = "X-API-Key"
	apiKeyContextKey = "apiKeyContext"
)

var log = logger.GetLogger()

// ApiKeyMiddleware authenticates requests by API key, enforces per-key rate
// limits and records usage. Paths matching an excluded prefix bypass the
// whole pipeline.
func ApiKeyMiddleware(
	apiKeyService *ApiKeyService,
	rateLimiter *rate_limit.RateLimiter,
	usageLogService *UsageLogService,
	excludedPathPrefixes []string,
) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		for _, prefix := range excludedPathPrefixes {
			if strings.HasPrefix(ctx.Request.URL.Path, prefix) {
				ctx.Next()
				return
			}
		}

		started := time.Now()

		rawKey := ctx.GetHeader(ApiKeyHeader)
		if strings.TrimSpace(rawKey) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, envelope.Failure("API key is required"))
			return
		}

		apiKey, err := apiKeyService.ValidateApiKey(rawKey)
		if err != nil {
			abortWithAuthError(ctx, err)
			return
		}

		admit, err := rateLimiter.CheckAdmit(apiKey.ID, apiKey.RateLimitPerMinute, apiKey.RateLimitPerDay)
		if err != nil {
			log.Error("rate limit check failed", "apiKeyId", apiKey.ID, "error", err)
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, envelope.Failure("Service temporarily unavailable"))
			return
		}

		if !admit.Allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, envelope.Failure(admit.Reason))
			return
		}

		// The admitted request counts from here on; a counter failure must
		// not reject a request that already passed the check.
		if err := rateLimiter.RecordUsage(apiKey.ID); err != nil {
			log.Error("failed to record rate limit usage", "apiKeyId", apiKey.ID, "error", err)
		}

		remaining, err := rateLimiter.GetRemaining(apiKey.ID, apiKey.RateLimitPerMinute, apiKey.RateLimitPerDay)
		if err != nil {
			log.Error("failed to read remaining rate limits", "apiKeyId", apiKey.ID, "error", err)
		} else {
			ctx.Header("X-RateLimit-Limit-Minute", strconv.Itoa(apiKey.RateLimitPerMinute))
			ctx.Header("X-RateLimit-Remaining-Minute", strconv.FormatInt(remaining.Minute, 10))
			ctx.Header("X-RateLimit-Limit-Day", strconv.Itoa(apiKey.RateLimitPerDay))
			ctx.Header("X-RateLimit-Remaining-Day", strconv.FormatInt(remaining.Day, 10))
		}

		ctx.Set(apiKeyContextKey, &ApiKeyContext{
			ApiKeyID:           apiKey.ID,
			OwnerID:            apiKey.OwnerID,
			Plan:               apiKey.Plan,
			RateLimitPerMinute: apiKey.RateLimitPerMinute,
			RateLimitPerDay:    apiKey.RateLimitPerDay,
		})

		usageLogService.EnqueueTouchLastUsed(apiKey.ID)

		ctx.Next()

		usageLogService.EnqueueUsageLog(
			apiKey.ID,
			ctx.Request.URL.Path,
			ctx.Request.Method,
			ctx.Writer.Status(),
			time.Since(started).Milliseconds(),
		)
	}
}

func abortWithAuthError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrKeyRevoked), errors.Is(err, ErrKeyInactive), errors.Is(err, ErrKeyExpired):
		ctx.AbortWithStatusJSON(http.StatusForbidden, envelope.Failure(err.Error()))
	case errors.Is(err, ErrMissingKey), errors.Is(err, ErrInvalidKey):
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, envelope.Failure(err.Error()))
	default:
		log.Error("API key validation failed", "error", err)
		ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, envelope.Failure("Service temporarily unavailable"))
	}
}

func GetApiKeyContext(ctx *gin.Context) (*ApiKeyContext, bool) {
	value, exists := ctx.Get(apiKeyContextKey)
	if !exists {
		return nil, false
	}

	apiKeyContext, ok := value.(*ApiKeyContext)

	return apiKeyContext, ok
}
