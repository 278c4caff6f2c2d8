package api_keys

import (
	"sync"

	"sportsdata/internal/config"
	"sportsdata/internal/util/logger"
	rate_limit "sportsdata/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

var (
	dependenciesOnce sync.Once

	apiKeyService    *ApiKeyService
	usageLogService  *UsageLogService
	apiKeyController *ApiKeyController
	rateLimiter      *rate_limit.RateLimiter
)

// Dependencies are wired on first use so packages importing this one do
// not open database or valkey connections at init time.
func setUpDependencies() {
	dependenciesOnce.Do(func() {
		env := config.GetEnv()
		log := logger.GetLogger()

		keyGenerator := NewKeyGenerator(env.ApiKeyHashSecret)
		apiKeyRepository := NewApiKeyRepository()
		usageLogRepository := NewApiUsageLogRepository()

		apiKeyService = NewApiKeyService(apiKeyRepository, keyGenerator, log)
		usageLogService = NewUsageLogService(usageLogRepository, apiKeyRepository, log)
		apiKeyController = NewApiKeyController(apiKeyService)
		rateLimiter = rate_limit.NewRateLimiter(rate_limit.NewValkeyCounterStore())
	})
}

func GetApiKeyService() *ApiKeyService {
	setUpDependencies()
	return apiKeyService
}

func GetUsageLogService() *UsageLogService {
	setUpDependencies()
	return usageLogService
}

func GetApiKeyController() *ApiKeyController {
	setUpDependencies()
	return apiKeyController
}

func GetRateLimiter() *rate_limit.RateLimiter {
	setUpDependencies()
	return rateLimiter
}

func GetApiKeyMiddleware() gin.HandlerFunc {
	setUpDependencies()
	return ApiKeyMiddleware(
		apiKeyService,
		rateLimiter,
		usageLogService,
		config.GetEnv().ExcludedPathPrefixes(),
	)
}
