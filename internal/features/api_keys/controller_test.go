package api_keys

import (
	"encoding/json"
	"net/http"
	"testing"

	"sportsdata/internal/util/envelope"
	"sportsdata/internal/util/logger"
	test_utils "sportsdata/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newControllerFixture() (*gin.Engine, *ApiKeyService) {
	gin.SetMode(gin.TestMode)

	service := NewApiKeyService(NewMemoryApiKeyRepository(), NewKeyGenerator("test-secret"), logger.GetLogger())
	controller := NewApiKeyController(service)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/v1"))

	return router, service
}

func decodeData[T any](t *testing.T, body envelope.Envelope) T {
	data, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, json.Unmarshal(data, &decoded))

	return decoded
}

func Test_CreateApiKeyEndpoint_ReturnsRawKeyOnce(t *testing.T) {
	router, _ := newControllerFixture()

	var body envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/admin/api-keys",
		Body: CreateApiKeyRequestDTO{
			Name:    "created via endpoint",
			OwnerID: "owner-1",
			Plan:    ApiKeyPlanFree,
		},
		ExpectedStatus: http.StatusOK,
	}, &body)

	require.True(t, body.IsSuccess)

	created := decodeData[CreateApiKeyResponseDTO](t, body)
	assert.NotEmpty(t, created.RawKey)
	assert.Equal(t, "created via endpoint", created.ApiKey.Name)

	var fetched envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/admin/api-keys/" + created.ApiKey.ID.String(),
		ExpectedStatus: http.StatusOK,
	}, &fetched)

	// The stored record never exposes the raw key or its hash.
	fetchedKey := decodeData[map[string]any](t, fetched)
	assert.NotContains(t, fetchedKey, "rawKey")
	assert.NotContains(t, fetchedKey, "keyHash")
}

func Test_CreateApiKeyEndpoint_WhenBodyInvalid_Returns400(t *testing.T) {
	router, _ := newControllerFixture()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/admin/api-keys",
		Body:           `{"name": ""}`,
		ExpectedStatus: http.StatusBadRequest,
	})
}

func Test_CreateApiKeyEndpoint_WhenPlanUnknown_Returns400(t *testing.T) {
	router, _ := newControllerFixture()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method: http.MethodPost,
		URL:    "/api/v1/admin/api-keys",
		Body: map[string]string{
			"name":    "bad plan",
			"ownerId": "owner-1",
			"plan":    "PLATINUM",
		},
		ExpectedStatus: http.StatusBadRequest,
	})
}

func Test_GetApiKeysEndpoint_FiltersByOwner(t *testing.T) {
	router, service := newControllerFixture()

	for _, ownerID := range []string{"owner-1", "owner-1", "owner-2"} {
		_, err := service.CreateApiKey(&CreateApiKeyRequestDTO{
			Name: "listing", OwnerID: ownerID, Plan: ApiKeyPlanFree,
		})
		require.NoError(t, err)
	}

	var body envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/admin/api-keys?ownerId=owner-1",
		ExpectedStatus: http.StatusOK,
	}, &body)

	listed := decodeData[GetApiKeysResponseDTO](t, body)
	assert.Equal(t, int64(2), listed.Total)
	assert.Len(t, listed.ApiKeys, 2)
}

func Test_RevokeApiKeyEndpoint_RevokesKey(t *testing.T) {
	router, service := newControllerFixture()

	created, err := service.CreateApiKey(&CreateApiKeyRequestDTO{
		Name: "to revoke", OwnerID: "owner-1", Plan: ApiKeyPlanFree,
	})
	require.NoError(t, err)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodDelete,
		URL:            "/api/v1/admin/api-keys/" + created.ApiKey.ID.String(),
		ExpectedStatus: http.StatusOK,
	})

	_, err = service.ValidateApiKey(created.RawKey)
	assert.ErrorIs(t, err, ErrKeyRevoked)
}

func Test_RevokeApiKeyEndpoint_WhenKeyUnknown_Returns404(t *testing.T) {
	router, _ := newControllerFixture()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodDelete,
		URL:            "/api/v1/admin/api-keys/" + uuid.NewString(),
		ExpectedStatus: http.StatusNotFound,
	})
}

func Test_RotateApiKeyEndpoint_ReturnsNewRawKey(t *testing.T) {
	router, service := newControllerFixture()

	created, err := service.CreateApiKey(&CreateApiKeyRequestDTO{
		Name: "to rotate", OwnerID: "owner-1", Plan: ApiKeyPlanEnterprise,
	})
	require.NoError(t, err)

	var body envelope.Envelope
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         http.MethodPost,
		URL:            "/api/v1/admin/api-keys/" + created.ApiKey.ID.String() + "/rotate",
		ExpectedStatus: http.StatusOK,
	}, &body)

	rotated := decodeData[CreateApiKeyResponseDTO](t, body)
	assert.NotEqual(t, created.RawKey, rotated.RawKey)
	assert.Equal(t, ApiKeyPlanEnterprise, rotated.ApiKey.Plan)
}

func Test_GetApiKeyEndpoint_WhenIDMalformed_Returns400(t *testing.T) {
	router, _ := newControllerFixture()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodGet,
		URL:            "/api/v1/admin/api-keys/not-a-uuid",
		ExpectedStatus: http.StatusBadRequest,
	})
}
