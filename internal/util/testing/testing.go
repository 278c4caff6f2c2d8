package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	Headers        map[string]string
	ExpectedStatus int
}

type Response struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *Response {
	var bodyReader *bytes.Reader

	switch body := options.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		data, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(data)
	}

	request := httptest.NewRequest(options.Method, options.URL, bodyReader)
	request.Header.Set("Content-Type", "application/json")
	for key, value := range options.Headers {
		request.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, options.ExpectedStatus, recorder.Code,
		"unexpected status for %s %s: %s", options.Method, options.URL, recorder.Body.String())

	return &Response{
		Code: recorder.Code,
		Body: recorder.Body.Bytes(),
	}
}

func MakeRequestAndUnmarshal(t *testing.T, router *gin.Engine, options RequestOptions, target any) {
	response := MakeRequest(t, router, options)

	require.NoError(t, json.Unmarshal(response.Body, target))
}
