package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/transport/dto"
	"shoe-design-api/internal/validation"
)

const (
	callerHeader = "X-User-Id"
	testCaller   = "user-42"
)

func ptr[T any](v T) *T { return &v }

// setupTestRouter returns a router carrying the middleware the handlers read from.
func setupTestRouter(t *testing.T) (*gin.Engine, *validation.Validator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	v, err := validation.New()
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.Logger(zap.NewNop()), middleware.Lang(v), middleware.Caller(callerHeader))
	return router, v
}

func doJSON(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func asCaller() map[string]string {
	return map[string]string{callerHeader: testCaller}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
