package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shoe-design-api/config"
	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogger_TraceIDSources(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"traceparent", map[string]string{"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"}, "4bf92f3577b34da6a3ce929d0e0e4736"},
		{"X-Trace-ID", map[string]string{"X-Trace-ID": "abc123"}, "abc123"},
		{"traceparent wins", map[string]string{"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", "X-Trace-ID": "abc123"}, "4bf92f3577b34da6a3ce929d0e0e4736"},
		{"malformed traceparent", map[string]string{"traceparent": "garbage", "X-Trace-ID": "abc123"}, "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.Logger(zap.NewNop()))
			var seen string
			router.GET("/x", func(c *gin.Context) {
				seen = middleware.GetTraceID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := serve(router, req)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want, rec.Header().Get(middleware.TraceIDHeader))
		})
	}

	t.Run("generated", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.Logger(zap.NewNop()))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Len(t, rec.Header().Get(middleware.TraceIDHeader), 32)
	})
}

func TestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(middleware.Logger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) {
		middleware.GetLogger(c, nil).Info("inside handler")
		c.Status(http.StatusInternalServerError)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/bad", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	inside := logs.FilterMessage("inside handler").All()
	require.Len(t, inside, 1)
	assert.Contains(t, inside[0].ContextMap(), "trace_id")
}

func TestGetLogger_Fallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, middleware.GetLogger(c, nil))

	fallback := zap.NewExample()
	assert.Same(t, fallback, middleware.GetLogger(c, fallback))
}

func TestCaller(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Caller("X-User-Id"))
	router.GET("/open", func(c *gin.Context) {
		id, err := middleware.GetCallerID(c)
		if err != nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id)
	})
	router.GET("/closed", middleware.RequireCaller(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-User-Id", "  user-1 ")
	assert.Equal(t, "user-1", serve(router, req).Body.String())

	assert.Equal(t, "anonymous", serve(router, httptest.NewRequest(http.MethodGet, "/open", nil)).Body.String())

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/closed", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Caller identity required"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.Header.Set("X-User-Id", "user-1")
	assert.Equal(t, http.StatusOK, serve(router, req).Code)
}

func TestLang(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.Lang(v))
	router.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetTranslator(c).Locale())
	})

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    string
	}{
		{"default", "/x", nil, "en"},
		{"query", "/x?lang=zh", nil, "zh"},
		{"header", "/x", map[string]string{"lang": "zh-CN"}, "zh"},
		{"accept-language", "/x", map[string]string{"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8"}, "zh"},
		{"query beats header", "/x?lang=en", map[string]string{"lang": "zh"}, "en"},
		{"unknown", "/x?lang=fr", nil, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, val := range tt.headers {
				req.Header.Set(k, val)
			}
			assert.Equal(t, tt.want, serve(router, req).Body.String())
		})
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, middleware.GetTranslator(c))
}

func TestInitTracing_Rejects(t *testing.T) {
	_, err := middleware.InitTracing(t.Context(), config.TracingConfig{Enabled: false})
	assert.Error(t, err)

	_, err = middleware.InitTracing(t.Context(), config.TracingConfig{Enabled: true})
	assert.Error(t, err)
}

func TestTracing_PassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Tracing("test-service"))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	assert.Equal(t, http.StatusAccepted, serve(router, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}
