package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(t *testing.T, allowOrigins string) *gin.Engine {
	t.Helper()

	middleware := createCORSMiddleware(true, allowOrigins, slog.New(slog.DiscardHandler))
	require.NotNil(t, middleware)

	router := gin.New()
	router.Use(middleware)
	router.GET("/api/v1/vehicles/years", func(c *gin.Context) {
		c.JSON(http.StatusOK, []int{2025})
	})
	router.POST("/api/v1/valuation", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name         string
		enabled      bool
		allowOrigins string
		wantNil      bool
	}{
		{name: "disabled", enabled: false, allowOrigins: "http://localhost:3000", wantNil: true},
		{name: "no origins", enabled: true, allowOrigins: "", wantNil: true},
		{name: "only separators", enabled: true, allowOrigins: " , ,", wantNil: true},
		{name: "single origin", enabled: true, allowOrigins: "http://localhost:3000"},
		{name: "padded list", enabled: true, allowOrigins: " http://localhost:3000 , https://www.vehiclebff.example "},
		{name: "wildcard", enabled: true, allowOrigins: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.allowOrigins, logger)
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://www.vehiclebff.example"},
		parseOrigins(" http://localhost:3000 ,, https://www.vehiclebff.example "),
	)
	assert.Nil(t, parseOrigins(""))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := corsRouter(t, "http://localhost:3000")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/years", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter(t, "http://localhost:3000")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/valuation", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_UnknownOriginRejected(t *testing.T) {
	router := corsRouter(t, "http://localhost:3000")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/years", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	router := corsRouter(t, "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/years", nil)
	req.Header.Set("Origin", "https://any.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
