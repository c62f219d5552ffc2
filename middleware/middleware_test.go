package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := okRouter(RateLimitMiddleware(2))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		assert.Equal(t, http.StatusOK, do(r, req).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.RemoteAddr = "10.0.0.1:5001"
	assert.Equal(t, http.StatusTooManyRequests, do(r, req).Code)

	other := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	assert.Equal(t, http.StatusOK, do(r, other).Code)
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded first entry", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "127.0.0.1:1", "203.0.113.5"},
		{"garbage forwarded falls through", map[string]string{"X-Forwarded-For": "nope", "X-Real-IP": "198.51.100.7"}, "127.0.0.1:1", "198.51.100.7"},
		{"remote address", nil, "192.0.2.9:4321", "192.0.2.9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}

func TestAdminTokenMiddleware(t *testing.T) {
	open := okRouter(AdminTokenMiddleware(""))
	assert.Equal(t, http.StatusOK, do(open, httptest.NewRequest(http.MethodGet, "/ping/1", nil)).Code)

	guarded := okRouter(AdminTokenMiddleware("s3cret"))
	assert.Equal(t, http.StatusUnauthorized, do(guarded, httptest.NewRequest(http.MethodGet, "/ping/1", nil)).Code)

	wrong := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	wrong.Header.Set("Authorization", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, do(guarded, wrong).Code)

	right := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	right.Header.Set("Authorization", "Bearer s3cret")
	assert.Equal(t, http.StatusOK, do(guarded, right).Code)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		l, ok := c.Get("logger")
		require.True(t, ok)
		assert.IsType(t, &zap.Logger{}, l)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := do(r, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHTTPMetrics(t *testing.T) {
	m := NewHTTPMetrics()
	r := okRouter(m.Middleware())
	r.GET("/metrics", gin.WrapH(m.Handler()))

	do(r, httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	w := do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `invoicely_http_requests_total{method="GET",path="/ping/:id",status="200"} 1`), text)
	assert.Contains(t, text, `path="unmatched"`)
	assert.NotContains(t, text, "/ping/42")
}
