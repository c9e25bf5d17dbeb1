package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalog/internal/middleware"
	"catalog/pkg/log"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return p.err
}

// lazyDatabase returns a database handle; the driver does not dial until an
// operation runs.
func lazyDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("catalog")
}

func newTestServer(t *testing.T, pinger Pinger) *HTTPServer {
	t.Helper()

	srv, err := New(log.NewNop(), Config{
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		MongoDB:        lazyDatabase(t),
		ItemCollection: "items",
		Pinger:         pinger,
		RateLimit:      middleware.Config{RateLimitEnabled: false},
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	t.Run("Health And Live", func(t *testing.T) {
		srv := newTestServer(t, fakePinger{})
		assert.Equal(t, http.StatusOK, serve(srv, "/health").Code)
		assert.Equal(t, http.StatusOK, serve(srv, "/live").Code)
	})

	t.Run("Ready When Mongo Answers", func(t *testing.T) {
		srv := newTestServer(t, fakePinger{})
		assert.Equal(t, http.StatusOK, serve(srv, "/ready").Code)
	})

	t.Run("Not Ready When Mongo Is Down", func(t *testing.T) {
		srv := newTestServer(t, fakePinger{err: errors.New("server selection timeout")})
		assert.Equal(t, http.StatusServiceUnavailable, serve(srv, "/ready").Code)
	})

	t.Run("Request ID Header", func(t *testing.T) {
		srv := newTestServer(t, fakePinger{})
		assert.NotEmpty(t, serve(srv, "/live").Header().Get(middleware.HeaderRequestID))
	})
}

func TestItemRoutesRegistered(t *testing.T) {
	srv := newTestServer(t, fakePinger{})

	// A malformed id is rejected before any store call.
	assert.Equal(t, http.StatusBadRequest, serve(srv, "/items/not-a-uuid").Code)
}

func TestRateLimitClientKey(t *testing.T) {
	newLimitedServer := func(t *testing.T, trusted []string) *HTTPServer {
		t.Helper()

		srv, err := New(log.NewNop(), Config{
			Port:           8080,
			Mode:           gin.TestMode,
			Environment:    "test",
			TrustedProxies: trusted,
			MongoDB:        lazyDatabase(t),
			ItemCollection: "items",
			Pinger:         fakePinger{},
			RateLimit:      middleware.Config{RateLimitEnabled: true, RequestsPerMin: 1, Burst: 1},
		})
		require.NoError(t, err)
		return srv
	}

	serveFrom := func(srv *HTTPServer, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/live", nil)
		req.RemoteAddr = "192.0.2.10:4321"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	t.Run("Forwarded-For Is Ignored Without Trusted Proxies", func(t *testing.T) {
		srv := newLimitedServer(t, nil)

		require.Equal(t, http.StatusOK, serveFrom(srv, "203.0.113.1"))
		for i := 2; i <= 20; i++ {
			assert.Equal(t, http.StatusTooManyRequests, serveFrom(srv, fmt.Sprintf("203.0.113.%d", i)))
		}
	})

	t.Run("Forwarded-For Is Honored From A Trusted Proxy", func(t *testing.T) {
		srv := newLimitedServer(t, []string{"192.0.2.10"})

		assert.Equal(t, http.StatusOK, serveFrom(srv, "203.0.113.1"))
		assert.Equal(t, http.StatusOK, serveFrom(srv, "203.0.113.2"))
		assert.Equal(t, http.StatusTooManyRequests, serveFrom(srv, "203.0.113.1"))
	})

	t.Run("Invalid Proxy", func(t *testing.T) {
		_, err := New(log.NewNop(), Config{
			Port:           8080,
			Mode:           gin.TestMode,
			TrustedProxies: []string{"not-an-ip"},
			MongoDB:        lazyDatabase(t),
			ItemCollection: "items",
		})
		assert.Error(t, err)
	})
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	srv := newTestServer(t, fakePinger{})
	srv.Handler().GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(srv, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, ItemCollection: "items"})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, MongoDB: lazyDatabase(t), ItemCollection: "items"})
	assert.Error(t, err)
}
