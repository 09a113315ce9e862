package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := NewRateLimiter(60, zap.NewNop().Sugar())
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	app := fiber.New()
	app.Post("/contacts/:id/matches", rl.Handler(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	call := func() *http.Response {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/contacts/c1/matches", nil))
		require.NoError(t, err)
		return resp
	}

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, call().StatusCode)
	}

	resp := call()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, "1", resp.Header.Get(fiber.HeaderRetryAfter))

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.RATELIMITED, body.Error.Code)

	now = now.Add(time.Second)
	require.Equal(t, http.StatusOK, call().StatusCode)
}

func TestRateLimiterSeparatesRoutes(t *testing.T) {
	rl := NewRateLimiter(10, zap.NewNop().Sugar())
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }
	app.Post("/contacts/:id/matches", rl.Handler(), ok)
	app.Get("/network/intro-paths", rl.Handler(), ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/contacts/c1/matches", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// another contact id hits the same route bucket
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/contacts/c2/matches", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, "6", resp.Header.Get(fiber.HeaderRetryAfter))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/network/intro-paths", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rl.buckets, 2)
}

func TestRateLimiterDisabled(t *testing.T) {
	var rl *RateLimiter = NewRateLimiter(0, zap.NewNop().Sugar())
	require.Nil(t, rl)

	app := fiber.New()
	app.Get("/", rl.Handler(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(60, zap.NewNop().Sugar())
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	rl.bucket(bucketKey{route: "/a", ip: "10.0.0.1"}, now)
	rl.bucket(bucketKey{route: "/a", ip: "10.0.0.2"}, now.Add(10*time.Minute))

	require.Len(t, rl.buckets, 1)
	require.Contains(t, rl.buckets, bucketKey{route: "/a", ip: "10.0.0.2"})
}

func TestRequestLoggerLogsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/healthz", fields["path"])
	require.EqualValues(t, http.StatusNoContent, fields["status"])
	require.NotEmpty(t, fields["request_id"])
}
