package integration

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fittogether/backend/internal/middleware"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Ready to accept connections"),
			wait.ForListeningPort("6379/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error cleaning up redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRateLimiterWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := setupTestRedis(t)
	ctx := context.Background()

	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     3,
		KeyPrefix: "rate_limit:coach",
	})

	// An untouched window reports the full allowance.
	remaining, _, err := limiter.GetRemainingRequests(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	for i := 0; i < 3; i++ {
		allowed, remaining, _, err := limiter.IsAllowed(ctx, "user-a")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, _, err := limiter.IsAllowed(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Reading the quota does not consume it.
	remaining, resetTime, err := limiter.GetRemainingRequests(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.True(t, resetTime.After(time.Now()))

	// Other users have their own window.
	remaining, _, err = limiter.GetRemainingRequests(ctx, "user-b")
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}
