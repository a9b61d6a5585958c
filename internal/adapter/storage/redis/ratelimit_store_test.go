package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "team1:webhook_test", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "team1:webhook_test", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "team2:webhook_test", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("counter keys expire", func(t *testing.T) {
		keys := mr.Keys()
		require.NotEmpty(t, keys)
		for _, k := range keys {
			assert.Equal(t, 61*time.Second, mr.TTL(k), k)
		}
	})
}

func TestRateLimitStore_NewWindowResets(t *testing.T) {
	_, client := newTestClient(t)
	store := NewRateLimitStore(client)
	now := time.Date(2025, 6, 1, 12, 0, 30, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Allow(ctx, "team3:webhook_test", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "team3:webhook_test", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC).Unix(), result.ResetAt)

	now = now.Add(time.Minute)
	result, err = store.Allow(ctx, "team3:webhook_test", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
