package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires Redis running on localhost:6379
const testRedisAddr = "localhost:6379"

func setupTestRedis(t *testing.T, prefix string) *Redis {
	t.Helper()

	r, err := NewRedis(testRedisAddr, prefix)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() {
		keys, _ := r.client.Keys(context.Background(), prefix+"*").Result()
		if len(keys) > 0 {
			r.client.Del(context.Background(), keys...)
		}
		r.Close()
	})
	return r
}

func TestRedisGetMissingKey(t *testing.T) {
	r := setupTestRedis(t, "focus-test-missing:")

	value, err := r.GetSetting("focus-tracker-tasks")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisSetAndGet(t *testing.T) {
	r := setupTestRedis(t, "focus-test-set:")

	require.NoError(t, r.SetSetting("focus-tracker-tasks", "[]"))
	value, err := r.GetSetting("focus-tracker-tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	raw, err := r.client.Get(context.Background(), "focus-test-set:focus-tracker-tasks").Result()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}
