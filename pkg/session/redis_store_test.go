package session_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/pkg/session"
)

func newRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := newRedisClient(t)
	store := session.NewRedisStore(client, "catalyst_test:session:")
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		s := newStoredSession("redis-token-1", time.Minute)
		s.Set("errors", map[string][]string{"email": {"Enter a valid email address"}})
		require.NoError(t, store.Save(ctx, s))
		t.Cleanup(func() { _ = store.Delete(ctx, s.Token) })

		loaded, err := store.Get(ctx, s.Token)
		require.NoError(t, err)
		assert.Equal(t, s.ID, loaded.ID)

		var errs map[string][]string
		ok, err := loaded.PullInto("errors", &errs)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"Enter a valid email address"}, errs["email"])

		ttl, err := client.TTL(ctx, "catalyst_test:session:redis-token-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.Get(ctx, "redis-token-missing")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("expired save deletes", func(t *testing.T) {
		s := newStoredSession("redis-token-2", time.Minute)
		require.NoError(t, store.Save(ctx, s))

		s.ExpiresAt = time.Now().Add(-time.Second)
		require.NoError(t, store.Save(ctx, s))

		_, err := store.Get(ctx, s.Token)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("corrupt payload is dropped", func(t *testing.T) {
		key := "catalyst_test:session:redis-token-3"
		require.NoError(t, client.Set(ctx, key, "{not json", time.Minute).Err())

		_, err := store.Get(ctx, "redis-token-3")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		n, err := client.Exists(ctx, key).Result()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("manager starts over on a corrupt payload", func(t *testing.T) {
		m, err := session.New([]string{testSecret}, session.WithStore(store))
		require.NoError(t, err)
		defer m.Close()

		rec := httptest.NewRecorder()
		s, err := m.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)
		require.NoError(t, m.Save(ctx, s))
		t.Cleanup(func() { _ = store.Delete(ctx, s.Token) })

		require.NoError(t, client.Set(ctx, "catalyst_test:session:"+s.Token, "garbage", time.Minute).Err())

		fresh, err := m.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
		require.NoError(t, err)
		assert.NotEqual(t, s.ID, fresh.ID)
	})

	t.Run("invalid", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, nil), session.ErrInvalidSession)
		assert.NoError(t, store.DeleteExpired(ctx))
	})
}
