package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/pkg/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()

	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	m, err := session.New([]string{testSecret}, append([]session.Option{session.WithStore(store)}, opts...)...)
	require.NoError(t, err)
	return m, store
}

// sessionCookie returns the session cookie written to rec, if any.
func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func requestWith(c *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if c != nil {
		req.AddCookie(c)
	}
	return req
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no secret", func(t *testing.T) {
		_, err := session.New(nil)
		assert.ErrorIs(t, err, session.ErrNoSecret)

		_, err = session.New([]string{""})
		assert.ErrorIs(t, err, session.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := session.New([]string{"too-short"})
		assert.ErrorIs(t, err, session.ErrSecretTooShort)
	})

	t.Run("from config", func(t *testing.T) {
		cfg := session.DefaultConfig()
		cfg.Secrets = []string{testSecret}
		cfg.CookieName = "app_session"
		cfg.CleanupInterval = 0

		m, err := session.NewFromConfig(cfg)
		require.NoError(t, err)
		defer m.Close()

		rec := httptest.NewRecorder()
		_, err = m.Start(context.Background(), rec, requestWith(nil))
		require.NoError(t, err)
		assert.NotNil(t, sessionCookie(rec, "app_session"))
	})
}

func TestManager_Start(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("new visitor", func(t *testing.T) {
		m, store := newManager(t)

		rec := httptest.NewRecorder()
		s, err := m.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)
		assert.NotEmpty(t, s.Token)
		assert.False(t, s.IsAuthenticated())
		assert.Equal(t, 0, store.Len(), "nothing is persisted before Save")

		c := sessionCookie(rec, "sid")
		require.NotNil(t, c)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, "/", c.Path)
		assert.NotContains(t, c.Value, s.Token, "the cookie carries a signed token")
	})

	t.Run("returning visitor", func(t *testing.T) {
		m, _ := newManager(t)

		rec := httptest.NewRecorder()
		s, err := m.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)

		userID := uuid.New()
		s.SetUser(userID)
		s.Set("theme", "dark")
		require.NoError(t, m.Save(ctx, s))

		loaded, err := m.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
		require.NoError(t, err)
		assert.Equal(t, s.ID, loaded.ID)
		assert.Equal(t, userID, *loaded.UserID)
		theme, _ := loaded.GetString("theme")
		assert.Equal(t, "dark", theme)
	})

	t.Run("forged cookie", func(t *testing.T) {
		m, _ := newManager(t)

		rec := httptest.NewRecorder()
		s, err := m.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)
		require.NoError(t, m.Save(ctx, s))

		forged := &http.Cookie{Name: "sid", Value: s.Token}
		fresh, err := m.Start(ctx, httptest.NewRecorder(), requestWith(forged))
		require.NoError(t, err)
		assert.NotEqual(t, s.ID, fresh.ID)
	})

	t.Run("cookie signed with another secret", func(t *testing.T) {
		other, err := session.New([]string{"ffffffffffffffffffffffffffffffff"})
		require.NoError(t, err)
		defer other.Close()

		rec := httptest.NewRecorder()
		_, err = other.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)

		m, _ := newManager(t)
		s, err := m.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
		require.NoError(t, err)
		assert.False(t, s.IsAuthenticated())
	})

	t.Run("rotated secret still verifies", func(t *testing.T) {
		store := session.NewMemoryStore(0)
		defer store.Close()

		oldSecret := "ffffffffffffffffffffffffffffffff"
		before, err := session.New([]string{oldSecret}, session.WithStore(store))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		s, err := before.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)
		require.NoError(t, before.Save(ctx, s))

		after, err := session.New([]string{testSecret, oldSecret}, session.WithStore(store))
		require.NoError(t, err)

		loaded, err := after.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
		require.NoError(t, err)
		assert.Equal(t, s.ID, loaded.ID)
	})

	t.Run("unsaved token", func(t *testing.T) {
		m, _ := newManager(t)

		rec := httptest.NewRecorder()
		s, err := m.Start(ctx, rec, requestWith(nil))
		require.NoError(t, err)

		again, err := m.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
		require.NoError(t, err)
		assert.NotEqual(t, s.ID, again.ID)
	})
}

func TestManager_Save(t *testing.T) {
	t.Parallel()

	m, store := newManager(t, session.WithTTL(time.Minute))
	ctx := context.Background()

	assert.ErrorIs(t, m.Save(ctx, nil), session.ErrInvalidSession)

	s, err := m.Start(ctx, httptest.NewRecorder(), requestWith(nil))
	require.NoError(t, err)
	s.ExpiresAt = time.Now()

	require.NoError(t, m.Save(ctx, s))
	assert.WithinDuration(t, time.Now().Add(time.Minute), s.ExpiresAt, 5*time.Second)
	assert.Equal(t, 1, store.Len())
}

func TestManager_Regenerate(t *testing.T) {
	t.Parallel()

	m, store := newManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	s, err := m.Start(ctx, rec, requestWith(nil))
	require.NoError(t, err)
	s.Set("cart", "3 items")
	require.NoError(t, m.Save(ctx, s))
	oldCookie := sessionCookie(rec, "sid")
	oldToken := s.Token

	rec = httptest.NewRecorder()
	require.NoError(t, m.Regenerate(ctx, rec, s))
	assert.NotEqual(t, oldToken, s.Token)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(ctx, oldToken)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	loaded, err := m.Start(ctx, httptest.NewRecorder(), requestWith(sessionCookie(rec, "sid")))
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
	cart, _ := loaded.GetString("cart")
	assert.Equal(t, "3 items", cart)

	stale, err := m.Start(ctx, httptest.NewRecorder(), requestWith(oldCookie))
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, stale.ID)

	assert.ErrorIs(t, m.Regenerate(ctx, rec, nil), session.ErrInvalidSession)
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	m, store := newManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	s, err := m.Start(ctx, rec, requestWith(nil))
	require.NoError(t, err)
	s.SetUser(uuid.New())
	require.NoError(t, m.Save(ctx, s))

	rec = httptest.NewRecorder()
	require.NoError(t, m.Destroy(ctx, rec, s))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token)
	assert.Equal(t, 0, store.Len())

	c := sessionCookie(rec, "sid")
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)

	require.NoError(t, m.Save(ctx, s), "saving a destroyed session is a no-op")
	assert.Equal(t, 0, store.Len())
}
