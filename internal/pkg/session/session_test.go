package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newCodec(t *testing.T, c *clock) *session.Codec {
	t.Helper()
	codec, err := session.NewCodec(testSecret, time.Hour, true, session.WithClock(c.now))
	require.NoError(t, err)
	return codec
}

func TestNewCodec_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := session.NewCodec("short", time.Hour, false)
	require.Error(t, err)

	_, err = session.NewCodec(testSecret, 0, false)
	require.Error(t, err)
}

func TestCodec_IssueVerify(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	codec := newCodec(t, c)

	value, issued, err := codec.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, c.t.Add(time.Hour), issued.ExpiresAt)

	c.t = c.t.Add(30 * time.Minute)
	claims, err := codec.Verify(value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IssuedAt.Equal(issued.IssuedAt))
}

func TestCodec_Expired(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	codec := newCodec(t, c)

	value, _, err := codec.Issue("user-1")
	require.NoError(t, err)

	c.t = c.t.Add(time.Hour)
	_, err = codec.Verify(value)
	assert.ErrorIs(t, err, session.ErrExpired)
}

func TestCodec_Tampered(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Now()}
	codec := newCodec(t, c)

	value, _, err := codec.Issue("user-1")
	require.NoError(t, err)

	payload, sig, _ := strings.Cut(value, ".")
	forged, _, err := newCodec(t, c).Issue("user-2")
	require.NoError(t, err)
	forgedPayload, _, _ := strings.Cut(forged, ".")

	_, err = codec.Verify(forgedPayload + "." + sig)
	assert.ErrorIs(t, err, session.ErrSignature)

	_, err = codec.Verify(payload)
	assert.ErrorIs(t, err, session.ErrMalformed)

	other, err := session.NewCodec(strings.Repeat("x", 32), time.Hour, false, session.WithClock(c.now))
	require.NoError(t, err)
	_, err = other.Verify(value)
	assert.ErrorIs(t, err, session.ErrSignature)
}

func TestClaims_IssuedNotBefore(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	claims := &session.Claims{IssuedAt: issued}

	assert.True(t, claims.IssuedNotBefore(issued.Add(-time.Second)))
	assert.True(t, claims.IssuedNotBefore(issued))
	assert.True(t, claims.IssuedNotBefore(issued.Add(500*time.Microsecond)))
	assert.False(t, claims.IssuedNotBefore(issued.Add(time.Millisecond)))
}

func TestCodec_Cookies(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, &clock{t: time.Now()})

	rec := httptest.NewRecorder()
	codec.SetCookie(rec, "value")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.Equal(t, "value", session.FromRequest(req))
	assert.Equal(t, "", session.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	rec = httptest.NewRecorder()
	codec.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
