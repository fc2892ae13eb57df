// Package session issues and verifies HMAC-signed session cookies.
//
// Cookie value format: base64url(userID:issuedAtMillis:expiresAtMillis).base64url(hmac-sha256)
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	CookieName = "session"
	MinSecret  = 32
)

var (
	ErrMalformed = errors.New("malformed session")
	ErrSignature = errors.New("invalid session signature")
	ErrExpired   = errors.New("session expired")
)

// Claims is the verified content of a session cookie
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedNotBefore reports whether the session was created at or after t,
// both compared at millisecond precision
func (c *Claims) IssuedNotBefore(t time.Time) bool {
	return !c.IssuedAt.Before(t.Truncate(time.Millisecond))
}

type Codec struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type Option func(*Codec)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func NewCodec(secret string, ttl time.Duration, secure bool, opts ...Option) (*Codec, error) {
	if len(secret) < MinSecret {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecret)
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	c := &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a signed session value for userID
func (c *Codec) Issue(userID string) (string, *Claims, error) {
	if userID == "" || strings.Contains(userID, ":") {
		return "", nil, fmt.Errorf("%w: bad user id", ErrMalformed)
	}

	now := c.now().Truncate(time.Millisecond)
	claims := &Claims{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	payload := fmt.Sprintf("%s:%d:%d", claims.UserID, claims.IssuedAt.UnixMilli(), claims.ExpiresAt.UnixMilli())
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))

	return encoded + "." + c.sign(encoded), claims, nil
}

// Verify checks the signature and expiry of value
func (c *Codec) Verify(value string) (*Claims, error) {
	encoded, signature, ok := strings.Cut(value, ".")
	if !ok || encoded == "" || signature == "" {
		return nil, ErrMalformed
	}

	if !hmac.Equal([]byte(c.sign(encoded)), []byte(signature)) {
		return nil, ErrSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return nil, ErrMalformed
	}

	issued, err1 := strconv.ParseInt(parts[1], 10, 64)
	expires, err2 := strconv.ParseInt(parts[2], 10, 64)
	if err1 != nil || err2 != nil {
		return nil, ErrMalformed
	}

	claims := &Claims{
		UserID:    parts[0],
		IssuedAt:  time.UnixMilli(issued),
		ExpiresAt: time.UnixMilli(expires),
	}
	if !c.now().Before(claims.ExpiresAt) {
		return nil, ErrExpired
	}

	return claims, nil
}

func (c *Codec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SetCookie writes the session cookie
func (c *Codec) SetCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.ttl.Seconds()),
	})
}

// ClearCookie expires the session cookie
func (c *Codec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// FromRequest returns the raw session cookie value, or "" when absent
func FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
