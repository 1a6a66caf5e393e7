package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/system/clientip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowAndReset(t *testing.T) {
	l, err := New("2-M")
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "a"))
	assert.True(t, l.Allow(ctx, "a"))
	assert.False(t, l.Allow(ctx, "a"))
	assert.True(t, l.Allow(ctx, "b"), "keys are counted separately")

	l.Reset(ctx, "a")
	assert.Equal(t, int64(2), l.Remaining(ctx, "a"))
	assert.True(t, l.Allow(ctx, "a"))
}

func TestNew_BadRate(t *testing.T) {
	_, err := New("ten per minute")
	assert.Error(t, err)
}

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate(""))
	assert.NoError(t, ValidateRate("10-M"))
	assert.NoError(t, ValidateRate("1000-H"))
	assert.Error(t, ValidateRate("ten per minute"))
	assert.Error(t, ValidateRate("10-Y"))
}

func TestLoginLimiter(t *testing.T) {
	ll, err := NewLoginLimiter("100-M", "2-M", clientip.Resolver{})
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/login", nil)
	ok, _ := ll.Check(r, "Ana")
	assert.True(t, ok)
	ok, _ = ll.Check(r, " ana ")
	assert.True(t, ok)
	ok, reason := ll.Check(r, "ANA")
	assert.False(t, ok)
	assert.Contains(t, reason, "this account")

	ll.ResetUser(r.Context(), "ana")
	ok, _ = ll.Check(r, "ana")
	assert.True(t, ok)

	ip, err := NewLoginLimiter("1-M", "", clientip.Resolver{})
	require.NoError(t, err)
	ok, _ = ip.Check(r, "")
	assert.True(t, ok)
	ok, reason = ip.Check(r, "someone-else")
	assert.False(t, ok)
	assert.Contains(t, reason, "wait a minute")
}

func TestLoginLimiter_ForgedForwardingDoesNotResetIPCount(t *testing.T) {
	ll, err := NewLoginLimiter("2-M", "100-M", clientip.Resolver{})
	require.NoError(t, err)

	for i, forged := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		r := httptest.NewRequest("POST", "/login", nil)
		r.RemoteAddr = "203.0.113.9:4000"
		r.Header.Set("X-Forwarded-For", forged)
		ok, _ := ll.Check(r, "")
		assert.Equal(t, i < 2, ok, "attempt %d", i+1)
	}
}

func TestLoginLimiter_TrustedProxyCountsForwardedClient(t *testing.T) {
	proxies, err := clientip.Parse("10.0.0.0/8")
	require.NoError(t, err)
	ll, err := NewLoginLimiter("1-M", "100-M", proxies)
	require.NoError(t, err)

	from := func(client string) *http.Request {
		r := httptest.NewRequest("POST", "/login", nil)
		r.RemoteAddr = "10.0.0.1:4000"
		r.Header.Set("X-Forwarded-For", client)
		return r
	}
	ok, _ := ll.Check(from("198.51.100.1"), "")
	assert.True(t, ok)
	ok, _ = ll.Check(from("198.51.100.2"), "")
	assert.True(t, ok, "a second client behind the same proxy has its own count")
	ok, _ = ll.Check(from("198.51.100.1"), "")
	assert.False(t, ok)
}

func TestLoginLimiter_AttemptsLeft(t *testing.T) {
	ll, err := NewLoginLimiter("100-M", "3-M", clientip.Resolver{})
	require.NoError(t, err)
	r := httptest.NewRequest("POST", "/login", nil)
	ctx := r.Context()

	assert.Equal(t, int64(3), ll.AttemptsLeft(ctx, "ana"))
	ll.Check(r, "Ana")
	assert.Equal(t, int64(2), ll.AttemptsLeft(ctx, " ANA "))
	assert.Equal(t, int64(3), ll.AttemptsLeft(ctx, ""))

	ll.ResetUser(ctx, "ana")
	assert.Equal(t, int64(3), ll.AttemptsLeft(ctx, "ana"))
}
