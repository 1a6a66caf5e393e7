// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/system/clientip"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Default rates for login attempts, in limiter's "<limit>-<period>" form.
const (
	DefaultIPRate   = "10-M"
	DefaultUserRate = "5-M"
)

// Limiter counts requests per key against a fixed rate.
// It is safe for concurrent use.
type Limiter struct {
	l *limiter.Limiter
}

// ValidateRate checks a formatted rate without building a limiter. Blank
// is accepted; callers substitute their default.
func ValidateRate(formatted string) error {
	if strings.TrimSpace(formatted) == "" {
		return nil
	}
	if _, err := limiter.NewRateFromFormatted(formatted); err != nil {
		return fmt.Errorf("ratelimit: rate %q: %w", formatted, err)
	}
	return nil
}

// New creates a limiter from a formatted rate such as "10-M" (10 per
// minute) or "100-H". Counters live in process memory.
func New(formatted string) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("ratelimit: rate %q: %w", formatted, err)
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: "hotelhub"})
	return &Limiter{l: limiter.New(store, rate)}, nil
}

// Allow counts one request for key and reports whether it is within the
// rate. A store error lets the request through.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	lc, err := l.l.Get(ctx, key)
	if err != nil {
		return true
	}
	return !lc.Reached
}

// Remaining returns how many requests are left for key in the current
// period without counting one.
func (l *Limiter) Remaining(ctx context.Context, key string) int64 {
	lc, err := l.l.Peek(ctx, key)
	if err != nil {
		return l.l.Rate.Limit
	}
	return lc.Remaining
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) {
	_, _ = l.l.Reset(ctx, key)
}

// LoginLimiter throttles login attempts per client IP and per username, so
// neither one address nor a spread of addresses can grind one account.
type LoginLimiter struct {
	ip      *Limiter
	user    *Limiter
	clients clientip.Resolver
}

// NewLoginLimiter builds a login limiter. Blank rates use the defaults.
// clients decides which address a request is counted against.
func NewLoginLimiter(ipRate, userRate string, clients clientip.Resolver) (*LoginLimiter, error) {
	if strings.TrimSpace(ipRate) == "" {
		ipRate = DefaultIPRate
	}
	if strings.TrimSpace(userRate) == "" {
		userRate = DefaultUserRate
	}
	ip, err := New(ipRate)
	if err != nil {
		return nil, err
	}
	user, err := New(userRate)
	if err != nil {
		return nil, err
	}
	return &LoginLimiter{ip: ip, user: user, clients: clients}, nil
}

// Check counts one attempt and returns (allowed, reason). reason is the
// message to show when the attempt is refused.
func (ll *LoginLimiter) Check(r *http.Request, username string) (bool, string) {
	ctx := r.Context()
	if !ll.ip.Allow(ctx, "ip:"+ll.clients.IP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}
	if key := userKey(username); key != "" {
		if !ll.user.Allow(ctx, key) {
			return false, "Too many login attempts for this account. Please wait a few minutes."
		}
	}
	return true, ""
}

// AttemptsLeft is how many more tries username has in the current period.
// An empty username reports the full allowance.
func (ll *LoginLimiter) AttemptsLeft(ctx context.Context, username string) int64 {
	key := userKey(username)
	if key == "" {
		return ll.user.l.Rate.Limit
	}
	return ll.user.Remaining(ctx, key)
}

// ResetUser clears the username counter after a successful login.
func (ll *LoginLimiter) ResetUser(ctx context.Context, username string) {
	if key := userKey(username); key != "" {
		ll.user.Reset(ctx, key)
	}
}

func userKey(username string) string {
	u := strings.ToLower(strings.TrimSpace(username))
	if u == "" {
		return ""
	}
	return "user:" + u
}
