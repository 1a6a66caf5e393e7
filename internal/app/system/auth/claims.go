package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the dashboard reads from the backend's token. The
// signature is not checked here; the backend verifies it on every call.
type Claims struct {
	Subject   string
	Name      string
	Role      string
	ExpiresAt time.Time // zero when the token carries no exp
}

// ParseClaims decodes a JWT without verifying it. Opaque (non-JWT) tokens
// return ok=false and are still usable as bearer tokens.
func ParseClaims(token string) (Claims, bool) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, false
	}

	c := Claims{}
	c.Subject, _ = mc.GetSubject()
	c.Name = firstString(mc, "name", "username", "preferred_username", "sub")
	c.Role = firstString(mc, "role")
	if c.Role == "" {
		c.Role = firstOfList(mc, "roles", "authorities")
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}

// Expired reports whether the token's exp is in the past at now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

func firstString(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := mc[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func firstOfList(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return strings.TrimPrefix(v, "ROLE_")
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					return strings.TrimPrefix(s, "ROLE_")
				}
			}
		}
	}
	return ""
}
