// Package clientip resolves the address a request came from. Forwarding
// headers are only believed when the connection itself comes from a
// configured proxy; otherwise any client could pick its own address.
package clientip

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Resolver maps a request to its client address. The zero Resolver trusts
// no proxy and always answers with the connection address.
type Resolver struct {
	trusted []netip.Prefix
}

// Parse reads a comma-separated list of proxy addresses and CIDR ranges,
// e.g. "10.0.0.0/8, 127.0.0.1". A blank list trusts no proxy.
func Parse(list string) (Resolver, error) {
	var rs Resolver
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.Contains(f, "/") {
			p, err := netip.ParsePrefix(f)
			if err != nil {
				return Resolver{}, fmt.Errorf("clientip: trusted proxy %q: %w", f, err)
			}
			rs.trusted = append(rs.trusted, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(f)
		if err != nil {
			return Resolver{}, fmt.Errorf("clientip: trusted proxy %q: %w", f, err)
		}
		a = a.Unmap()
		rs.trusted = append(rs.trusted, netip.PrefixFrom(a, a.BitLen()))
	}
	return rs, nil
}

// IP returns the client address of r.
//
// When the peer is a trusted proxy, X-Forwarded-For is walked from the
// nearest hop outwards and the first untrusted hop wins. X-Real-IP is used
// when the proxy sent no usable X-Forwarded-For.
func (rs Resolver) IP(r *http.Request) string {
	peer := host(r.RemoteAddr)
	if !rs.trusts(peer) {
		return peer
	}
	if vals := r.Header.Values("X-Forwarded-For"); len(vals) > 0 {
		hops := strings.Split(strings.Join(vals, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				break
			}
			if !rs.trusts(hop) || i == 0 {
				return hop
			}
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}
	return peer
}

func (rs Resolver) trusts(s string) bool {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range rs.trusted {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

func host(remoteAddr string) string {
	h, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return h
}
