package delivery

import (
	"fmt"
	"net"
	"net/url"
)

// URLPolicy validates delivery targets before any connection is made.
// Tenant-supplied URLs must not reach internal infrastructure.
type URLPolicy struct {
	// AllowInsecureLocal permits plain HTTP and loopback/private targets.
	// Local development only.
	AllowInsecureLocal bool

	// lookupHost is swappable for tests.
	lookupHost func(host string) ([]net.IP, error)
}

// NewURLPolicy creates a policy with the standard resolver.
func NewURLPolicy(allowInsecureLocal bool) *URLPolicy {
	return &URLPolicy{
		AllowInsecureLocal: allowInsecureLocal,
		lookupHost: func(host string) ([]net.IP, error) {
			addrs, err := net.LookupIP(host)
			if err != nil {
				return nil, err
			}
			return addrs, nil
		},
	}
}

// Validate parses and checks a target URL. Returns a classified error when
// the target is blocked.
func (p *URLPolicy) Validate(rawURL string) (*url.URL, *Error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newError(KindURLBlocked, fmt.Errorf("invalid target URL: %w", err))
	}

	if u.Scheme != "https" {
		if !(p.AllowInsecureLocal && u.Scheme == "http") {
			return nil, newError(KindURLBlocked, fmt.Errorf("target scheme %q not allowed, use https", u.Scheme))
		}
	}

	host := u.Hostname()
	if host == "" {
		return nil, newError(KindURLBlocked, fmt.Errorf("target URL has no host"))
	}

	if p.AllowInsecureLocal {
		return u, nil
	}

	// Resolve before connecting so DNS names pointing at internal ranges are
	// caught. The HTTP client may resolve again; the race is accepted.
	if ip := net.ParseIP(host); ip != nil {
		if blockedIP(ip) {
			return nil, newError(KindURLBlocked, fmt.Errorf("target IP %s is not routable externally", ip))
		}
		return u, nil
	}

	ips, err := p.lookupHost(host)
	if err != nil {
		return nil, newError(KindNetwork, fmt.Errorf("resolving target host %q: %w", host, err))
	}
	for _, ip := range ips {
		if blockedIP(ip) {
			return nil, newError(KindURLBlocked, fmt.Errorf("target host %q resolves to blocked address %s", host, ip))
		}
	}

	return u, nil
}

// blockedIP reports whether the address is loopback, private, link-local,
// multicast, or unspecified.
func blockedIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified()
}
