package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers lists the proxy headers consulted by FromRequest, in priority order.
// Only trust them when the app runs behind a proxy that overwrites them.
var Headers = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the client address of r: the first valid address found
// in Headers, else the host part of RemoteAddr. It returns "" when nothing
// parses.
func FromRequest(r *http.Request) string {
	for _, header := range Headers {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For lists the client first, then each proxy.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parse(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

// parse validates s and returns its canonical form, "" when invalid.
func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
