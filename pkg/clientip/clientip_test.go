package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/catalyst/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.10:1234", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.10", want: "192.0.2.10"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "ipv4 mapped", remoteAddr: "[::ffff:192.0.2.1]:80", want: "192.0.2.1"},
		{
			name:       "cloudflare first",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.5",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.1",
		},
		{
			name:       "invalid headers fall back",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			remoteAddr: "10.0.0.1:80",
			want:       "10.0.0.1",
		},
		{name: "nothing valid", remoteAddr: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r))
		})
	}
}
