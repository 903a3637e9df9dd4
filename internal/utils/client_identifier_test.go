package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for first valid", map[string]string{"X-Forwarded-For": "garbage, 203.0.113.7, 10.0.0.1"}, "192.0.2.1:1234", "203.0.113.7"},
		{"x-real-ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "192.0.2.1:1234", "198.51.100.2"},
		{"forwarded header", map[string]string{"Forwarded": `proto=https; for="2001:db8::1"`}, "192.0.2.1:1234", "2001:db8::1"},
		{"remote addr", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"invalid headers fall back to remote addr", map[string]string{"X-Real-IP": "nope"}, "192.0.2.9:80", "192.0.2.9"},
		{"nothing usable", nil, "pipe", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIdentifier(r))
		})
	}
}
