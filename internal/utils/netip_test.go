package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remote: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "headers ignored without trust", remote: "10.0.0.1:1234", headers: map[string]string{"X-Forwarded-For": "1.2.3.4"}, want: "10.0.0.1"},
		{name: "cloudflare first", remote: "10.0.0.1:1", headers: map[string]string{"CF-Connecting-IP": "5.6.7.8", "X-Forwarded-For": "1.2.3.4"}, trustProxy: true, want: "5.6.7.8"},
		{name: "left-most forwarded", remote: "10.0.0.1:1", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.2"}, trustProxy: true, want: "1.2.3.4"},
		{name: "real ip", remote: "10.0.0.1:1", headers: map[string]string{"X-Real-IP": "9.9.9.9"}, trustProxy: true, want: "9.9.9.9"},
		{name: "ipv6 remote", remote: "[::1]:8080", want: "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", "192.168.1.10", " ", "garbage", "::1"})
	if m.IsEmpty() {
		t.Fatal("matcher should not be empty")
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.10", true},
		{"192.168.1.11", false},
		{"::1", true},
		{"::ffff:10.0.0.5", true},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("nil list should give an empty matcher")
	}
}
