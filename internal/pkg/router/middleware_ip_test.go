package router

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "prefers true-client-ip",
			headers: map[string]string{"True-Client-IP": "203.0.113.7", "X-Real-IP": "198.51.100.1"},
			remote:  "10.0.0.1:1234",
			want:    "203.0.113.7",
		},
		{
			name:    "falls back to x-real-ip",
			headers: map[string]string{"X-Real-IP": "198.51.100.1"},
			remote:  "10.0.0.1:1234",
			want:    "198.51.100.1",
		},
		{
			name:    "takes the first forwarded-for hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7,10.0.0.2"},
			remote:  "10.0.0.1:1234",
			want:    "203.0.113.7",
		},
		{
			name:    "ignores an unparsable header and uses the peer address",
			headers: map[string]string{"X-Real-IP": "not-an-ip"},
			remote:  "192.0.2.9:5678",
			want:    "192.0.2.9",
		},
		{
			name:   "empty when nothing parses",
			remote: "bogus",
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			if got := clientIP(r); got != tc.want {
				t.Fatalf("clientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
