package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/accounts", "/api/accounts"},
		{"/api/accounts/", "/api/accounts/"},
		{"/api/accounts/01HZXW2M3K", "/api/accounts/:id"},
		{"/api/transactions/01HZXW2M3K", "/api/transactions/:id"},
		{"/api/budgets/abc", "/api/budgets/:id"},
		{"/api/auth/login", "/api/auth/login"},
		{"/api/reports/summary", "/api/reports/summary"},
		{"/metrics", "/metrics"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
