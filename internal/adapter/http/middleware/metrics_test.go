package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "collection", path: "/api/transactions", expected: "/api/transactions"},
		{name: "resource id", path: "/api/transactions/01HZX3", expected: "/api/transactions/:id"},
		{name: "nested action", path: "/api/transactions/01HZX3/group", expected: "/api/transactions/:id/group"},
		{name: "card invoices", path: "/api/cards/01HZX3/invoices", expected: "/api/cards/:id/invoices"},
		{name: "pay invoice", path: "/api/invoices/01HZX3/pay", expected: "/api/invoices/:id/pay"},
		{name: "investment id", path: "/api/investments/01HZX3", expected: "/api/investments/:id"},
		{name: "non resource", path: "/api/cron/recurrences", expected: "/api/cron/recurrences"},
		{name: "trailing slash", path: "/api/accounts/", expected: "/api/accounts/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}
