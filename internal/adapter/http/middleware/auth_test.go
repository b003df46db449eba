package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuth(t *testing.T) {
	var gotUser string
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user header, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set(UserIDHeader, "user-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with user header, got %d", rec.Code)
	}
	if gotUser != "user-1" {
		t.Fatalf("expected user-1 on context, got %q", gotUser)
	}
}

func TestRequireCronSecret(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		secret        string
		authorization string
		expected      int
	}{
		{name: "empty secret disables endpoint", secret: "", authorization: "Bearer anything", expected: http.StatusForbidden},
		{name: "missing header", secret: "s3cret", authorization: "", expected: http.StatusUnauthorized},
		{name: "wrong secret", secret: "s3cret", authorization: "Bearer wrong", expected: http.StatusUnauthorized},
		{name: "correct secret", secret: "s3cret", authorization: "Bearer s3cret", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireCronSecret(tt.secret)(next)
			req := httptest.NewRequest(http.MethodPost, "/api/cron/recurrences", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
