package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestIdempotencyMiddleware_UserScopedReplay(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var calls int
	handler := Auth(mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"tx-1"}`))
	})))

	do := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
		req.Header.Set(UserIDHeader, user)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := do("user-a")
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}
	if first.Header().Get("X-Idempotency-Replay") != "" {
		t.Fatal("first request should not be marked as replay")
	}

	second := do("user-a")
	if second.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("retry with same key and user should replay the cached response")
	}
	if second.Body.String() != `{"id":"tx-1"}` {
		t.Fatalf("unexpected replayed body: %s", second.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler should run once for user-a, ran %d times", calls)
	}

	// Same key, different user: must not collide.
	third := do("user-b")
	if third.Header().Get("X-Idempotency-Replay") != "" {
		t.Fatal("another user reusing the key must not see the cached response")
	}
	if calls != 2 {
		t.Fatalf("handler should run for user-b, total calls %d", calls)
	}
	if _, ok := store.values["user-a:key-1"]; !ok {
		t.Fatal("expected key scoped under user-a")
	}
	if _, ok := store.values["user-b:key-1"]; !ok {
		t.Fatal("expected key scoped under user-b")
	}
}

func TestIdempotencyMiddleware_SkipsNonMutatingRequests(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if len(store.values) != 0 {
		t.Fatalf("GET requests must bypass the store, found %d entries", len(store.values))
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailedResponses(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var calls int
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	req2 := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	req2.Header.Set(IdempotencyKeyHeader, "key-1")
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)

	if rec2.Header().Get("X-Idempotency-Replay") == "true" {
		t.Fatal("failed responses must not be replayed")
	}
	if calls != 2 {
		t.Fatalf("handler should run on retry after a failure, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_StoreErrorFailsRequest(t *testing.T) {
	store := newFakeIdempotencyStore()
	store.checkAndSetFn = func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
		return false, nil, errors.New("redis down")
	}
	mw := NewIdempotencyMiddleware(store, time.Minute)

	called := false
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the store fails, got %d", rec.Code)
	}
	if called {
		t.Fatal("handler must not run when the idempotency check fails")
	}
}

type fakeIdempotencyStore struct {
	mu            sync.Mutex
	values        map[string][]byte
	checkAndSetFn func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{values: make(map[string][]byte)}
}

func (f *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if f.checkAndSetFn != nil {
		return f.checkAndSetFn(ctx, key, response, ttl)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return true, v, nil
	}
	f.values[key] = []byte("processing")
	return false, nil, nil
}

func (f *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = response
	return nil
}
