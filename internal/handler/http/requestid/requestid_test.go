package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "abc", FromContext(WithRequestID(context.Background(), "abc")))
	assert.Equal(t, "", FromContext(context.Background()))
	assert.Equal(t, "", FromContext(context.WithValue(context.Background(), RequestIDKey, 12345)))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "uuid is kept", incoming: "3f1f5a9e-6a0e-4d8c-9f55-0d1f3c1c2b7a", keep: true},
		{name: "cdn style id is kept", incoming: "edge-1:abc.123_x", keep: true},
		{name: "missing header generates", incoming: ""},
		{name: "header injection is replaced", incoming: "abc\r\nX-Evil: 1"},
		{name: "spaces are replaced", incoming: "hello world"},
		{name: "overlong id is replaced", incoming: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/pages/home", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
				return
			}
			_, err := uuid.Parse(seen)
			require.NoError(t, err, "expected generated UUID, got %q", seen)
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	ids := make(map[string]struct{})
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rec.Header().Get(RequestIDHeader)] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestMiddleware_ReusesCanonicalHeader(t *testing.T) {
	const incoming = "3f1f5a9e-6a0e-4d8c-9f55-0d1f3c1c2b7a"

	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	// クライアントは正規化されたヘッダ名で送ってくる
	req := httptest.NewRequest(http.MethodGet, "/pages/home", nil)
	req.Header.Set("X-Request-Id", incoming)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}
