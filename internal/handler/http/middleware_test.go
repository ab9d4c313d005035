package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name: "explicit status",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("hello"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   5,
		},
		{
			name:       "implicit ok",
			write:      func(w http.ResponseWriter) { _, _ = w.Write([]byte("abc")) },
			wantStatus: http.StatusOK,
			wantSize:   3,
		},
		{
			name: "second status ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
		})
	}
}

// ─────────────────────────────────────────────
// withLogging / withTraceID
// ─────────────────────────────────────────────

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}, traceIDs: utils.NewUUIDGenerator()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("secret-cipher-text"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/version", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("secret-cipher-text"), entry["size"])
	assert.Equal(t, "trace-42", entry["trace_id"])
	assert.NotContains(t, buf.String(), "secret-cipher-text")
}

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	rr := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rr.Header().Get(traceIDHeader), 36)
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip(t *testing.T) {
	const payload = `{"passwords":[]}`

	t.Run("compresses when accepted", func(t *testing.T) {
		handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rr.Body.String())
	})

	t.Run("no content is not compressed", func(t *testing.T) {
		handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("decompresses request body", func(t *testing.T) {
		var compressed bytes.Buffer
		zw := gzip.NewWriter(&compressed)
		_, _ = zw.Write([]byte(payload))
		require.NoError(t, zw.Close())

		var got string
		handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			got = string(b)
		}))

		req := httptest.NewRequest(http.MethodPut, "/", &compressed)
		req.Header.Set("Content-Encoding", "gzip")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, payload, got)
	})

	t.Run("invalid gzip body", func(t *testing.T) {
		handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not be called")
		}))

		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// ─────────────────────────────────────────────
// vaultHashing
// ─────────────────────────────────────────────

func TestVaultHashing_NilHasherPassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	called := false

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"passwords":[],"hash":"bogus"}`))
	h.vaultHashing(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}

func TestVaultHashing_RestoresBody(t *testing.T) {
	h := &Handler{logger: logger.Nop(), hasher: utils.NewHasher(testHashKey)}
	body := saveBody(t, testRecords, testHashKey)

	var forwarded []byte
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.vaultHashing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded, _ = io.ReadAll(r.Body)
	})).ServeHTTP(rr, req)

	assert.Equal(t, body, forwarded)
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc ", want: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer  ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("pong")) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestCheckHTTPMethod_ParameterisedRoute(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/vault/"+testAccountID, nil)
	req.Header.Set("Authorization", bearer(t, testAccountID))
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
