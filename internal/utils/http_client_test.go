package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	require.NotNil(t, c1.Client)
	assert.NotSame(t, c1.Client, c2.Client)
}

func TestNewHTTPClient_RetriesUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.EqualValues(t, 2, calls.Load())
}

func TestNewHTTPClient_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	assert.EqualValues(t, 1, calls.Load())
}
