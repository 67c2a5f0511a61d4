package ledger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"corporate-web/feature/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("asset_id,monetized_value\nte-1234,10\nto-5555,3\n"))
	}))
	defer server.Close()

	src := ledger.NewHTTPSource(server.URL, 5*time.Second)
	l, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	v, ok := l.Value("te-1234")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)
}

func TestHTTPSource_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := ledger.NewHTTPSource(server.URL, 5*time.Second)
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPSource_Fetch_Unreachable(t *testing.T) {
	// Closed server: the fetch must fail, not hang.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	src := ledger.NewHTTPSource(url, 2*time.Second)
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}
