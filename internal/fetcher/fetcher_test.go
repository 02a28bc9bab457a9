// internal/fetcher/fetcher_test.go
package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssantiago/sales-analytics/internal/config"
)

func testClient(baseURL string) *Client {
	return New(config.SourceConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		RatePerSecond:  100,
	})
}

func TestFetchCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":1,"title":"Mascara","price":9.99},{"id":2,"title":"Serum"}],"total":2,"skip":0,"limit":30}`))
	}))
	defer server.Close()

	records, err := testClient(server.URL).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Mascara", records[0]["title"])
	assert.Equal(t, 9.99, records[0]["price"])
}

func TestFetchCollectionNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Users(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetchCollectionMissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Carts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing the "carts" key`)
}

func TestFetchCollectionMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Products(context.Background())
	assert.Error(t, err)
}

func TestFetchCollectionUnreachable(t *testing.T) {
	// A closed server yields a transport error, not a panic.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).Products(context.Background())
	assert.Error(t, err)
}
