package supplier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stocksync/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

// newTestClient avoids the cloudflare bypass transport so tests stay
// against the local fixture server only.
func newTestClient() *Client {
	return &Client{
		Http:      resty.New(),
		Extractor: NewLabelExtractor(DefaultLabel),
	}
}

func TestFetchQuantity(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:supplier")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stocked":
			w.Write([]byte(`<html><body><div>Available Stock: 109 Meters</div></body></html>`))
		case "/empty":
			w.Write([]byte(`<html><body><p>Nothing to see</p></body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient()
	ctx := context.Background()

	quantity, err := client.FetchQuantity(ctx, server.URL+"/stocked")
	require.NoError(t, err)
	require.Equal(t, 109, quantity)

	_, err = client.FetchQuantity(ctx, server.URL+"/empty")
	require.True(t, errors.Is(err, ErrStockNotFound))

	_, err = client.FetchQuantity(ctx, server.URL+"/missing")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrStockNotFound))
	require.False(t, errors.Is(err, ErrStockUnparsable))
}

func TestFetchQuantityNavigationFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:supplier")
	defer cleanup()

	client := newTestClient()

	// nothing listens here
	_, err := client.FetchQuantity(context.Background(), "http://127.0.0.1:1/page")
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)
	require.NotNil(t, client.Http)
	require.NotNil(t, client.Extractor)
}
