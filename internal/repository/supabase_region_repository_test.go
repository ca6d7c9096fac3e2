package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DialectGlobe-App/internal/infrastructure/database"
)

func TestSupabaseRegionRepository_OrdersByName(t *testing.T) {
	var gotOrder, gotSelect string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrder = r.URL.Query().Get("order")
		gotSelect = r.URL.Query().Get("select")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Range", "0-1/2")
		_, _ = w.Write([]byte(`[
			{"name":"London","latitude":51.505,"longitude":-0.09,"dialect":"British English"},
			{"name":"Paris","latitude":48.8566,"longitude":2.3522,"dialect":"French"}
		]`))
	}))
	defer srv.Close()

	client, err := database.NewSupabaseClientWithKey(srv.URL, "anon")
	require.NoError(t, err)

	regions, err := NewSupabaseRegionRepository(client).GetAll(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotOrder, "name.asc"), "order=%s", gotOrder)
	assert.Equal(t, "name,latitude,longitude,dialect", gotSelect)
	require.Len(t, regions, 2)
	assert.Equal(t, "London", regions[0].Name)
	assert.InDelta(t, 51.505, regions[0].Latitude(), 1e-9)
	assert.Equal(t, "French", regions[1].Dialect)
}
