package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sithum-sy/hireme-client/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContainer(t *testing.T, handler http.HandlerFunc) *Container {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.NewClient(server.Client(), api.WithBaseURL(server.URL))
	return NewContainer(client, zap.NewNop())
}

func TestContainer_FetchAndUpdateBusiness(t *testing.T) {
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"success":true,"data":{"business_name":"Acme","years_of_experience":3}}`))
		case r.Method == http.MethodPut:
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Acme Ltd", body["business_name"])
			w.Write([]byte(`{"success":true,"data":{"business_name":"Acme Ltd","years_of_experience":3}}`))
		}
	})

	require.True(t, c.Fetch(context.Background()).Success)
	require.NotNil(t, c.Snapshot().Profile)

	res := c.UpdateBusiness(context.Background(), map[string]interface{}{"business_name": "Acme Ltd"})
	require.True(t, res.Success)
	assert.Equal(t, "Acme Ltd", *c.Snapshot().Profile.BusinessName)
}

func TestContainer_ToggleAvailability_RollsBackOnFailure(t *testing.T) {
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"success":true,"data":{"business_name":"Acme","is_available":true}}`))
		case http.MethodPatch:
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"success":false,"message":"try later"}`))
		}
	})

	require.True(t, c.Fetch(context.Background()).Success)

	res := c.ToggleAvailability(context.Background(), false)
	assert.False(t, res.Success)
	// The optimistic flip is rolled back.
	assert.True(t, c.Snapshot().Profile.IsAvailable)
}

func TestContainer_Statistics(t *testing.T) {
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/provider/statistics", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"total_earnings":1250.5,"completed_bookings":14,"average_rating":4.7}}`))
	})

	res := c.Statistics(context.Background())
	require.True(t, res.Success)

	stats := c.Snapshot().Statistics
	require.NotNil(t, stats)
	assert.Equal(t, 1250.5, stats.TotalEarnings)
	assert.Equal(t, 14, stats.CompletedBookings)
}
