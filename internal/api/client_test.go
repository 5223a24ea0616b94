package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidmontoya/vesper/internal/dialogue"
	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return cfg
}

func TestFetchContent_DecodesLooseRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/content", r.URL.Path)
		assert.Equal(t, "lisbon", r.URL.Query().Get("city"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"type":"event","title":"Afro Fest","genre":"Afrobeats","timestamp":"2025-06-15T22:00:00Z","popularityScore":91.5},
			{"type":"venue","name":"Club Nox","musicGenre":"House","vibeTags":["Rooftop","Late Night"]},
			{"title":"Mystery Night"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	records, err := client.FetchContent(context.Background(), "lisbon")
	require.NoError(t, err)
	require.Len(t, records, 3)

	afro := records[0]
	assert.Equal(t, domain.KindEvent, afro.Kind)
	assert.Equal(t, "Afro Fest", afro.Name, "title maps to name")
	assert.Equal(t, "2025-06-15T22:00:00Z", afro.StartsAt)
	require.NotNil(t, afro.PopularityScore)
	assert.Equal(t, 91.5, *afro.PopularityScore)

	nox := records[1]
	assert.Equal(t, domain.KindVenue, nox.Kind)
	assert.Equal(t, []string{"Rooftop", "Late Night"}, nox.VibeTags)
	assert.Nil(t, nox.PopularityScore, "absent score stays absent, not zero")

	// No explicit type: title implies an event.
	assert.Equal(t, domain.KindEvent, records[2].Kind)
}

func TestFetchContent_EmptyListIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	records, err := client.FetchContent(context.Background(), "lisbon")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecommend_SendsContextAndKeepsListOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/recommendations", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req recommendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lisbon", req.City)
		assert.Equal(t, "Dinner", req.Context.Vibe)
		assert.Equal(t, "Japanese", req.Context.Cuisine)

		_, _ = w.Write([]byte(`{
			"picks":[{"name":"Kampai"},{"name":"Umami Bar"}],
			"after":[{"name":"Club Nox"}],
			"events":[{"title":"Afro Fest"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	recs, err := client.Recommend(context.Background(), "lisbon", dialogue.RecommendationContext{
		Vibe:    "Dinner",
		Cuisine: "Japanese",
	})
	require.NoError(t, err)

	require.Len(t, recs.Primary, 2)
	assert.Equal(t, "Kampai", recs.Primary[0].Name, "list order is the server's, untouched")
	assert.Equal(t, "Umami Bar", recs.Primary[1].Name)
	require.Len(t, recs.After, 1)
	require.Len(t, recs.Events, 1)
}

func TestFetchContent_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.FetchContent(context.Background(), "lisbon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestFetchContent_Unavailable(t *testing.T) {
	// Nothing is listening on this port.
	client := NewClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	_, err := client.FetchContent(context.Background(), "lisbon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.TimeoutMs)
	assert.GreaterOrEqual(t, cfg.MaxRetries, 0)
	assert.NotEmpty(t, cfg.Endpoint)
}
