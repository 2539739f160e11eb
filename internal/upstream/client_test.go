package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

const fullPayload = `{
	"metadata": {"last_updated": "2025-06-01 10:00:00", "updated_by": "backend"},
	"categories": {
		"web-development": [
			{"username": "alice", "short_description": "React and Node expert", "price": 50, "rating": 4.5, "reviews": 10},
			{"username": "bob", "short_description": "PHP developer", "price": 30, "rating": 4.0, "reviews": 5}
		],
		"cloud-devops": [
			{"username": "dave", "short_description": "AWS engineer", "price": 90, "rating": 4.8, "reviews": 20}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *store.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := store.New()
	return NewClient(server.URL, 5*time.Second, s), s
}

func TestLoadAll_PopulatesStoreAndMetadata(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_freelancers", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("action"))
		w.Write([]byte(fullPayload))
	})

	require.NoError(t, client.LoadAll(context.Background()))

	assert.Len(t, s.Get(catalog.CategoryWebDevelopment), 2)
	assert.Len(t, s.Get(catalog.CategoryCloudDevOps), 1)
	assert.Equal(t, "backend", s.Metadata().UpdatedBy)
	assert.Equal(t, "2025-06-01 10:00:00", s.Metadata().LastUpdated)
}

func TestLoadAll_ErrorLeavesStoreUntouched(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.LoadAll(context.Background())

	assert.Error(t, err)
	assert.True(t, s.Empty())
}

func TestLoadAll_MalformedBody(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "the shape you expect"`))
	})

	assert.Error(t, client.LoadAll(context.Background()))
	assert.True(t, s.Empty())
}

func TestLoadAll_SkipsUnknownCategories(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories": {"gardening": [{"username": "zed"}], "web-development": [{"username": "alice"}]}}`))
	})

	require.NoError(t, client.LoadAll(context.Background()))

	assert.Len(t, s.Get(catalog.CategoryWebDevelopment), 1)
	assert.Len(t, s.All(), 1)
}

func TestLoadCategory_OverwritesEntry(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "category", r.URL.Query().Get("action"))
		assert.Equal(t, "web-development", r.URL.Query().Get("category"))
		w.Write([]byte(`{"categories": {"web-development": [{"username": "carol", "price": 120}]}}`))
	})
	s.SetCategory(catalog.CategoryWebDevelopment, []catalog.Freelancer{{Username: "old"}})

	records, err := client.LoadCategory(context.Background(), catalog.CategoryWebDevelopment)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "carol", records[0].Username)
	assert.Equal(t, "carol", s.Get(catalog.CategoryWebDevelopment)[0].Username)
}

func TestLoadCategory_ErrorDoesNotMutateStore(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	s.SetCategory(catalog.CategoryWebDevelopment, []catalog.Freelancer{{Username: "alice"}})

	_, err := client.LoadCategory(context.Background(), catalog.CategoryWebDevelopment)

	assert.Error(t, err)
	assert.Equal(t, "alice", s.Get(catalog.CategoryWebDevelopment)[0].Username)
}

func TestSearch_EmptyQuerySkipsUpstream(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result, err := client.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.False(t, called)
}

func TestSearch_RemoteResultsFlattenedWithCategory(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "search", r.URL.Query().Get("action"))
		assert.Equal(t, "developer", r.URL.Query().Get("search"))
		w.Write([]byte(fullPayload))
	})

	result, err := client.Search(context.Background(), "  Developer ")

	require.NoError(t, err)
	assert.False(t, result.Fallback)
	require.Len(t, result.Results, 3)
	assert.Equal(t, catalog.CategoryWebDevelopment, result.Results[0].Category)
	assert.Equal(t, catalog.CategoryCloudDevOps, result.Results[2].Category)
}

func TestSearch_FallsBackToLocalScan(t *testing.T) {
	client, s := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	s.SetCategory(catalog.CategoryWebDevelopment, []catalog.Freelancer{
		{Username: "alice", ShortDescription: "React and Node expert", Price: 50, Rating: 4.5, Reviews: 10},
		{Username: "bob", ShortDescription: "PHP developer", Price: 30},
	})

	result, err := client.Search(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "alice", result.Results[0].Username)

	// Совпадение по описанию тоже учитывается.
	result, err = client.Search(context.Background(), "node EXPERT")
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "alice", result.Results[0].Username)
}

func TestSearch_EmptyCacheOnFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Search(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrEmptyCache)
}
