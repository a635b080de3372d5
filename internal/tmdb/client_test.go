package tmdb

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverByGenres(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "35,10751", r.URL.Query().Get("with_genres"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[{"id":1,"title":"Paddington"}],"total_pages":10,"total_results":200}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	movies, err := client.DiscoverByGenres([]int{35, 10751}, 2)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Paddington", movies[0].Title)
}

func TestGetMovieDetailAppendToResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "keywords,videos,credits", r.URL.Query().Get("append_to_response"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 550,
			"title": "Fight Club",
			"runtime": 139,
			"genres": [{"id": 18, "name": "Drama"}],
			"keywords": {"keywords": [{"id": 1, "name": "insomnia"}]},
			"videos": {"results": [{"id": "v1", "key": "abc", "site": "YouTube"}]},
			"credits": {"cast": [{"id": 1, "name": "Edward Norton"}], "crew": []}
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	detail, err := client.GetMovieDetail(550, "keywords", "videos", "credits")
	require.NoError(t, err)

	assert.Equal(t, "Fight Club", detail.Title)
	assert.Equal(t, 139, detail.Runtime)
	require.Len(t, detail.Keywords, 1)
	assert.Equal(t, "insomnia", detail.Keywords[0].Name)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, "abc", detail.Videos[0].Key)
	require.NotNil(t, detail.Credits)
	assert.Equal(t, "Edward Norton", detail.Credits.Cast[0].Name)
}

func TestNon200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)
	_, err := client.Trending()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
