package imagesource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordFilter(t *testing.T) {
	f := DefaultKeywordFilter()

	tests := []struct {
		desc string
		want bool
	}{
		{"white sneakers on studio background", true},
		{"minimal product shot of running shoes", true},
		{"studio photo of a person wearing sneakers", false},
		{"lifestyle studio shoot in the city", false},
		{"man running outdoor in trainers", false},
		{"a sneaker", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Allow(tt.desc), "description %q", tt.desc)
	}
}

func TestStockSearchPoolAndTracking(t *testing.T) {
	trackCalls := 0
	imageCalls := 0

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/photos":
			require.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{
						"id":              "good1",
						"alt_description": "sneaker on white background",
						"urls":            map[string]string{"regular": srv.URL + "/img/good1.jpg"},
						"links":           map[string]string{"download_location": srv.URL + "/track/good1"},
					},
					{
						"id":              "bad1",
						"alt_description": "person wearing studio sneakers",
						"urls":            map[string]string{"regular": srv.URL + "/img/bad1.jpg"},
					},
				},
			})
		case "/track/good1":
			trackCalls++
			w.Write([]byte(`{}`))
		case "/img/good1.jpg":
			imageCalls++
			w.Write([]byte("jpeg-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	s := NewStockSearch("test-key")
	s.apiURL = srv.URL
	s.queries = []string{"sneakers"}

	data, err := s.Fetch(context.Background(), Item{Title: "TERRA Test"})
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, 1, trackCalls)
	assert.Equal(t, 1, imageCalls)

	// Pool held only the filtered photo; a second fetch exhausts it.
	_, err = s.Fetch(context.Background(), Item{Title: "TERRA Test 2"})
	assert.Error(t, err)
}

func TestFilterTextIncludesTags(t *testing.T) {
	f := DefaultKeywordFilter()

	var lifestyle unsplashPhoto
	require.NoError(t, json.Unmarshal(
		[]byte(`{"description": "studio shot of sneakers", "tags": [{"title": "lifestyle"}]}`),
		&lifestyle))
	assert.False(t, f.Allow(lifestyle.filterText()), "negative tag must reject the photo")

	var tagged unsplashPhoto
	require.NoError(t, json.Unmarshal(
		[]byte(`{"alt_description": "white sneakers", "tags": [{"title": "product"}]}`),
		&tagged))
	assert.True(t, f.Allow(tagged.filterText()), "positive tag must count")
}

func TestCollectPhotosWalksPages(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/photos", r.URL.Path)
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		photos := []map[string]any{
			{"id": "p" + page + "a", "alt_description": "studio sneakers"},
		}
		if page == "1" {
			// Full page, collection continues.
			photos = append(photos, map[string]any{"id": "p1b", "alt_description": "minimal shoes"})
		}
		json.NewEncoder(w).Encode(map[string]any{"results": photos})
	}))
	defer srv.Close()

	s := NewStockSearch("test-key")
	s.apiURL = srv.URL
	s.queries = []string{"sneakers"}
	s.perPage = 2
	s.maxPages = 5

	require.NoError(t, s.CollectPhotos(context.Background()))

	// Page 2 was short, so the walk stopped there.
	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Len(t, s.pool, 3)
}

func TestStockSearchWithoutKey(t *testing.T) {
	s := NewStockSearch("")
	_, err := s.Fetch(context.Background(), Item{})
	assert.Error(t, err)
}
