package imagesource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericFallsBackToLoremFlickr(t *testing.T) {
	picsum := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer picsum.Close()

	flickr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "sneakers")
		w.Write([]byte("flickr-bytes"))
	}))
	defer flickr.Close()

	g := NewGeneric()
	g.picsumURL = picsum.URL
	g.loremFlickrURL = flickr.URL

	data, err := g.Fetch(context.Background(), Item{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, []byte("flickr-bytes"), data)
}

func TestGenericUsesCuratedPicsumIDs(t *testing.T) {
	var paths []string
	picsum := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("picsum-bytes"))
	}))
	defer picsum.Close()

	g := NewGeneric()
	g.picsumURL = picsum.URL

	for i := 0; i < 2; i++ {
		data, err := g.Fetch(context.Background(), Item{Index: i})
		require.NoError(t, err)
		assert.Equal(t, []byte("picsum-bytes"), data)
	}

	require.Len(t, paths, 2)
	assert.NotEqual(t, paths[0], paths[1])
	assert.True(t, strings.HasSuffix(paths[0], "/800/800.jpg"))
}

func TestPexelsPicksFirstPhoto(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			require.Equal(t, "api-key", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"photos": []map[string]any{
					{"src": map[string]string{"large": srv.URL + "/photo.jpg"}},
				},
			})
		case "/photo.jpg":
			w.Write([]byte("pexels-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := NewPexels("api-key")
	p.apiURL = srv.URL

	data, err := p.Fetch(context.Background(), Item{Title: "TERRA Runner"})
	require.NoError(t, err)
	assert.Equal(t, []byte("pexels-bytes"), data)
}

func TestPexelsWithoutKey(t *testing.T) {
	p := NewPexels("")
	_, err := p.Fetch(context.Background(), Item{})
	assert.Error(t, err)
}
