package payload

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorushugo/terra/models"
)

func TestListAllProductsWalksPages(t *testing.T) {
	// 3 pages: 100 + 100 + 17.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		count := 100
		if page == 3 {
			count = 17
		}
		docs := make([]map[string]any, count)
		for i := range docs {
			docs[i] = map[string]any{"id": (page-1)*100 + i, "title": "TERRA Test"}
		}
		json.NewEncoder(w).Encode(map[string]any{"docs": docs})
	}))

	products, err := client.ListAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 217)
}

func TestReplaceProductImageSendsSingleEntry(t *testing.T) {
	var patched map[string][]models.ImageRef
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/products/9", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patched))
		w.Write([]byte(`{}`))
	}))

	err := client.ReplaceProductImage(context.Background(), "9", "55", "TERRA Runner")
	require.NoError(t, err)

	require.Len(t, patched["images"], 1)
	assert.Equal(t, float64(55), patched["images"][0].Image)
	assert.Equal(t, "TERRA Runner", patched["images"][0].Alt)
}

func TestAttachProductImageKeepsValidEntries(t *testing.T) {
	var patched struct {
		Images []models.ImageRef `json:"images"`
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"id": 9,
				"images": []map[string]any{
					{"image": 3, "alt": "existing"},
					{"image": "0", "alt": "broken"},
					{"image": map[string]any{"id": 4, "url": "/media/4.jpg"}, "alt": ""},
				},
			})
		case http.MethodPatch:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patched))
			w.Write([]byte(`{}`))
		}
	}))

	err := client.AttachProductImage(context.Background(), "9", "77", "TERRA New")
	require.NoError(t, err)

	// Broken sentinel dropped, valid ones kept, new one appended.
	require.Len(t, patched.Images, 3)
	assert.Equal(t, float64(3), patched.Images[0].Image)
	assert.Equal(t, "existing", patched.Images[0].Alt)
	assert.Equal(t, float64(4), patched.Images[1].Image)
	assert.Equal(t, "TERRA New", patched.Images[1].Alt)
	assert.Equal(t, float64(77), patched.Images[2].Image)
}

func TestListProductsWithStringIDs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"docs": []map[string]any{
				{"id": "66b2f1c9a4d8e7f012345678", "title": "TERRA Mongo"},
				{"id": 12, "title": "TERRA Numeric"},
			},
		})
	}))

	products, err := client.ListProducts(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "66b2f1c9a4d8e7f012345678", products[0].ID.String())
	assert.Equal(t, "12", products[1].ID.String())
}

func TestCreateProductReturnsDocument(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var p models.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "31"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	}))

	created, err := client.CreateProduct(context.Background(), &models.Product{Title: "TERRA Test"})
	require.NoError(t, err)
	assert.Equal(t, "31", created.ID.String())
	assert.Equal(t, "TERRA Test", created.Title)
}
