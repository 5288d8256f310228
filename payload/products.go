package payload

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dorushugo/terra/models"
)

// ListOptions control product listing. Zero fields are omitted from
// the query string.
type ListOptions struct {
	Limit int
	Page  int
	Depth int
	Sort  string
}

func (o ListOptions) query() string {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Depth > 0 {
		q.Set("depth", strconv.Itoa(o.Depth))
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

type productList struct {
	Docs []models.Product `json:"docs"`
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	var list productList
	if err := c.doJSON(ctx, http.MethodGet, "/products"+opts.query(), nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Docs, nil
}

// ListAllProducts walks every page of the product collection, one
// hundred documents at a time, stopping at the first short page.
func (c *Client) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	const pageSize = 100
	var all []models.Product
	for page := 1; ; page++ {
		docs, err := c.ListProducts(ctx, ListOptions{Limit: pageSize, Page: page, Depth: 1})
		if err != nil {
			return all, err
		}
		if len(docs) == 0 {
			break
		}
		all = append(all, docs...)
		if len(docs) < pageSize {
			break
		}
	}
	return all, nil
}

// GetProduct fetches the current document for one product.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product and returns the created document.
func (c *Client) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", p, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}

// PatchProduct sends a partial update for one product.
func (c *Client) PatchProduct(ctx context.Context, id string, partial any) error {
	return c.doJSON(ctx, http.MethodPatch, "/products/"+id, partial, nil, http.StatusOK)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil, http.StatusOK)
}

// ReplaceProductImage overwrites the product's image list with a
// single entry pointing at the given media id.
func (c *Client) ReplaceProductImage(ctx context.Context, productID, mediaID, alt string) error {
	images := []models.ImageRef{{Image: models.MediaRelation(mediaID), Alt: alt}}
	return c.PatchProduct(ctx, productID, map[string]any{"images": images})
}

// AttachProductImage appends a media reference without clobbering the
// rest of the product: it re-fetches the current document, keeps the
// image entries whose media ids still resolve, and writes back the
// filtered list plus the new entry.
func (c *Client) AttachProductImage(ctx context.Context, productID, mediaID, alt string) error {
	current, err := c.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to read product before attach: %w", err)
	}

	images := models.ValidImageRefs(current.Images, alt)
	images = append(images, models.ImageRef{Image: models.MediaRelation(mediaID), Alt: alt})

	return c.PatchProduct(ctx, productID, map[string]any{"images": images})
}

// RebrandPatch is the combined update a rebrand run applies: new
// naming fields plus, optionally, a fresh image list.
type RebrandPatch struct {
	Title            string            `json:"title,omitempty"`
	Slug             string            `json:"slug,omitempty"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	Collection       models.Collection `json:"collection,omitempty"`
	Images           []models.ImageRef `json:"images,omitempty"`
}

// Rebrand applies a naming/image patch to one product.
func (c *Client) Rebrand(ctx context.Context, productID string, patch RebrandPatch) error {
	return c.PatchProduct(ctx, productID, patch)
}
