package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dorushugo/terra/models"
)

// UploadMedia multipart-posts image bytes as a new media asset and
// returns the created asset's id. Depending on the CMS version the id
// arrives either at the top level or nested under a "doc" key; both
// shapes are handled.
func (c *Client) UploadMedia(ctx context.Context, data []byte, filename, alt string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write image bytes: %w", err)
	}
	if err := w.WriteField("alt", alt); err != nil {
		return "", fmt.Errorf("failed to write alt field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/media", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("media upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return "", fmt.Errorf("media upload returned status %d: %s", resp.StatusCode, snippet)
	}

	var result struct {
		ID  models.DocID `json:"id"`
		Doc struct {
			ID models.DocID `json:"id"`
		} `json:"doc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode media response: %w", err)
	}

	id := result.ID.String()
	if id == "" {
		id = result.Doc.ID.String()
	}
	if id == "" {
		return "", fmt.Errorf("media response contains no id")
	}
	return id, nil
}

// ProductNeedsImage extends the client-side needs-image predicate
// with an existence check: a first image entry holding a bare,
// unexpanded media id may still point at deleted media, which only a
// GET against the media collection can reveal.
func (c *Client) ProductNeedsImage(ctx context.Context, p *models.Product) bool {
	if p.NeedsImage() {
		return true
	}
	first := p.Images[0]
	if _, expanded := first.Image.(map[string]any); expanded {
		return false
	}
	return !c.MediaExists(ctx, first.MediaID())
}

// MediaExists checks that a media document is retrievable.
func (c *Client) MediaExists(ctx context.Context, id string) bool {
	req, err := c.newRequest(ctx, http.MethodGet, "/media/"+id, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
