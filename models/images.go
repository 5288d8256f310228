package models

import (
	"encoding/json"
	"strconv"
)

// ImageRef is an ordered product image entry. The CMS returns the
// image relation either as a bare id (number or string) or, when the
// request used a depth parameter, as an expanded media document.
type ImageRef struct {
	Image any    `json:"image"`
	Alt   string `json:"alt,omitempty"`
}

// MediaID returns the underlying media id as a string, or "" when the
// relation is absent. Expanded relations resolve through their "id"
// field.
func (r ImageRef) MediaID() string {
	return relationID(r.Image)
}

// ResolvedURL returns the media URL when the relation was expanded,
// or "" otherwise.
func (r ImageRef) ResolvedURL() string {
	if rel, ok := r.Image.(map[string]any); ok {
		if u, ok := rel["url"].(string); ok {
			return u
		}
	}
	return ""
}

func relationID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case json.Number:
		return id.String()
	case map[string]any:
		if inner, ok := id["id"]; ok {
			return relationID(inner)
		}
		return ""
	default:
		return ""
	}
}

// IsEmptyRelationID reports whether a media relation id is one of the
// sentinel values the CMS hands back for broken references.
func IsEmptyRelationID(id string) bool {
	switch id {
	case "", "0", "None", "null":
		return true
	}
	return false
}

// NeedsImage reports whether the product still lacks a usable
// illustration: no image entries at all, a first entry whose relation
// is absent, an expanded relation without a URL, or an unexpanded
// relation with a sentinel id.
func (p *Product) NeedsImage() bool {
	if len(p.Images) == 0 {
		return true
	}
	first := p.Images[0]
	switch first.Image.(type) {
	case nil:
		return true
	case map[string]any:
		return first.ResolvedURL() == ""
	default:
		return IsEmptyRelationID(first.MediaID())
	}
}

// ValidImageRefs filters out entries whose underlying media id is a
// sentinel empty value, normalizing the survivors to bare-id form so
// they can be written back in a PATCH.
func ValidImageRefs(refs []ImageRef, defaultAlt string) []ImageRef {
	var out []ImageRef
	for _, ref := range refs {
		id := ref.MediaID()
		if IsEmptyRelationID(id) {
			continue
		}
		alt := ref.Alt
		if alt == "" {
			alt = defaultAlt
		}
		out = append(out, ImageRef{Image: MediaRelation(id), Alt: alt})
	}
	return out
}

// MediaRelation converts a media id string into the value shape the
// CMS expects in a write: numeric ids go back as numbers.
func MediaRelation(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}
