package imagesource

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const openAIAPIURL = "https://api.openai.com/v1"

// Generative builds product shots with the OpenAI image API. Prompts
// are derived from the product title so a trail runner and a minimal
// urban sneaker come out looking different.
type Generative struct {
	apiURL string
	apiKey string
	model  string
	http   *http.Client
}

func NewGenerative(apiKey string) *Generative {
	return &Generative{
		apiURL: openAIAPIURL,
		apiKey: apiKey,
		model:  "dall-e-3",
		// Image generation routinely takes tens of seconds.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

var _ Source = (*Generative)(nil)

func (g *Generative) Name() string { return "dalle" }

// shoeTypeKeywords maps title keywords to a visual shoe style for the
// prompt. First match wins.
var shoeTypeKeywords = []struct {
	keyword string
	style   string
}{
	{"trail", "rugged trail running shoe with aggressive outsole"},
	{"run", "lightweight performance running shoe"},
	{"canvas", "casual canvas low-top sneaker"},
	{"slip", "minimalist slip-on sneaker"},
	{"boot", "high-top sneaker boot"},
	{"edition", "premium limited edition sneaker"},
}

// colorKeywords maps palette names appearing in titles to prompt
// wording.
var colorKeywords = []struct {
	keyword string
	phrase  string
}{
	{"white", "stone white with subtle cream accents"},
	{"black", "deep matte black"},
	{"green", "earthy sage green"},
	{"orange", "warm clay orange"},
	{"brown", "natural earth brown"},
	{"blue", "muted ocean blue"},
	{"sand", "light desert sand"},
	{"grey", "soft charcoal grey"},
	{"beige", "natural undyed beige"},
}

// BuildPrompt assembles the generation prompt for a product title.
func BuildPrompt(title string) string {
	lower := strings.ToLower(title)

	style := "modern eco-friendly sneaker"
	for _, st := range shoeTypeKeywords {
		if strings.Contains(lower, st.keyword) {
			style = st.style
			break
		}
	}

	colorPhrase := "neutral natural tones"
	for _, c := range colorKeywords {
		if strings.Contains(lower, c.keyword) {
			colorPhrase = c.phrase
			break
		}
	}

	return fmt.Sprintf(
		"Professional product photography of a %s in %s, made from recycled and natural materials, "+
			"centered on a pure white studio background, soft diffused lighting, slight three-quarter angle, "+
			"no people, no text, no logos, commercial e-commerce catalog style",
		style, colorPhrase)
}

func (g *Generative) Fetch(ctx context.Context, item Item) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	prompt := BuildPrompt(item.Title)
	log.Printf("🎨 Generating image for %s", item.Title)

	payload := map[string]any{
		"model":           g.model,
		"prompt":          prompt,
		"n":               1,
		"size":            "1024x1024",
		"quality":         "standard",
		"response_format": "b64_json",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image generation returned status %d", resp.StatusCode)
	}

	var result struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("generation response contained no image")
	}

	data, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return data, nil
}
