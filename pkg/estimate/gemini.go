// Package estimate talks to the Gemini API to turn free-text food
// descriptions into structured estimates and to generate short
// motivational quotes. Both calls are best-effort: any failure maps
// to an empty result or a fallback quote, never an error.
package estimate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/nootlabs/nootnote/pkg/food"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

// Gemini is the live estimator and quote generator.
type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// NewGemini creates a client with the default model and a request
// timeout.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		APIKey:  apiKey,
		Model:   defaultModel,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// generateContent request/response wire format.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// foodSchema constrains the model to a JSON array of food estimates.
var foodSchema = json.RawMessage(`{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "name": {"type": "STRING", "description": "Short concise name of the food"},
      "calories": {"type": "NUMBER", "description": "Total estimated calories for the item (number only)"},
      "weight": {"type": "NUMBER", "description": "Estimated weight in grams (number only)"},
      "calPer100g": {"type": "NUMBER", "description": "Calories per 100 grams"},
      "protein": {"type": "STRING", "description": "Estimated protein (e.g., '5g')"},
      "icon": {"type": "STRING", "description": "A single emoji representing the food"}
    },
    "required": ["name", "calories", "weight", "calPer100g", "icon"]
  }
}`)

// looseEstimate is the untrusted shape coming back from the model.
type looseEstimate struct {
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	Weight     float64 `json:"weight"`
	CalPer100g float64 `json:"calPer100g"`
	Protein    string  `json:"protein"`
	Icon       string  `json:"icon"`
}

// Estimate implements food.Estimator. Malformed entries are dropped
// at this boundary so only well-formed estimates travel inward.
func (g *Gemini) Estimate(ctx context.Context, text string) []food.Estimate {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	prompt := fmt.Sprintf("Analyze the following food input. Estimate calories, weight in grams, and calories per 100g. Return a JSON array. Input: %q", text)
	raw, err := g.generate(ctx, prompt, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   foodSchema,
	})
	if err != nil {
		return nil
	}

	var loose []looseEstimate
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil
	}

	out := make([]food.Estimate, 0, len(loose))
	for _, e := range loose {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if e.Weight <= 0 || e.Calories < 0 || e.CalPer100g < 0 {
			continue
		}
		out = append(out, food.Estimate{
			Name:       e.Name,
			Calories:   int(math.Round(e.Calories)),
			Weight:     e.Weight,
			CalPer100g: e.CalPer100g,
			Protein:    e.Protein,
			Icon:       e.Icon,
		})
	}
	return out
}

// Quote implements printer.Quoter. The returned string is always
// non-empty: a transport failure yields the fixed fallback for the
// language and an empty model reply yields the default quote.
func (g *Gemini) Quote(ctx context.Context, language string) string {
	var prompt string
	if language == "zh" {
		prompt = "Give me a very short, cute, motivational quote in Chinese for someone planning their day and diet. Max 10 words. No quotes."
	} else {
		prompt = "Give me a very short, cute, motivational quote in English for someone planning their day and diet. Max 10 words. No quotes."
	}

	raw, err := g.generate(ctx, prompt, nil)
	if err != nil {
		return FallbackQuote(language)
	}
	quote := strings.TrimSpace(raw)
	if quote == "" {
		return DefaultQuote(language)
	}
	return quote
}

func (g *Gemini) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("estimate: marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.BaseURL, g.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("estimate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("estimate: call gemini: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("estimate: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("estimate: gemini API error %d: %s", resp.StatusCode, string(data))
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("estimate: parse response: %w", err)
	}
	if len(gr.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}
