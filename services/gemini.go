package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// GeminiClient calls the Gemini generateContent API with the Google Maps
// grounding tool, biased toward the caller's coordinates.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient() *GeminiClient {
	baseURL := os.Getenv("GEMINI_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{
		baseURL:    baseURL,
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      model,
		httpClient: &http.Client{},
	}
}

type geminiRequest struct {
	Contents   []geminiContent `json:"contents"`
	Tools      []geminiTool    `json:"tools,omitempty"`
	ToolConfig *geminiToolCfg  `json:"toolConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleMaps struct{} `json:"googleMaps"`
}

type geminiToolCfg struct {
	RetrievalConfig struct {
		LatLng struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"latLng"`
	} `json:"retrievalConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends a maps-grounded prompt and returns the flattened
// candidate text.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string, lat, lng float64) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("gemini: GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		Tools:    []geminiTool{{}},
		ToolConfig: func() *geminiToolCfg {
			cfg := &geminiToolCfg{}
			cfg.RetrievalConfig.LatLng.Latitude = lat
			cfg.RetrievalConfig.LatLng.Longitude = lng
			return cfg
		}(),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %s", resp.Status)
	}

	var body geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Candidates) == 0 {
		return "", errors.New("gemini: no candidates")
	}

	var text strings.Builder
	for _, part := range body.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")
	fencedRe     = regexp.MustCompile("(?s)```\n(.*?)\n```")
)

// ExtractJSONArray pulls a JSON array out of a model response. The payload
// may be wrapped in a fenced code block, with or without a language tag, or
// be bare JSON; the first form found wins.
func ExtractJSONArray(text string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := fencedRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return trimmed, true
	}
	return "", false
}
