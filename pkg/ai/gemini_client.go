// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const jsonMIME = "application/json"

type gemini struct {
	client *genai.Client
}

// NewGeminiFactory returns a Factory for the Gemini API. baseURL overrides
// the service endpoint (tests, proxies); an empty value keeps the SDK default.
// httpClient may be nil.
func NewGeminiFactory(baseURL string, httpClient *http.Client) Factory {
	return func(ctx context.Context, apiKey string) (Client, error) {
		cfg := &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		c, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return &gemini{client: c}, nil
	}
}

func (g *gemini) GenerateJSON(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIME,
		ResponseSchema:   req.Schema,
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
