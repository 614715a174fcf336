// pkg/ai/client.go

package ai

import (
	"context"

	"google.golang.org/genai"
)

// Request is one schema-constrained, non-streaming generation call.
type Request struct {
	Model  string
	Prompt string
	Schema *genai.Schema
}

type Client interface {
	// GenerateJSON returns the raw text of the model's JSON answer. An empty
	// string means the service answered without a usable payload.
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// Factory builds a client bound to one API key. Callers create a fresh
// client per generation so no transport state is shared between calls.
type Factory func(ctx context.Context, apiKey string) (Client, error)
