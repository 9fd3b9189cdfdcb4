package llm

import "context"

// Provider is the interface for all LLM providers used by the chat
// assistant.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string) (string, error)
}
