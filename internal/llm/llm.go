package llm

import "context"

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	// Complete sends one system instruction and one user turn and returns the reply text.
	Complete(ctx context.Context, system, user string) (string, error)
}
