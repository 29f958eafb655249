package interfaces

import "context"

// Advisor sends a prompt to a text-generation model and returns the raw
// response text. Output length is capped by the client's configuration.
type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
