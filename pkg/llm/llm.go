package llm

import "context"

// Generator is the narrow capability the chat use case needs from a model
// provider. It hides concrete SDKs to preserve dependency direction.
//
// An empty string with a nil error means the provider produced no content.
// Model identity and sampling parameters are fixed when the Generator is built.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
