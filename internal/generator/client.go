package generator

import "context"

// TextGenerator sends one system instruction and one user prompt to a text
// model and returns the raw reply. Failures wrap ErrGenerationUnavailable.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
