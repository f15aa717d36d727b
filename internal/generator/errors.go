package generator

import "errors"

var (
	// ErrPromptRender is returned when a prompt cannot be rendered.
	ErrPromptRender = errors.New("prompt render error")
	// ErrGenerationUnavailable covers network, auth, quota and timeout failures
	// of the text generation backend.
	ErrGenerationUnavailable = errors.New("generation unavailable")
	// ErrSchema is returned when a response is not JSON or has the wrong shape.
	ErrSchema = errors.New("schema error")
	// ErrClamp is returned when a rating has no usable numeric score.
	ErrClamp = errors.New("score clamp error")
)

// failureKind labels err for metrics.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrGenerationUnavailable):
		return "unavailable"
	case errors.Is(err, ErrSchema):
		return "schema"
	case errors.Is(err, ErrClamp):
		return "clamp"
	case errors.Is(err, ErrPromptRender):
		return "prompt"
	default:
		return "other"
	}
}
