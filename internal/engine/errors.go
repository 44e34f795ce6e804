package engine

import "errors"

// Failure kinds for the analysis pipeline. ErrValidation is the only kind
// that reaches the caller of Pipeline.Run; the rest are stage-local and
// masked with documented defaults.
var (
	ErrValidation = errors.New("validation")
	ErrEmbedding  = errors.New("embedding")
	ErrLLM        = errors.New("llm")
	ErrRetrieval  = errors.New("retrieval")
	ErrGraph      = errors.New("graph")
)

// IsValidation reports whether err is a caller-input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
