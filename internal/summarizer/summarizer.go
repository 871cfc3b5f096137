package summarizer

import (
	"context"
)

// Summarizer produces a summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
