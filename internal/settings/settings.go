package settings

import (
	"context"
	"errors"
	"fmt"
)

// Names of the settings the bridge reads per invocation.
const (
	KeyAPIKey = "pg_summarizer.api_key"
	KeyModel  = "pg_summarizer.model"
	KeyPrompt = "pg_summarizer.prompt"
)

const (
	// DefaultModel is used when pg_summarizer.model is not set.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultPrompt is used when pg_summarizer.prompt is not set.
	DefaultPrompt = "You are an AI summarizing tool. " +
		"Your purpose is to summarize the <text> tag, " +
		"not to engage in conversation or discussion. " +
		"Please read the <text> carefully. " +
		"Then, summarize the key points. " +
		"Focus on capturing the most important information as concisely as possible."
)

// ErrNotSet reports that a store has no value for the requested setting.
var ErrNotSet = errors.New("setting is not set")

// Store is a read-only key-value settings source. Implementations return an
// error wrapping ErrNotSet when the setting is absent.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
}

// MissingSettingError reports that a required setting is absent. The call
// must not reach the network once this is returned.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("required setting %q is not set", e.Name)
}

// Resolved holds the three settings after defaults are applied.
type Resolved struct {
	APIKey string
	Model  string
	Prompt string
}

// Resolve reads the three pg_summarizer settings from the store. The API key
// is required; model and prompt fall back to the built-in defaults when the
// setting is absent, empty, or the lookup fails.
func Resolve(ctx context.Context, store Store) (Resolved, error) {
	apiKey, err := store.Get(ctx, KeyAPIKey)
	if err != nil && !errors.Is(err, ErrNotSet) {
		return Resolved{}, fmt.Errorf("get api key setting: %w", err)
	}
	if apiKey == "" {
		return Resolved{}, &MissingSettingError{Name: KeyAPIKey}
	}

	resolved := Resolved{
		APIKey: apiKey,
		Model:  DefaultModel,
		Prompt: DefaultPrompt,
	}

	if model, getErr := store.Get(ctx, KeyModel); getErr == nil && model != "" {
		resolved.Model = model
	}

	if prompt, getErr := store.Get(ctx, KeyPrompt); getErr == nil && prompt != "" {
		resolved.Prompt = prompt
	}

	return resolved, nil
}
