package settings

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvStore resolves settings from process environment variables. Setting
// names map to their uppercase underscore form:
// "pg_summarizer.api_key" -> "PG_SUMMARIZER_API_KEY".
type EnvStore struct{}

func (EnvStore) Get(_ context.Context, name string) (string, error) {
	value, ok := os.LookupEnv(EnvVar(name))
	if !ok {
		return "", fmt.Errorf("env setting %s: %w", name, ErrNotSet)
	}

	return value, nil
}

// EnvVar returns the environment variable name a setting maps to.
func EnvVar(name string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(name))
}
