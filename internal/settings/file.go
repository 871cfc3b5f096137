package settings

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
)

// FileStore resolves settings from a configuration file. Dotted setting
// names map to nested keys, so "pg_summarizer.api_key" reads
//
//	pg_summarizer:
//	  api_key: ...
//
// in a YAML file. Any format viper understands works.
type FileStore struct {
	v *viper.Viper
}

func NewFileStore(path string) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	return &FileStore{v: v}, nil
}

func (s *FileStore) Get(_ context.Context, name string) (string, error) {
	if !s.v.IsSet(name) {
		return "", fmt.Errorf("file setting %s: %w", name, ErrNotSet)
	}

	return s.v.GetString(name), nil
}
