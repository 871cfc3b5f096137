package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"pgsummarizer/internal/settings"
)

// CompletionsURL is the single fixed endpoint the bridge talks to.
const CompletionsURL = "https://api.openai.com/v1/chat/completions"

const (
	summaryPath    = "choices.0.message.content"
	requestTimeout = 60 * time.Second
)

// Client bridges summarize calls to the chat-completion endpoint, resolving
// credential, model, and system prompt from the settings store on every
// invocation so session-level setting changes take effect immediately.
type Client struct {
	store    settings.Store
	endpoint string
	timeout  time.Duration
}

func NewClient(store settings.Store) *Client {
	return &Client{
		store:    store,
		endpoint: CompletionsURL,
		timeout:  requestTimeout,
	}
}

// Summarize performs one blocking chat-completion call and returns
// choices[0].message.content verbatim: no trimming, no post-processing.
// A missing API key fails before any network I/O.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	resolved, err := settings.Resolve(ctx, c.store)
	if err != nil {
		return "", fmt.Errorf("resolve settings: %w", err)
	}

	payload := newChatRequest(resolved.Model, resolved.Prompt, text)

	// A fresh client per call: no connection reuse across invocations.
	resp, err := resty.New().
		SetTimeout(c.timeout).
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(resolved.APIKey).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("post completion: %w", err)
	}

	if !resp.IsSuccess() {
		return "", &StatusError{Code: resp.StatusCode()}
	}

	summary := gjson.GetBytes(resp.Body(), summaryPath)
	if summary.Type != gjson.String {
		return "", ErrUnexpectedFormat
	}

	return summary.String(), nil
}
