package webpage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const fetchTimeout = 20 * time.Second

// Fetcher downloads a page and reduces it to plain text ready for
// summarization.
type Fetcher struct {
	client *resty.Client
	log    *slog.Logger
}

func NewFetcher(log *slog.Logger) *Fetcher {
	return &Fetcher{
		client: resty.New().SetTimeout(fetchTimeout),
		log:    log,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("get page: %w", err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("get page: unexpected status %d", resp.StatusCode())
	}

	text, err := ExtractText(resp.String())
	if err != nil {
		return "", err
	}

	if text == "" {
		return "", fmt.Errorf("page %s has no readable text", pageURL)
	}

	f.log.DebugContext(ctx, "Page is fetched",
		"url", pageURL,
		"textLength", len(text))

	return text, nil
}

// ExtractText strips markup, scripts, and styles from an HTML document and
// collapses the remaining text into single-space-separated words.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " "), nil
}
