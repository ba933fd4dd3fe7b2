package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// Extractor pulls readable plain text out of an article page.
type Extractor interface {
	Extract(ctx context.Context, articleURL string) (string, error)
}

// ReadabilityExtractor fetches the page and runs readability over a cleaned
// document, falling back to tag stripping when readability finds nothing
// usable.
type ReadabilityExtractor struct {
	client *http.Client
}

func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *ReadabilityExtractor) Extract(ctx context.Context, articleURL string) (string, error) {
	parsed, err := url.Parse(articleURL)
	if err != nil {
		return "", fmt.Errorf("parse article url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("build article request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch article page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse article page: %w", err)
	}

	// Drop non-content elements before readability sees the document.
	doc.Find("script, style, noscript, nav, header, footer, aside, iframe, form").Remove()
	cleaned, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render cleaned page: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), parsed)
	if err == nil {
		if text := normalizeWhitespace(article.TextContent); text != "" {
			return text, nil
		}
	}

	// Readability found no main content; strip tags and keep whatever text
	// the page has.
	text := bluemonday.StrictPolicy().Sanitize(cleaned)
	return normalizeWhitespace(text), nil
}

// normalizeWhitespace collapses runs of blanks inside lines while keeping the
// line structure the segmenter treats as sentence boundaries.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
