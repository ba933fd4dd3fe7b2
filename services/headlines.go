package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Headline is one entry from the headline provider's top-headlines listing.
type Headline struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	PublishedAt string
	Source      string
}

// HeadlineProvider lists current English-language headlines for a category.
type HeadlineProvider interface {
	TopHeadlines(ctx context.Context, category string) ([]Headline, error)
}

// NewsAPIClient talks to the NewsAPI top-headlines endpoint.
type NewsAPIClient struct {
	baseURL  string
	apiKey   string
	pageSize int
	client   *http.Client
}

func NewNewsAPIClient(baseURL, apiKey string, pageSize int) *NewsAPIClient {
	return &NewsAPIClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (c *NewsAPIClient) TopHeadlines(ctx context.Context, category string) ([]Headline, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/top-headlines?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build headlines request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines for %s: %w", category, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read headlines response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("headlines for %s: status %d: %s", category, resp.StatusCode, string(body))
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode headlines response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("headlines for %s: provider status %q: %s", category, parsed.Status, parsed.Message)
	}

	out := make([]Headline, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		out = append(out, Headline{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}
	return out, nil
}
