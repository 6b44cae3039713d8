package sources

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageExtractor fetches a recipe web page and strips it down to the text
// an AI extractor can work with.
type PageExtractor struct {
	httpClient *http.Client
}

// NewPageExtractor creates a PageExtractor with a sane fetch timeout.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCleanText downloads the URL and returns the page title and the
// body text with scripts, styles and navigation chrome removed.
func (e *PageExtractor) FetchCleanText(url string) (title, text string, err error) {
	resp, err := e.httpClient.Get(url)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove noise to save LLM tokens.
	doc.Find("script, style, nav, footer, header, iframe, aside, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	title = strings.TrimSpace(doc.Find("title").First().Text())
	text = strings.TrimSpace(doc.Find("body").Text())
	return title, text, nil
}
