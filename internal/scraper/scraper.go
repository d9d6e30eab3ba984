package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is one downloadable file discovered on the listing page.
type Link struct {
	Name string
	URL  string
}

type Scraper struct {
	httpClient *http.Client
}

func New(httpClient *http.Client) *Scraper {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Scraper{httpClient: httpClient}
}

// FetchLinks retrieves pageURL and extracts every anchor nested inside a
// list item, in document order. Each href is resolved against pageURL and
// the anchor's trimmed text becomes the file name. Anchors with no href or
// an empty name are skipped.
func (s *Scraper) FetchLinks(ctx context.Context, pageURL string) ([]Link, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	var links []Link
	doc.Find("ul li a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		name := strings.TrimSpace(sel.Text())
		if name == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		links = append(links, Link{
			Name: name,
			URL:  base.ResolveReference(ref).String(),
		})
	})

	return links, nil
}
