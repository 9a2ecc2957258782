// Package scrape extracts job-posting fields from arbitrary HTML pages.
// Extraction runs an ordered list of strategies; each contributes
// whatever fields it can and never fails the scrape. Only the network
// fetch itself can error.
package scrape

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// MaxDescriptionLength caps the description produced by full-page
// fallbacks so the prompt is not flooded with boilerplate.
const MaxDescriptionLength = 2000

// Strategy is one extraction tactic. Extract returns a partial
// JobPosting; nil means the strategy found nothing.
type Strategy struct {
	Name    string
	Extract func(doc *goquery.Document, pageURL string, platform fetch.Platform) *types.JobPosting
}

// Strategies returns the extraction pipeline in priority order:
// structured markup, then known selectors, then page-level heuristics.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "jsonld", Extract: extractJSONLD},
		{Name: "selectors", Extract: extractSelectors},
		{Name: "fallback", Extract: extractFallback},
	}
}

// Scraper fetches job pages and runs the extraction pipeline.
type Scraper struct {
	opts       *fetch.Options
	useBrowser bool
	verbose    bool
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithFetchOptions overrides the HTTP fetch options.
func WithFetchOptions(opts *fetch.Options) Option {
	return func(s *Scraper) { s.opts = opts }
}

// WithBrowserFallback enables headless browser rendering for pages
// whose HTTP response carries too little text.
func WithBrowserFallback(enabled bool) Option {
	return func(s *Scraper) { s.useBrowser = enabled }
}

// WithVerbose enables extraction tracing.
func WithVerbose(verbose bool) Option {
	return func(s *Scraper) { s.verbose = verbose }
}

// New creates a Scraper.
func New(options ...Option) *Scraper {
	s := &Scraper{opts: fetch.DefaultOptions()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Scrape fetches a URL and extracts a JobPosting from it.
// Extraction misses degrade to empty fields; only fetch failures error.
func (s *Scraper) Scrape(ctx context.Context, urlStr string) (*types.JobPosting, error) {
	platform := fetch.DetectPlatform(urlStr)
	if s.verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, s.opts)
	if err != nil {
		return nil, err
	}
	if s.verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	html := result.HTML
	if s.useBrowser && fetch.ShouldUseBrowser(pageText(html)) {
		if s.verbose {
			log.Printf("[VERBOSE] Content below %d chars, falling back to browser rendering", fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, s.verbose)
		if browserErr != nil {
			if s.verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else {
			html = browserHTML
		}
	}

	job := ExtractFromHTML(html, urlStr, platform)
	if s.verbose {
		log.Printf("[VERBOSE] Extracted title=%q company=%q description=%d chars",
			job.Title, job.Company, len(job.Description))
	}
	return job, nil
}

// ExtractFromHTML runs the strategy pipeline over already-fetched HTML.
// It never fails: an unparseable page yields a JobPosting with empty
// fields and only the URL set.
func ExtractFromHTML(html, pageURL string, platform fetch.Platform) *types.JobPosting {
	job := &types.JobPosting{URL: pageURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return job
	}

	for _, strategy := range Strategies() {
		if job.Title != "" && job.Company != "" && job.Description != "" {
			break
		}
		if partial := strategy.Extract(doc, pageURL, platform); partial != nil {
			job.Merge(partial)
		}
	}

	return job
}

// pageText returns the visible text of a page, used to decide whether
// the HTTP response was substantial enough to skip browser rendering.
func pageText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return doc.Find("body").Text()
}
