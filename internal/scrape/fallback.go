package scrape

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// extractFallback is the last-resort strategy: the page <title> for the
// job title, the URL domain for the company, and the largest text block
// (capped) for the description.
func extractFallback(doc *goquery.Document, pageURL string, _ fetch.Platform) *types.JobPosting {
	pruned := goquery.CloneDocument(doc)
	pruned.Find("script, style, noscript, nav, header, footer").Remove()

	job := &types.JobPosting{
		Title:   strings.TrimSpace(pruned.Find("title").First().Text()),
		Company: companyFromURL(pageURL),
	}

	if desc := largestTextBlock(pruned); desc != "" {
		job.Description = truncate(cleanText(desc), MaxDescriptionLength)
	}

	if job.IsEmpty() {
		return nil
	}
	return job
}

// companyFromURL derives a company name from the URL host:
// "https://www.acme.com/jobs/1" becomes "Acme".
func companyFromURL(pageURL string) string {
	if pageURL == "" {
		return ""
	}
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// largestTextBlock returns the text of the densest content element on
// the page, preferring structural containers over the whole body.
func largestTextBlock(doc *goquery.Document) string {
	var best string
	doc.Find("article, section, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text is dominated by a child container
		// so the result narrows to the densest block, not an ancestor.
		text := strings.TrimSpace(s.Text())
		if len(text) > len(best) && len(childContainerText(s))*5 < len(text)*4 {
			best = text
		}
	})
	if best != "" {
		return best
	}
	return strings.TrimSpace(doc.Find("body").Text())
}

func childContainerText(s *goquery.Selection) string {
	var longest string
	s.ChildrenFiltered("article, section, div").Each(func(_ int, c *goquery.Selection) {
		text := strings.TrimSpace(c.Text())
		if len(text) > len(longest) {
			longest = text
		}
	})
	return longest
}

// truncate caps s at n bytes, backing up to a rune boundary so the
// result stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
