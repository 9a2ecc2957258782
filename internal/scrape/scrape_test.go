package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

const jsonLDPage = `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org/",
  "@type": "JobPosting",
  "title": "Senior Go Engineer",
  "hiringOrganization": {"@type": "Organization", "name": "Acme Corp"},
  "description": "<p>Build and operate backend services in Go.</p>"
}
</script>
</head><body><h1>Careers</h1></body></html>`

const selectorPage = `<html><body>
<nav>Home | Jobs</nav>
<h1 class="job-title">Platform Engineer</h1>
<div class="company-name">Initech</div>
<div class="job-description">Design CI/CD pipelines and infrastructure tooling for the platform team.</div>
<footer>Copyright</footer>
</body></html>`

func TestExtractFromHTML_JSONLD(t *testing.T) {
	job := ExtractFromHTML(jsonLDPage, "https://boards.greenhouse.io/acme/jobs/1", fetch.PlatformGreenhouse)

	assert.Equal(t, "Senior Go Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Contains(t, job.Description, "backend services in Go")
	assert.NotContains(t, job.Description, "<p>")
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1", job.URL)
}

func TestExtractFromHTML_JSONLDGraph(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{"@graph": [
	  {"@type": "WebSite", "name": "Acme"},
	  {"@type": "JobPosting", "title": "Data Engineer", "hiringOrganization": "Acme Corp"}
	]}</script></head><body></body></html>`

	job := ExtractFromHTML(page, "", fetch.PlatformUnknown)
	assert.Equal(t, "Data Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
}

func TestExtractFromHTML_SkipsInvalidJSONLD(t *testing.T) {
	page := `<html><head>
	<script type="application/ld+json">{broken json</script>
	<script type="application/ld+json">{"@type": "JobPosting", "title": "Backend Engineer"}</script>
	</head><body></body></html>`

	job := ExtractFromHTML(page, "", fetch.PlatformUnknown)
	assert.Equal(t, "Backend Engineer", job.Title)
}

func TestExtractFromHTML_Selectors(t *testing.T) {
	job := ExtractFromHTML(selectorPage, "https://careers.example.com/1", fetch.PlatformUnknown)

	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Initech", job.Company)
	assert.Contains(t, job.Description, "CI/CD pipelines")
	assert.NotContains(t, job.Description, "Copyright")
}

func TestExtractFromHTML_TitleTagFallback(t *testing.T) {
	page := `<html><head><title>SRE Opening</title></head><body>
	<div>We run production infrastructure and need help keeping it healthy.</div>
	</body></html>`

	job := ExtractFromHTML(page, "https://www.initech.com/jobs/9", fetch.PlatformUnknown)
	assert.Equal(t, "SRE Opening", job.Title)
	assert.Equal(t, "Initech", job.Company)
	assert.Contains(t, job.Description, "production infrastructure")
}

func TestExtractFromHTML_NoMatchesNeverFails(t *testing.T) {
	job := ExtractFromHTML("<html><body></body></html>", "", fetch.PlatformUnknown)
	require.NotNil(t, job)
	assert.Empty(t, job.Title)
	assert.Empty(t, job.Company)
	assert.Empty(t, job.Description)
}

func TestExtractFromHTML_GarbageInputNeverFails(t *testing.T) {
	job := ExtractFromHTML("not html at all \x00\x01", "https://example.com", fetch.PlatformUnknown)
	require.NotNil(t, job)
	assert.Equal(t, "https://example.com", job.URL)
}

func TestExtractFromHTML_DescriptionCapped(t *testing.T) {
	long := make([]byte, MaxDescriptionLength*2)
	for i := range long {
		long[i] = 'x'
	}
	page := "<html><body><div>" + string(long) + "</div></body></html>"

	job := ExtractFromHTML(page, "", fetch.PlatformUnknown)
	assert.LessOrEqual(t, len(job.Description), MaxDescriptionLength)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// 3-byte runes, so the cap lands mid-rune for most n
	s := strings.Repeat("募", 10)
	for n := 0; n <= len(s); n++ {
		out := truncate(s, n)
		assert.True(t, utf8.ValidString(out), "n=%d", n)
		assert.LessOrEqual(t, len(out), n)
	}
	assert.Equal(t, s, truncate(s, len(s)))
}

func TestScraper_Scrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(selectorPage))
	}))
	defer server.Close()

	job, err := New().Scrape(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, server.URL, job.URL)
}

func TestScraper_ScrapeFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := New().Scrape(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestCompanyFromURL(t *testing.T) {
	assert.Equal(t, "Acme", companyFromURL("https://www.acme.com/jobs/1"))
	assert.Equal(t, "Initech", companyFromURL("https://initech.io/careers"))
	assert.Empty(t, companyFromURL(""))
}

func TestCleanText(t *testing.T) {
	dirty := "  Hello   world!  \n\n  This   has   extra   spaces  "
	assert.Equal(t, "Hello world! This has extra spaces", cleanText(dirty))
}

func TestCleanTextKeepsNonASCIILetters(t *testing.T) {
	assert.Equal(t, "Führung in Zürich", cleanText("Führung in Zürich"))
	assert.Equal(t, "ソフトウェアエンジニア募集中", cleanText("ソフトウェアエンジニア募集中"))
	assert.Equal(t, "Ingénieur logiciel (senior)", cleanText("Ingénieur logiciel ★(senior)"))
}
