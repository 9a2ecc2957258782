// Package fetch - platform.go provides job board platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformIndeed is the Indeed job board
	PlatformIndeed Platform = "indeed"
	// PlatformLinkedIn is the LinkedIn jobs board
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"),
		strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	}

	return PlatformUnknown
}

// DescriptionSelectors returns description content selectors for a platform,
// most specific first. The generic job board selectors are always the tail.
func DescriptionSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			".job-post-container",
		}
	case PlatformLever:
		specific = []string{
			".posting-description",
			".posting-page",
			".section-wrapper.page-full-width",
		}
	case PlatformWorkday:
		specific = []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
		}
	case PlatformIndeed:
		specific = []string{
			".jobsearch-jobDescriptionText",
			"#jobDescriptionText",
		}
	case PlatformLinkedIn:
		specific = []string{
			".description__text",
			".show-more-less-html__markup",
		}
	}
	return append(specific, GenericDescriptionSelectors()...)
}

// GenericDescriptionSelectors returns selectors common across job boards.
func GenericDescriptionSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		".job-content",
		"[data-testid='job-description']",
		".description",
		".posting-content",
		".job-details",
		"main",
		"article",
		".content",
		"#content",
	}
}

// TitleSelectors returns job title selectors, most specific first.
func TitleSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".app-title", ".job__title h1"}
	case PlatformLever:
		specific = []string{".posting-headline h2"}
	case PlatformIndeed:
		specific = []string{".jobsearch-JobInfoHeader-title"}
	case PlatformLinkedIn:
		specific = []string{".top-card-layout__title"}
	}
	return append(specific,
		"h1",
		".job-title",
		"[data-testid='job-title']",
		".job-header-title",
	)
}

// CompanySelectors returns company name selectors, most specific first.
func CompanySelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".company-name"}
	case PlatformLever:
		specific = []string{".posting-headline .sort-by-team"}
	case PlatformIndeed:
		specific = []string{".jobsearch-InlineCompanyRating-companyHeader"}
	case PlatformLinkedIn:
		specific = []string{".topcard__org-name-link"}
	}
	return append(specific,
		".company-name",
		"[data-testid='company-name']",
		".company",
	)
}

// NoiseSelectors returns elements to strip before description extraction.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".social-share",
		".share-buttons",
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	default:
		return common
	}
}
