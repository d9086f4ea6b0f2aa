package metadata

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

type platformRule struct {
	hostPart    string
	platform    string
	contentType string
}

// Matched in order against the lowercased host.
var platformRules = []platformRule{
	{"youtube.com", "YouTube", "video"},
	{"youtu.be", "YouTube", "video"},
	{"twitter.com", "X", "post"},
	{"x.com", "X", "post"},
	{"instagram.com", "Instagram", "post"},
	{"tiktok.com", "TikTok", "video"},
	{"linkedin.com", "LinkedIn", "post"},
	{"medium.com", "Medium", "article"},
	{"reddit.com", "Reddit", "post"},
	{"github.com", "GitHub", "article"},
	{"substack.com", "Substack", "article"},
}

// DetectPlatform classifies a URL by its host. Unknown or unparsable URLs
// yield ("Web", "article").
func DetectPlatform(rawURL string) (platform, contentType string) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return domain.DefaultPlatform, domain.DefaultContentType
	}

	host := strings.ToLower(u.Host)
	if host == "" {
		return domain.DefaultPlatform, domain.DefaultContentType
	}

	for _, r := range platformRules {
		if strings.Contains(host, r.hostPart) {
			return r.platform, r.contentType
		}
	}
	return domain.DefaultPlatform, domain.DefaultContentType
}

const maxSuggestedTags = 5

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "it": {},
	"this": {}, "that": {}, "how": {}, "what": {}, "why": {}, "when": {}, "where": {}, "who": {},
}

// ExtractSuggestedTags returns up to five distinct keywords from a title in
// first-seen order. A keyword is a whole word of at least three ASCII letters;
// words carrying digits or non-ASCII letters are skipped, as are stop words.
func ExtractSuggestedTags(title string) []string {
	tags := make([]string, 0, maxSuggestedTags)
	if title == "" {
		return tags
	}

	seen := make(map[string]struct{}, maxSuggestedTags)
	for _, w := range strings.FieldsFunc(strings.ToLower(title), isWordSeparator) {
		if len(w) < 3 || !isASCIILetters(w) {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tags = append(tags, w)
		if len(tags) == maxSuggestedTags {
			break
		}
	}
	return tags
}

func isWordSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func isASCIILetters(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
