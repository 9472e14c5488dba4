package acquisition

import (
	"regexp"
	"strings"
)

// uuidInURL extracts the variant UUID embedded in a contentUrl.
var uuidInURL = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// selectVariant ranks encodings by spec.md §4.3 priority:
//  1. version == "Current"
//  2. additionalType contains "Compilacao" or "Vigente"
//  3. additionalType contains "PublicacaoOriginal"
//  4. last variant in listing order
func selectVariant(encodings []Encoding) (Encoding, bool) {
	if len(encodings) == 0 {
		return Encoding{}, false
	}

	for _, e := range encodings {
		if e.Version == "Current" {
			return e, true
		}
	}
	for _, e := range encodings {
		if containsFold(e.AdditionalType, "Compilacao") || containsFold(e.AdditionalType, "Vigente") {
			return e, true
		}
	}
	for _, e := range encodings {
		if containsFold(e.AdditionalType, "PublicacaoOriginal") {
			return e, true
		}
	}
	return encodings[len(encodings)-1], true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// extractVariantUUID pulls the UUID out of a variant's contentUrl, the
// identifier the binary endpoint is keyed by.
func extractVariantUUID(contentURL string) (string, bool) {
	match := uuidInURL.FindString(contentURL)
	return match, match != ""
}
