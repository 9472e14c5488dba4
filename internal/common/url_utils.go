package common

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ternarybob/arbor"
)

// ValidateBaseURL validates the acquisition base URL and flags local/test
// endpoints so a run against a dev server doesn't get mistaken for
// production traffic in the logs.
func ValidateBaseURL(baseURL string, logger arbor.ILogger) (isTestURL bool, warnings []string, err error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return false, nil, fmt.Errorf("invalid URL format: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, nil, fmt.Errorf("invalid URL scheme: %s (expected http or https)", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return false, nil, fmt.Errorf("URL host is empty")
	}

	host := strings.ToLower(parsedURL.Host)
	switch {
	case strings.HasPrefix(host, "localhost"):
		isTestURL = true
		warnings = append(warnings, fmt.Sprintf("test URL detected: %s uses localhost", baseURL))
	case strings.HasPrefix(host, "127.0.0.1"), strings.HasPrefix(host, "0.0.0.0"), strings.HasPrefix(host, "[::1]"):
		isTestURL = true
		warnings = append(warnings, fmt.Sprintf("test URL detected: %s uses a loopback address", baseURL))
	}

	logger.Debug().Str("base_url", baseURL).Bool("is_test_url", isTestURL).Msg("base URL validated")
	return isTestURL, warnings, nil
}
