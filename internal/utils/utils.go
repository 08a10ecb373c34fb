package utils

import (
	"net/url"
	"strings"
)

// MaskAPIKey masks the API key for display
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// IsSecretKey reports whether a variable name holds a credential
func IsSecretKey(name string) bool {
	upper := strings.ToUpper(name)
	for _, marker := range []string{"TOKEN", "KEY", "SECRET", "PASSWORD"} {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// DisplayValue returns value masked when name is a credential
func DisplayValue(name, value string) string {
	if IsSecretKey(name) {
		return MaskAPIKey(value)
	}
	return value
}

// ExtractHost extracts the host from a URL
func ExtractHost(rawURL string) string {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
