// Package query turns free-form user input into a canonical GitHub handle.
package query

import (
	"net/url"
	"regexp"
	"strings"

	"github-profile-analyzer/internal/profile"
)

// GitHub handle rules: 1-39 chars, alphanumeric and hyphen, no leading or
// trailing hyphen.
var validHandle = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,37}[a-z0-9])?$`)

const maxQueryLen = 256

// Normalize resolves a bare handle, a github.com profile URL, or an email
// address (local part used as a candidate handle) into a canonical
// lowercase handle. It never touches the network.
func Normalize(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", profile.NewError(profile.KindInvalidInput, "query is empty")
	}
	if len(q) > maxQueryLen {
		return "", profile.NewError(profile.KindInvalidInput, "query is too long")
	}

	q = strings.ToLower(q)

	if looksLikeURL(q) {
		handle, ok := handleFromURL(q)
		if !ok {
			return "", profile.NewError(profile.KindInvalidInput, "not a github.com profile URL: %s", raw)
		}
		q = handle
	} else if at := strings.IndexByte(q, '@'); at >= 0 {
		// Email fallback: treat the local part as a candidate handle.
		// Dots are common in email local parts but invalid in handles.
		q = strings.ReplaceAll(q[:at], ".", "-")
	}

	if !validHandle.MatchString(q) {
		return "", profile.NewError(profile.KindInvalidInput, "invalid github handle %q", q)
	}
	return q, nil
}

func looksLikeURL(q string) bool {
	return strings.HasPrefix(q, "http://") ||
		strings.HasPrefix(q, "https://") ||
		strings.HasPrefix(q, "www.") ||
		strings.HasPrefix(q, "github.com/")
}

func handleFromURL(q string) (string, bool) {
	if !strings.Contains(q, "://") {
		q = "https://" + q
	}
	u, err := url.Parse(q)
	if err != nil {
		return "", false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host != "github.com" {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", false
	}
	return parts[0], true
}
