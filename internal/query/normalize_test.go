package query

import (
	"errors"
	"strings"
	"testing"

	"github-profile-analyzer/internal/profile"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"bare handle", "torvalds", "torvalds", false},
		{"uppercase lowered", "Torvalds", "torvalds", false},
		{"surrounding whitespace", "  octocat \n", "octocat", false},
		{"hyphenated handle", "some-user-1", "some-user-1", false},
		{"profile url", "https://github.com/torvalds", "torvalds", false},
		{"profile url with path", "https://github.com/torvalds/linux", "torvalds", false},
		{"url without scheme", "github.com/octocat", "octocat", false},
		{"www url", "www.github.com/octocat", "octocat", false},
		{"email local part", "jane.doe@example.com", "jane-doe", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"overlong", strings.Repeat("a", 300), "", true},
		{"overlong handle", strings.Repeat("a", 40), "", true},
		{"injection attempt", `"; DROP TABLE users`, "", true},
		{"path traversal", "../etc/passwd", "", true},
		{"embedded slash", "a/b", "", true},
		{"protocol injection", "javascript:alert(1)", "", true},
		{"non-github url", "https://gitlab.com/torvalds", "", true},
		{"github url without handle", "https://github.com/", "", true},
		{"leading hyphen", "-user", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			}
			if err != nil {
				var pe *profile.Error
				if !errors.As(err, &pe) || pe.Kind != profile.KindInvalidInput {
					t.Errorf("Normalize(%q) error kind = %v, want invalid_input", tt.query, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
