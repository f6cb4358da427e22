package summary

import (
	"strings"
	"testing"

	"github-profile-analyzer/internal/profile"
	"github-profile-analyzer/internal/score"
)

func veteranInput() Input {
	return Input{
		Name:            "Linus Torvalds",
		Login:           "torvalds",
		Level:           score.LevelExpert,
		AccountAgeYears: 15,
		FocusAreas:      []string{"Systems Programming", "DevOps", "Backend Development"},
		Languages: []profile.LanguageStat{
			{Name: "C"}, {Name: "Shell"}, {Name: "Python"}, {Name: "Perl"},
		},
		TotalStars: 10000,
		RepoCount:  5,
		Collaboration: profile.CollaborationStats{
			Followers:     200000,
			Organizations: []string{"linux"},
		},
		Activity: profile.ActivityPattern{MostActiveDay: "Tuesday", MostActiveHour: 21},
	}
}

func TestGenerate(t *testing.T) {
	got := Generate(veteranInput())

	for _, want := range []string{
		"Linus Torvalds is a expert-level developer",
		"15+ years on GitHub",
		"Systems Programming, DevOps",
		"Primary expertise in C, Shell, Python",
		"10000 stars across 5 public repositories",
		"200000 followers",
		"membership in 1 organizations",
		"Most active on Tuesdays (evening coder)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Perl") {
		t.Errorf("summary should mention at most three languages:\n%s", got)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(veteranInput())
	b := Generate(veteranInput())
	if a != b {
		t.Errorf("identical inputs produced different summaries:\n%s\n%s", a, b)
	}
}

func TestGenerateEmptyProfile(t *testing.T) {
	got := Generate(Input{Login: "newbie", Level: score.LevelJunior})
	if got == "" {
		t.Fatal("summary should be generated even for an empty profile")
	}
	if !strings.Contains(got, "newbie is a junior-level developer") {
		t.Errorf("unexpected summary: %s", got)
	}
	if strings.Contains(got, "stars") || strings.Contains(got, "followers") {
		t.Errorf("empty profile summary should skip achievement phrases: %s", got)
	}
}

func TestGenerateMidLevelWording(t *testing.T) {
	got := Generate(Input{Login: "dev", Level: score.LevelMid})
	if !strings.Contains(got, "dev is a mid-level developer") {
		t.Errorf("unexpected mid-level phrasing: %s", got)
	}
}

func TestCoderQualifier(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{23, "evening"},
	}
	for _, tt := range tests {
		if got := coderQualifier(tt.hour); !strings.Contains(got, tt.want) {
			t.Errorf("coderQualifier(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
