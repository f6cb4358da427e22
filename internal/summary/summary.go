// Package summary renders a short recruiter-facing description of an
// analyzed profile. Output is fully determined by the input: identical
// analyses always produce identical text.
package summary

import (
	"fmt"
	"strings"

	"github-profile-analyzer/internal/profile"
	"github-profile-analyzer/internal/score"
)

// Input carries the analysis fields the summary draws from.
type Input struct {
	Name            string
	Login           string
	Level           score.Level
	AccountAgeYears float64
	FocusAreas      []string
	Languages       []profile.LanguageStat
	TotalStars      int
	RepoCount       int
	Collaboration   profile.CollaborationStats
	Activity        profile.ActivityPattern
}

// Generate renders a one-to-three sentence recruiter summary.
func Generate(in Input) string {
	name := in.Name
	if name == "" {
		name = in.Login
	}

	var b strings.Builder
	levelWord := strings.ToLower(strings.TrimSuffix(string(in.Level), "-Level"))
	fmt.Fprintf(&b, "%s is a %s-level developer", name, levelWord)
	if in.AccountAgeYears >= 1 {
		fmt.Fprintf(&b, " with %.0f+ years on GitHub", in.AccountAgeYears)
	}
	if len(in.FocusAreas) > 0 {
		n := len(in.FocusAreas)
		if n > 2 {
			n = 2
		}
		fmt.Fprintf(&b, ", focusing on %s", strings.Join(in.FocusAreas[:n], ", "))
	}
	b.WriteString(". ")

	if len(in.Languages) > 0 {
		n := len(in.Languages)
		if n > 3 {
			n = 3
		}
		names := make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = in.Languages[i].Name
		}
		fmt.Fprintf(&b, "Primary expertise in %s. ", strings.Join(names, ", "))
	}

	if in.TotalStars > 0 {
		fmt.Fprintf(&b, "Has earned %d stars across %d public repositories. ",
			in.TotalStars, in.RepoCount)
	}

	if in.Collaboration.Followers >= 10 {
		fmt.Fprintf(&b, "Active community member with %d followers", in.Collaboration.Followers)
		if n := len(in.Collaboration.Organizations); n > 0 {
			fmt.Fprintf(&b, " and membership in %d organizations", n)
		}
		b.WriteString(". ")
	}

	if in.Activity.MostActiveDay != "" {
		fmt.Fprintf(&b, "Most active on %ss%s.", in.Activity.MostActiveDay, coderQualifier(in.Activity.MostActiveHour))
	}

	return strings.TrimSpace(b.String())
}

func coderQualifier(hour int) string {
	switch {
	case hour < 12:
		return " (morning coder)"
	case hour < 18:
		return " (afternoon coder)"
	default:
		return " (evening coder)"
	}
}
