// Package metrics derives descriptive statistics from raw GitHub data.
// Every extractor is pure: no I/O, no clocks beyond explicit parameters.
package metrics

import (
	"math"
	"sort"

	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
)

const (
	// Languages below this share of the total are folded away.
	minLanguageShare = 1.0
	maxLanguageStats = 6
)

// GitHub's language palette for the ones that show up most often.
var languageColors = map[string]string{
	"Python":           "#3572A5",
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#2b7489",
	"Java":             "#b07219",
	"C++":              "#f34b7d",
	"C":                "#555555",
	"C#":               "#178600",
	"Go":               "#00ADD8",
	"Rust":             "#dea584",
	"Ruby":             "#701516",
	"PHP":              "#4F5D95",
	"Swift":            "#ffac45",
	"Kotlin":           "#F18E33",
	"Dart":             "#00B4AB",
	"Scala":            "#c22d40",
	"R":                "#198CE7",
	"Shell":            "#89e051",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"Vue":              "#41b883",
	"Svelte":           "#ff3e00",
	"Jupyter Notebook": "#DA5B0B",
}

const defaultLanguageColor = "#858585"

// Languages aggregates per-repo language byte counts into a ranked share
// list. Percentages are of the grand total across all languages, so the
// visible entries sum to at most 100. When no byte data is available at
// all, each repo's primary language counts as one unit instead.
//
// The list is capped for display; the second return is the number of
// languages at or above the share floor before that cap, which is what
// diversity scoring should count.
func Languages(repos []ghfetch.RawRepository, byRepo map[string]map[string]int) ([]profile.LanguageStat, int) {
	totals := make(map[string]int)
	for _, langs := range byRepo {
		for lang, bytes := range langs {
			totals[lang] += bytes
		}
	}
	if len(totals) == 0 {
		for _, r := range repos {
			if r.Language != "" {
				totals[r.Language]++
			}
		}
	}

	grand := 0
	for _, n := range totals {
		grand += n
	}
	if grand == 0 {
		return nil, 0
	}

	stats := make([]profile.LanguageStat, 0, len(totals))
	for lang, n := range totals {
		pct := round1(float64(n) / float64(grand) * 100)
		if pct < minLanguageShare {
			continue
		}
		color, ok := languageColors[lang]
		if !ok {
			color = defaultLanguageColor
		}
		stats = append(stats, profile.LanguageStat{
			Name:       lang,
			Percentage: pct,
			Bytes:      n,
			Color:      color,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})
	meaningful := len(stats)
	if len(stats) > maxLanguageStats {
		stats = stats[:maxLanguageStats]
	}
	return stats, meaningful
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
