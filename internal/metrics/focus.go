package metrics

import (
	"strings"

	"github-profile-analyzer/internal/ghfetch"
)

// focusRule ties a focus-area tag to the language and topic keywords that
// indicate it. A repo matches when its primary language or any topic is in
// the keyword set.
type focusRule struct {
	area     string
	keywords map[string]bool
}

func newRule(area string, keywords ...string) focusRule {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[k] = true
	}
	return focusRule{area: area, keywords: set}
}

// Rule order fixes the output order of co-occurring areas.
var focusRules = []focusRule{
	newRule("Web Development",
		"javascript", "typescript", "html", "css", "vue", "react", "angular",
		"svelte", "php", "nextjs", "frontend", "web"),
	newRule("Data Science",
		"python", "r", "jupyter notebook", "machine-learning", "data-science",
		"deep-learning", "pandas", "ml"),
	newRule("Mobile Development",
		"swift", "kotlin", "dart", "java", "flutter", "android", "ios", "mobile"),
	newRule("Systems Programming",
		"c", "c++", "rust", "go", "zig", "systems", "embedded", "compiler"),
	newRule("DevOps",
		"shell", "dockerfile", "hcl", "docker", "kubernetes", "terraform",
		"ansible", "devops", "ci-cd", "infrastructure"),
	newRule("Backend Development",
		"java", "python", "go", "ruby", "php", "c#", "backend", "api",
		"microservices", "server"),
	newRule("Game Development",
		"c++", "c#", "gdscript", "unity", "godot", "game", "gamedev",
		"game-engine"),
}

const (
	// A focus area needs this many matching repos before it counts.
	minFocusMatches = 2
	maxFocusAreas   = 3
)

// FocusAreas derives coarse specialization tags from repository languages
// and topics. Independent areas may co-occur; output is capped and ordered
// by rule precedence.
func FocusAreas(repos []ghfetch.RawRepository) []string {
	var areas []string
	for _, rule := range focusRules {
		matches := 0
		for _, r := range repos {
			if repoMatches(r, rule.keywords) {
				matches++
			}
		}
		if matches >= minFocusMatches {
			areas = append(areas, rule.area)
			if len(areas) == maxFocusAreas {
				break
			}
		}
	}
	return areas
}

func repoMatches(r ghfetch.RawRepository, keywords map[string]bool) bool {
	if r.Language != "" && keywords[strings.ToLower(r.Language)] {
		return true
	}
	for _, topic := range r.Topics {
		if keywords[strings.ToLower(topic)] {
			return true
		}
	}
	return false
}
