package metrics

import (
	"sort"

	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
	"github-profile-analyzer/internal/textutil"
)

const maxDescriptionLen = 140

// TopRepos ranks repositories by stars, then forks, then most recent push,
// excluding forks and archived repos, capped at n.
func TopRepos(repos []ghfetch.RawRepository, n int) []profile.RepoHighlight {
	var own []ghfetch.RawRepository
	for _, r := range repos {
		if !r.Fork && !r.Archived {
			own = append(own, r)
		}
	}
	sort.Slice(own, func(i, j int) bool {
		if own[i].Stars != own[j].Stars {
			return own[i].Stars > own[j].Stars
		}
		if own[i].Forks != own[j].Forks {
			return own[i].Forks > own[j].Forks
		}
		return own[i].PushedAt.After(own[j].PushedAt)
	})
	if len(own) > n {
		own = own[:n]
	}

	highlights := make([]profile.RepoHighlight, 0, len(own))
	for _, r := range own {
		highlights = append(highlights, profile.RepoHighlight{
			Name:        r.Name,
			Description: textutil.Truncate(r.Description, maxDescriptionLen),
			Stars:       r.Stars,
			Forks:       r.Forks,
			Language:    r.Language,
			URL:         r.HTMLURL,
		})
	}
	return highlights
}

// TotalStars sums stargazer counts across all repos.
func TotalStars(repos []ghfetch.RawRepository) int {
	n := 0
	for _, r := range repos {
		n += r.Stars
	}
	return n
}

// TotalForks sums fork counts across all repos.
func TotalForks(repos []ghfetch.RawRepository) int {
	n := 0
	for _, r := range repos {
		n += r.Forks
	}
	return n
}
