package metrics

import (
	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
)

// Collaboration passes community-facing profile numbers through, adding
// only the follower ratio.
func Collaboration(p ghfetch.RawProfile, orgs []string) profile.CollaborationStats {
	following := p.Following
	if following == 0 {
		following = 1
	}
	return profile.CollaborationStats{
		PublicRepos:   p.PublicRepos,
		PublicGists:   p.PublicGists,
		Followers:     p.Followers,
		Following:     p.Following,
		FollowerRatio: round2(float64(p.Followers) / float64(following)),
		Organizations: append([]string{}, orgs...),
	}
}
