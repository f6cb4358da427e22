package metrics

import (
	"sort"

	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
)

// Growth buckets repositories by creation year, zero-filling every year
// from the earliest creation through currentYear so the timeline has no
// gaps. Each point carries the repos started that year, the primary
// languages they introduced (sorted), and their current star totals.
// Repos with no creation timestamp are ignored.
func Growth(repos []ghfetch.RawRepository, currentYear int) []profile.GrowthPoint {
	type yearData struct {
		repos     int
		stars     int
		languages map[string]bool
	}
	years := make(map[int]*yearData)
	first := 0
	for _, r := range repos {
		if r.CreatedAt.IsZero() {
			continue
		}
		year := r.CreatedAt.UTC().Year()
		d := years[year]
		if d == nil {
			d = &yearData{languages: make(map[string]bool)}
			years[year] = d
		}
		d.repos++
		d.stars += r.Stars
		if r.Language != "" {
			d.languages[r.Language] = true
		}
		if first == 0 || year < first {
			first = year
		}
	}
	if first == 0 {
		return nil
	}

	last := currentYear
	for year := range years {
		if year > last {
			last = year
		}
	}

	timeline := make([]profile.GrowthPoint, 0, last-first+1)
	for year := first; year <= last; year++ {
		point := profile.GrowthPoint{Year: year, Languages: []string{}}
		if d := years[year]; d != nil {
			point.Repos = d.repos
			point.Stars = d.stars
			for lang := range d.languages {
				point.Languages = append(point.Languages, lang)
			}
			sort.Strings(point.Languages)
		}
		timeline = append(timeline, point)
	}
	return timeline
}
