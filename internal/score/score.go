// Package score combines extracted metrics into a bounded composite score
// and an experience-level classification.
package score

import (
	"math"
	"time"

	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
)

// Level is the experience classification derived from score and account age.
type Level string

const (
	LevelJunior Level = "Junior"
	LevelMid    Level = "Mid-Level"
	LevelSenior Level = "Senior"
	LevelExpert Level = "Expert"
)

// Sub-score caps. Each dimension is clamped independently before
// summation so no single dimension can exceed its share.
const (
	maxRepoScore       = 25.0
	maxStarScore       = 25.0
	maxDiversityScore  = 15.0
	maxActivityScore   = 20.0
	maxEngagementScore = 15.0

	// Summed stars at which the star sub-score saturates.
	starSaturation = 2000.0
)

// Compute returns the overall score in [0,100] and the experience level.
// languageCount is the number of languages with meaningful share, before
// any display cap. ageYears is the account age in years at analysis time.
func Compute(repos []ghfetch.RawRepository, totalStars int, languageCount int,
	activity profile.ActivityPattern, collab profile.CollaborationStats, ageYears float64) (float64, Level) {

	overall := repoScore(repos) +
		starScore(totalStars) +
		diversityScore(languageCount) +
		activityScore(activity) +
		engagementScore(collab)

	overall = math.Round(clamp(overall, 0, 100)*10) / 10
	return overall, level(overall, ageYears)
}

// AccountAge returns whole-and-fractional years between createdAt and now,
// rounded to one decimal.
func AccountAge(createdAt, now time.Time) float64 {
	if createdAt.IsZero() || now.Before(createdAt) {
		return 0
	}
	days := now.Sub(createdAt).Hours() / 24
	return math.Round(days/365.25*10) / 10
}

// repoScore rewards non-fork repo count, with a small quality bonus for
// repos carrying both a description and topics.
func repoScore(repos []ghfetch.RawRepository) float64 {
	s := 0.0
	for _, r := range repos {
		if r.Fork {
			continue
		}
		s += 1.5
		if r.Description != "" && len(r.Topics) > 0 {
			s += 0.5
		}
	}
	return clamp(s, 0, maxRepoScore)
}

// starScore grows logarithmically so one viral repo cannot dominate.
func starScore(totalStars int) float64 {
	if totalStars <= 0 {
		return 0
	}
	s := maxStarScore * math.Log10(1+float64(totalStars)) / math.Log10(1+starSaturation)
	return clamp(s, 0, maxStarScore)
}

func diversityScore(languageCount int) float64 {
	return clamp(float64(languageCount)*2, 0, maxDiversityScore)
}

func activityScore(activity profile.ActivityPattern) float64 {
	return clamp(activity.ConsistencyScore*0.2, 0, maxActivityScore)
}

func engagementScore(collab profile.CollaborationStats) float64 {
	s := float64(collab.Followers)/10 + float64(len(collab.Organizations))*2
	return clamp(s, 0, maxEngagementScore)
}

// level classifies by score band; the band alone decides Junior through
// Senior, and Expert additionally requires an account at least five years
// old. Age never promotes a profile above its score band.
func level(overall, ageYears float64) Level {
	switch {
	case overall < 30:
		return LevelJunior
	case overall < 50:
		return LevelMid
	case overall < 70:
		return LevelSenior
	case ageYears >= 5:
		return LevelExpert
	default:
		return LevelSenior
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
