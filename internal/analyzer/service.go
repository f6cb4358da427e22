// Package analyzer sequences normalization, fetching, metric extraction,
// scoring, and summarization into one immutable analysis per query.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github-profile-analyzer/internal/cache"
	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/metrics"
	"github-profile-analyzer/internal/profile"
	"github-profile-analyzer/internal/query"
	"github-profile-analyzer/internal/score"
	"github-profile-analyzer/internal/summary"
)

const topRepoCount = 6

// Fetcher retrieves raw platform data for a handle.
type Fetcher interface {
	Fetch(ctx context.Context, handle string) (*ghfetch.Snapshot, error)
	RateLimit() profile.RateLimitStatus
}

// Service is the analysis engine. Concurrent Analyze calls share only the
// cache and the fetcher's rate-limit mirror; two racing calls for the same
// handle may both hit the upstream API (last cache write wins).
type Service struct {
	fetcher Fetcher
	cache   *cache.Store
	now     func() time.Time
}

// New wires a Service from its collaborators.
func New(f Fetcher, c *cache.Store) *Service {
	return &Service{fetcher: f, cache: c, now: time.Now}
}

// Analyze resolves the query to a handle and produces the full analysis,
// serving from cache when a fresh entry exists. On any error nothing
// partial is cached or returned.
func (s *Service) Analyze(ctx context.Context, rawQuery string) (*profile.Analysis, error) {
	handle, err := query.Normalize(rawQuery)
	if err != nil {
		return nil, err
	}

	if a, ok := s.cache.Get(handle); ok {
		slog.Debug("serving analysis from cache", "handle", handle)
		return a, nil
	}

	// The fetch runs on a detached context: if the caller goes away the
	// upstream work completes and the result still lands in the cache.
	snap, err := s.fetcher.Fetch(context.WithoutCancel(ctx), handle)
	if err != nil {
		return nil, err
	}

	a := s.assemble(snap)
	s.cache.Set(handle, a)
	slog.Info("analysis complete",
		"handle", handle,
		"repos", len(snap.Repos),
		"score", a.OverallScore,
		"level", a.ExperienceLevel,
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// RateLimit reports the upstream quota as of the most recent fetch.
func (s *Service) RateLimit() profile.RateLimitStatus {
	return s.fetcher.RateLimit()
}

// CacheStats reports valid and total cache entry counts.
func (s *Service) CacheStats() (valid, total int) {
	return s.cache.Stats()
}

// ClearCache drops every cached analysis and returns how many were removed.
func (s *Service) ClearCache() int {
	return s.cache.Clear()
}

func (s *Service) assemble(snap *ghfetch.Snapshot) *profile.Analysis {
	now := s.now()

	langs, langCount := metrics.Languages(snap.Repos, snap.LanguagesByRepo)
	activity := metrics.Activity(snap.Events)
	collab := metrics.Collaboration(snap.Profile, snap.Orgs)
	growth := metrics.Growth(snap.Repos, now.UTC().Year())
	focus := metrics.FocusAreas(snap.Repos)
	top := metrics.TopRepos(snap.Repos, topRepoCount)
	totalStars := metrics.TotalStars(snap.Repos)
	totalForks := metrics.TotalForks(snap.Repos)

	age := score.AccountAge(snap.Profile.CreatedAt, now)
	overall, level := score.Compute(snap.Repos, totalStars, langCount, activity, collab, age)

	primary := ""
	if len(langs) > 0 {
		primary = langs[0].Name
	}
	techDiversity := float64(langCount) * 12
	if techDiversity > 100 {
		techDiversity = 100
	}

	text := summary.Generate(summary.Input{
		Name:            snap.Profile.Name,
		Login:           snap.Profile.Login,
		Level:           level,
		AccountAgeYears: age,
		FocusAreas:      focus,
		Languages:       langs,
		TotalStars:      totalStars,
		RepoCount:       len(snap.Repos),
		Collaboration:   collab,
		Activity:        activity,
	})

	return &profile.Analysis{
		Username:           snap.Profile.Login,
		Name:               snap.Profile.Name,
		AvatarURL:          snap.Profile.AvatarURL,
		Bio:                snap.Profile.Bio,
		Location:           snap.Profile.Location,
		Company:            snap.Profile.Company,
		Blog:               snap.Profile.Blog,
		Twitter:            snap.Profile.TwitterUsername,
		Hireable:           snap.Profile.Hireable,
		CreatedAt:          snap.Profile.CreatedAt,
		ProfileURL:         snap.Profile.HTMLURL,
		AccountAgeYears:    age,
		Languages:          langs,
		PrimaryLanguage:    primary,
		TechDiversityScore: techDiversity,
		TopRepos:           top,
		TotalStars:         totalStars,
		TotalForks:         totalForks,
		Activity:           activity,
		Collaboration:      collab,
		Growth:             growth,
		FocusAreas:         focus,
		OverallScore:       overall,
		ExperienceLevel:    string(level),
		RecruiterSummary:   text,
	}
}
