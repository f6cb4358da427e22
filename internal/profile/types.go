package profile

import "time"

// Analysis is the complete result of analyzing one GitHub profile.
// It is assembled once per query and never mutated afterwards.
type Analysis struct {
	Username   string    `json:"username"`
	Name       string    `json:"name,omitempty"`
	AvatarURL  string    `json:"avatar_url"`
	Bio        string    `json:"bio,omitempty"`
	Location   string    `json:"location,omitempty"`
	Company    string    `json:"company,omitempty"`
	Blog       string    `json:"blog,omitempty"`
	Twitter    string    `json:"twitter,omitempty"`
	Hireable   bool      `json:"hireable"`
	CreatedAt  time.Time `json:"created_at"`
	ProfileURL string    `json:"profile_url"`

	AccountAgeYears float64 `json:"account_age_years"`

	Languages          []LanguageStat `json:"languages"`
	PrimaryLanguage    string         `json:"primary_language,omitempty"`
	TechDiversityScore float64        `json:"tech_diversity_score"`

	TopRepos   []RepoHighlight `json:"top_repos"`
	TotalStars int             `json:"total_stars"`
	TotalForks int             `json:"total_forks"`

	Activity      ActivityPattern    `json:"activity"`
	Collaboration CollaborationStats `json:"collaboration"`
	Growth        []GrowthPoint      `json:"growth_timeline"`
	FocusAreas    []string           `json:"focus_areas"`

	OverallScore    float64 `json:"overall_score"`
	ExperienceLevel string  `json:"experience_level"`

	RecruiterSummary string `json:"recruiter_summary"`
}

// LanguageStat is one language's share of the profile's total code volume.
type LanguageStat struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Bytes      int     `json:"bytes"`
	Color      string  `json:"color"`
}

// RepoHighlight is one top-ranked repository.
type RepoHighlight struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language,omitempty"`
	URL         string `json:"url"`
}

// ActivityPattern summarizes when the account is active, derived from
// recent public events.
type ActivityPattern struct {
	MostActiveDay    string  `json:"most_active_day"`
	MostActiveHour   int     `json:"most_active_hour"`
	PushEvents       int     `json:"push_events"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// CollaborationStats carries community-facing profile numbers through
// without transformation.
type CollaborationStats struct {
	PublicRepos   int      `json:"public_repos"`
	PublicGists   int      `json:"public_gists"`
	Followers     int      `json:"followers"`
	Following     int      `json:"following"`
	FollowerRatio float64  `json:"follower_ratio"`
	Organizations []string `json:"organizations"`
}

// GrowthPoint summarizes one calendar year of repository creation: how
// many repos were started, which languages they introduced, and the stars
// those repos have earned to date.
type GrowthPoint struct {
	Year      int      `json:"year"`
	Repos     int      `json:"repos_created"`
	Languages []string `json:"languages_used"`
	Stars     int      `json:"stars_earned"`
}

// RateLimitStatus mirrors the quota GitHub reported on the most recent
// API response. Pointer fields are nil before the first upstream call.
type RateLimitStatus struct {
	Remaining *int       `json:"remaining"`
	Limit     *int       `json:"limit"`
	ResetAt   *time.Time `json:"reset_at"`
	HasToken  bool       `json:"has_token"`
}
