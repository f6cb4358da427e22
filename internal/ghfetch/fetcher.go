// Package ghfetch retrieves raw profile, repository, and event data from
// the GitHub REST API.
package ghfetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/sync/errgroup"

	"github-profile-analyzer/internal/profile"
)

const (
	perPage             = 100
	languageRepoCap     = 20
	languageConcurrency = 5
)

// Fetcher retrieves a user's profile, owned repositories, recent public
// events, and organizations, tracking GitHub's reported quota as it goes.
type Fetcher struct {
	client        *github.Client
	limits        *rateLimitMirror
	maxRepoPages  int
	maxEventPages int
	now           func() time.Time
}

// New returns a Fetcher. token may be empty, which runs against the much
// smaller unauthenticated quota.
func New(token string, maxRepoPages, maxEventPages int) *Fetcher {
	return &Fetcher{
		client:        newGitHubClient(token),
		limits:        &rateLimitMirror{hasToken: token != ""},
		maxRepoPages:  maxRepoPages,
		maxEventPages: maxEventPages,
		now:           time.Now,
	}
}

// RateLimit returns the quota GitHub reported on the most recent response.
func (f *Fetcher) RateLimit() profile.RateLimitStatus {
	return f.limits.status()
}

// Fetch collects the full raw snapshot for handle. It fails fast with a
// rate-limited error instead of issuing calls once the quota reads zero.
func (f *Fetcher) Fetch(ctx context.Context, handle string) (*Snapshot, error) {
	if err := f.checkQuota(); err != nil {
		return nil, err
	}

	prof, err := f.fetchProfile(ctx, handle)
	if err != nil {
		return nil, err
	}

	repos, err := f.fetchRepos(ctx, handle)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Profile: prof, Repos: repos}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events, err := f.fetchEvents(gctx, handle)
		if err != nil {
			return err
		}
		snap.Events = events
		return nil
	})
	g.Go(func() error {
		orgs, err := f.fetchOrgs(gctx, handle)
		if err != nil {
			return err
		}
		snap.Orgs = orgs
		return nil
	})
	g.Go(func() error {
		langs, err := f.fetchLanguages(gctx, handle, repos)
		if err != nil {
			return err
		}
		snap.LanguagesByRepo = langs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("fetch complete",
		"handle", handle,
		"repos", len(snap.Repos),
		"events", len(snap.Events),
		"orgs", len(snap.Orgs),
		"repos_with_languages", len(snap.LanguagesByRepo),
	)
	return snap, nil
}

func (f *Fetcher) checkQuota() error {
	if ex, reset := f.limits.exhausted(f.now()); ex {
		return &profile.Error{
			Kind:    profile.KindRateLimited,
			Reason:  fmt.Sprintf("GitHub API quota exhausted, resets at %s", reset.UTC().Format(time.RFC3339)),
			ResetAt: reset,
		}
	}
	return nil
}

func (f *Fetcher) fetchProfile(ctx context.Context, handle string) (RawProfile, error) {
	user, resp, err := f.client.Users.Get(ctx, handle)
	f.observe(resp)
	if err != nil {
		return RawProfile{}, f.classify(err, handle)
	}
	if user.GetLogin() == "" || user.GetCreatedAt().Time.IsZero() {
		return RawProfile{}, profile.NewError(profile.KindInternal,
			"github returned a malformed user record for %q", handle)
	}
	return RawProfile{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		Bio:             user.GetBio(),
		Company:         user.GetCompany(),
		Location:        user.GetLocation(),
		Blog:            user.GetBlog(),
		TwitterUsername: user.GetTwitterUsername(),
		Hireable:        user.GetHireable(),
		AvatarURL:       user.GetAvatarURL(),
		HTMLURL:         user.GetHTMLURL(),
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
		PublicRepos:     user.GetPublicRepos(),
		PublicGists:     user.GetPublicGists(),
		CreatedAt:       user.GetCreatedAt().Time,
	}, nil
}

func (f *Fetcher) fetchRepos(ctx context.Context, handle string) ([]RawRepository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var all []RawRepository
	for page := 0; page < f.maxRepoPages; page++ {
		if err := f.checkQuota(); err != nil {
			return nil, err
		}
		repos, resp, err := f.client.Repositories.ListByUser(ctx, handle, opts)
		f.observe(resp)
		if err != nil {
			return nil, f.classify(err, handle)
		}
		for _, r := range repos {
			all = append(all, RawRepository{
				Name:        r.GetName(),
				FullName:    r.GetFullName(),
				Description: r.GetDescription(),
				Language:    r.GetLanguage(),
				Stars:       r.GetStargazersCount(),
				Forks:       r.GetForksCount(),
				Topics:      r.Topics,
				Fork:        r.GetFork(),
				Archived:    r.GetArchived(),
				HTMLURL:     r.GetHTMLURL(),
				CreatedAt:   r.GetCreatedAt().Time,
				PushedAt:    r.GetPushedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

func (f *Fetcher) fetchEvents(ctx context.Context, handle string) ([]RawEvent, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var all []RawEvent
	for page := 0; page < f.maxEventPages; page++ {
		if err := f.checkQuota(); err != nil {
			return nil, err
		}
		events, resp, err := f.client.Activity.ListEventsPerformedByUser(ctx, handle, true, opts)
		f.observe(resp)
		if err != nil {
			return nil, f.classify(err, handle)
		}
		for _, ev := range events {
			all = append(all, RawEvent{
				Type:      ev.GetType(),
				CreatedAt: ev.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

func (f *Fetcher) fetchOrgs(ctx context.Context, handle string) ([]string, error) {
	if err := f.checkQuota(); err != nil {
		return nil, err
	}
	orgs, resp, err := f.client.Organizations.List(ctx, handle, &github.ListOptions{PerPage: perPage})
	f.observe(resp)
	if err != nil {
		return nil, f.classify(err, handle)
	}
	logins := make([]string, 0, len(orgs))
	for _, org := range orgs {
		logins = append(logins, org.GetLogin())
	}
	return logins, nil
}

// fetchLanguages retrieves per-language byte counts for the most recently
// pushed non-fork repos. A repo whose languages call fails is skipped (the
// language mix falls back to repo-count weighting); a rate-limit failure
// aborts the whole fetch.
func (f *Fetcher) fetchLanguages(ctx context.Context, handle string, repos []RawRepository) (map[string]map[string]int, error) {
	var candidates []RawRepository
	for _, r := range repos {
		if !r.Fork {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].PushedAt.After(candidates[j].PushedAt)
	})
	if len(candidates) > languageRepoCap {
		candidates = candidates[:languageRepoCap]
	}

	result := make(map[string]map[string]int, len(candidates))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(languageConcurrency)
	for _, repo := range candidates {
		repo := repo
		g.Go(func() error {
			if err := f.checkQuota(); err != nil {
				return err
			}
			langs, resp, err := f.client.Repositories.ListLanguages(gctx, handle, repo.Name)
			f.observe(resp)
			if err != nil {
				classified := f.classify(err, handle)
				if profile.KindOf(classified) == profile.KindRateLimited {
					return classified
				}
				slog.Debug("skipping languages for repo", "repo", repo.FullName, "error", err)
				return nil
			}
			mu.Lock()
			result[repo.Name] = langs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (f *Fetcher) observe(resp *github.Response) {
	if resp != nil {
		f.limits.update(resp.Rate)
	}
}

// classify maps go-github errors onto the domain error taxonomy.
func (f *Fetcher) classify(err error, handle string) error {
	var rle *github.RateLimitError
	if errors.As(err, &rle) {
		reset := rle.Rate.Reset.Time
		return &profile.Error{
			Kind:    profile.KindRateLimited,
			Reason:  fmt.Sprintf("GitHub API quota exhausted, resets at %s", reset.UTC().Format(time.RFC3339)),
			ResetAt: reset,
			Err:     err,
		}
	}
	var abuse *github.AbuseRateLimitError
	if errors.As(err, &abuse) {
		reset := f.now()
		if abuse.RetryAfter != nil {
			reset = reset.Add(*abuse.RetryAfter)
		}
		return &profile.Error{
			Kind:    profile.KindRateLimited,
			Reason:  "GitHub flagged the request rate, backing off",
			ResetAt: reset,
			Err:     err,
		}
	}
	var ger *github.ErrorResponse
	if errors.As(err, &ger) && ger.Response != nil && ger.Response.StatusCode == http.StatusNotFound {
		return profile.WrapError(profile.KindNotFound, err, "github user %q not found", handle)
	}
	return profile.WrapError(profile.KindUpstream, err, "github request failed")
}
