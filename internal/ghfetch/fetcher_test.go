package ghfetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v68/github"

	"github-profile-analyzer/internal/profile"
)

func newTestFetcher(t *testing.T, handler http.Handler) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	client.BaseURL = base

	return &Fetcher{
		client:        client,
		limits:        &rateLimitMirror{},
		maxRepoPages:  2,
		maxEventPages: 2,
		now:           time.Now,
	}
}

func withRateHeaders(w http.ResponseWriter, remaining int) {
	w.Header().Set("X-RateLimit-Limit", "5000")
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4999)
		fmt.Fprint(w, `{
			"login": "octocat", "name": "The Octocat", "bio": "mascot",
			"followers": 100, "following": 5, "public_repos": 2, "public_gists": 1,
			"avatar_url": "https://example.test/a.png",
			"html_url": "https://github.com/octocat",
			"created_at": "2015-03-01T00:00:00Z"
		}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4998)
		fmt.Fprint(w, `[
			{"name": "hello", "full_name": "octocat/hello", "language": "Go",
			 "stargazers_count": 42, "forks_count": 3, "topics": ["cli"],
			 "html_url": "https://github.com/octocat/hello",
			 "created_at": "2019-05-01T00:00:00Z", "pushed_at": "2024-01-01T00:00:00Z"},
			{"name": "forked", "full_name": "octocat/forked", "fork": true,
			 "created_at": "2020-01-01T00:00:00Z", "pushed_at": "2020-02-01T00:00:00Z"}
		]`)
	})
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4997)
		fmt.Fprint(w, `[
			{"type": "PushEvent", "created_at": "2024-06-03T14:00:00Z"},
			{"type": "WatchEvent", "created_at": "2024-06-04T09:00:00Z"}
		]`)
	})
	mux.HandleFunc("/users/octocat/orgs", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4996)
		fmt.Fprint(w, `[{"login": "github"}]`)
	})
	mux.HandleFunc("/repos/octocat/hello/languages", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4995)
		fmt.Fprint(w, `{"Go": 7000, "Shell": 3000}`)
	})

	f := newTestFetcher(t, mux)
	snap, err := f.Fetch(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if snap.Profile.Login != "octocat" || snap.Profile.Followers != 100 {
		t.Errorf("unexpected profile: %+v", snap.Profile)
	}
	if len(snap.Repos) != 2 {
		t.Fatalf("repos = %d, want 2", len(snap.Repos))
	}
	if !snap.Repos[1].Fork {
		t.Error("second repo should be a fork")
	}
	if len(snap.Events) != 2 || snap.Events[0].Type != "PushEvent" {
		t.Errorf("unexpected events: %+v", snap.Events)
	}
	if len(snap.Orgs) != 1 || snap.Orgs[0] != "github" {
		t.Errorf("unexpected orgs: %+v", snap.Orgs)
	}
	// Only the non-fork repo gets a languages call.
	if len(snap.LanguagesByRepo) != 1 || snap.LanguagesByRepo["hello"]["Go"] != 7000 {
		t.Errorf("unexpected languages: %+v", snap.LanguagesByRepo)
	}

	st := f.RateLimit()
	if st.Remaining == nil || st.Limit == nil || st.ResetAt == nil {
		t.Fatal("rate limit mirror not updated")
	}
	if *st.Limit != 5000 {
		t.Errorf("limit = %d, want 5000", *st.Limit)
	}
}

func TestFetchNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4999)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	f := newTestFetcher(t, mux)
	_, err := f.Fetch(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if kind := profile.KindOf(err); kind != profile.KindNotFound {
		t.Errorf("error kind = %s, want not_found", kind)
	}
}

func TestFetchRateLimited(t *testing.T) {
	reset := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
	})

	f := newTestFetcher(t, mux)
	_, err := f.Fetch(context.Background(), "octocat")
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	var pe *profile.Error
	if !errors.As(err, &pe) || pe.Kind != profile.KindRateLimited {
		t.Fatalf("error = %v, want rate_limited", err)
	}
	if !pe.ResetAt.Equal(reset) {
		t.Errorf("ResetAt = %v, want %v", pe.ResetAt, reset)
	}
}

func TestFetchFailsFastWhenQuotaExhausted(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	f := newTestFetcher(t, handler)
	f.limits.update(github.Rate{
		Limit:     60,
		Remaining: 0,
		Reset:     github.Timestamp{Time: time.Now().Add(time.Hour)},
	})

	_, err := f.Fetch(context.Background(), "octocat")
	if profile.KindOf(err) != profile.KindRateLimited {
		t.Fatalf("error = %v, want rate_limited", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("issued %d upstream calls, want 0", n)
	}
}

func TestFetchUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"message": "upstream exploded"}`)
	})

	f := newTestFetcher(t, mux)
	_, err := f.Fetch(context.Background(), "octocat")
	if kind := profile.KindOf(err); kind != profile.KindUpstream {
		t.Errorf("error kind = %s, want upstream_error", kind)
	}
}

func TestFetchMalformedUserRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		withRateHeaders(w, 4999)
		fmt.Fprint(w, `{"id": 1}`)
	})

	f := newTestFetcher(t, mux)
	_, err := f.Fetch(context.Background(), "octocat")
	if kind := profile.KindOf(err); kind != profile.KindInternal {
		t.Errorf("error kind = %s, want internal_error", kind)
	}
}
