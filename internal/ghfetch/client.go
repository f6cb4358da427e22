package ghfetch

import (
	"net/http"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// newGitHubClient builds a go-github client with an optional bearer token
// and a pacing limiter. The unauthenticated quota is 60 requests per hour,
// so pacing is much more conservative without a token.
func newGitHubClient(token string) *github.Client {
	var base http.RoundTripper = http.DefaultTransport
	limiter := rate.NewLimiter(rate.Every(time.Second), 3)
	if token != "" {
		base = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   http.DefaultTransport,
		}
		limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 10)
	}
	httpClient := &http.Client{
		Transport: &pacedTransport{base: base, limiter: limiter},
		Timeout:   30 * time.Second,
	}
	return github.NewClient(httpClient)
}

// pacedTransport waits for the limiter before each request so bursts of
// pagination calls do not burn through the quota.
type pacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
