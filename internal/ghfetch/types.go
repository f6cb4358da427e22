package ghfetch

import "time"

// Snapshot holds all raw data fetched for one account: the profile record,
// the owned repositories, recent public events, organization logins, and
// per-repo language byte counts. It is immutable once returned by Fetch.
type Snapshot struct {
	Profile RawProfile
	Repos   []RawRepository
	Events  []RawEvent
	Orgs    []string

	// LanguagesByRepo maps repo name to language -> byte count, as
	// reported by the languages endpoint. Only populated for the most
	// recently pushed non-fork repos.
	LanguagesByRepo map[string]map[string]int
}

// RawProfile is the platform-reported account record.
type RawProfile struct {
	Login           string
	Name            string
	Bio             string
	Company         string
	Location        string
	Blog            string
	TwitterUsername string
	Hireable        bool
	AvatarURL       string
	HTMLURL         string
	Followers       int
	Following       int
	PublicRepos     int
	PublicGists     int
	CreatedAt       time.Time
}

// RawRepository is one repository's reported attributes.
type RawRepository struct {
	Name        string
	FullName    string
	Description string
	Language    string
	Stars       int
	Forks       int
	Topics      []string
	Fork        bool
	Archived    bool
	HTMLURL     string
	CreatedAt   time.Time
	PushedAt    time.Time
}

// RawEvent is one recent public activity record.
type RawEvent struct {
	Type      string
	CreatedAt time.Time
}
