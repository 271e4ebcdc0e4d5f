package hud

import (
	"net/url"
	"path"
	"strings"
)

// SourceKind selects the update backend for an entry.
type SourceKind int

const (
	// GenericSource entries are plain download URLs without commit metadata.
	GenericSource SourceKind = iota
	// GitHubSource entries carry a GitHub repository whose latest commit
	// decides freshness.
	GitHubSource
)

func (k SourceKind) String() string {
	switch k {
	case GitHubSource:
		return "github"
	default:
		return "generic"
	}
}

// Entry is one tracked HUD package.
type Entry struct {
	Name        string
	UpstreamURI string
	RepoPath    string
	LastUpdate  int64
	SourceURI   string
	// Checksum optionally pins the upstream archive as "<algo>:<hex>".
	Checksum string
}

// Kind reports which backend handles the entry.
func (e Entry) Kind() SourceKind {
	if _, ok := GitHubRepo(e.RepoPath); ok {
		return GitHubSource
	}
	return GenericSource
}

// Filename is the base name of the recorded source URI, the baseline the
// generic backend compares freshly hashed downloads against.
func (e Entry) Filename() string {
	raw := strings.TrimSpace(e.SourceURI)
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	base := path.Base(raw)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// GitHubRepo extracts "owner/repo" from an https://github.com URL.
func GitHubRepo(repoURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(repoURL))
	if err != nil {
		return "", false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", false
	}
	host := strings.ToLower(u.Host)
	if host != "github.com" && host != "www.github.com" {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	owner := parts[0]
	repo := strings.TrimSuffix(parts[1], ".git")
	if owner == "" || repo == "" {
		return "", false
	}
	return owner + "/" + repo, true
}
