package git

import (
	"path/filepath"
	"strings"
)

// RepoSlug derives an "owner/repo" slug from a remote URL. Handles both
// https and ssh formats:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//
// Returns "" when the URL cannot be parsed.
func RepoSlug(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, ".git")
	if url == "" {
		return ""
	}

	if at := strings.Index(url, "@"); at >= 0 {
		// SSH format: git@host:owner/repo
		colon := strings.Index(url[at:], ":")
		if colon < 0 {
			return ""
		}
		path := url[at+colon+1:]
		parts := strings.Split(path, "/")
		if len(parts) < 2 {
			return ""
		}
		return parts[len(parts)-2] + "/" + parts[len(parts)-1]
	}

	// HTTPS format: scheme://host/owner/repo
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

// RepoSlugOrDir returns the slug for url, falling back to the base name
// of dir when the URL is missing or unparseable.
func RepoSlugOrDir(url, dir string) string {
	if slug := RepoSlug(url); slug != "" {
		return slug
	}
	return filepath.Base(dir)
}
