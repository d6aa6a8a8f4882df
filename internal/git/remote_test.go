package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lexpr.dev/lexpr/internal/git"
)

func TestRepoSlug(t *testing.T) {
	t.Parallel()

	t.Run("parses HTTPS URL with .git suffix", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "owner/repo", git.RepoSlug("https://github.com/owner/repo.git"))
	})

	t.Run("parses HTTPS URL without .git suffix", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "owner/repo", git.RepoSlug("https://github.com/owner/repo"))
	})

	t.Run("parses SSH URL", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "owner/repo", git.RepoSlug("git@github.com:owner/repo.git"))
	})

	t.Run("parses enterprise host", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "owner/repo", git.RepoSlug("https://github.company.com/owner/repo.git"))
	})

	t.Run("returns empty string for unparseable URLs", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", git.RepoSlug(""))
		require.Equal(t, "", git.RepoSlug("repo"))
		require.Equal(t, "", git.RepoSlug("git@github.com"))
	})
}

func TestRepoSlugOrDir(t *testing.T) {
	t.Parallel()

	require.Equal(t, "owner/repo", git.RepoSlugOrDir("git@github.com:owner/repo.git", "/tmp/elsewhere"))
	require.Equal(t, "myproject", git.RepoSlugOrDir("", "/home/dev/myproject"))
}
