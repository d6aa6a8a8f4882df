package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"lexpr.dev/lexpr/internal/git"
)

func newTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("test\n"), 0644))
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	hash, err := worktree.Commit("init", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName("feat-a"), hash)
	require.NoError(t, repo.Storer.SetReference(ref))

	return dir, repo
}

func TestRepository(t *testing.T) {
	t.Parallel()

	t.Run("fails outside a repository", func(t *testing.T) {
		t.Parallel()
		_, err := git.OpenRepository(t.TempDir())
		require.Error(t, err)
	})

	t.Run("lists local branches", func(t *testing.T) {
		t.Parallel()
		dir, _ := newTestRepo(t)

		repo, err := git.OpenRepository(dir)
		require.NoError(t, err)

		branches, err := repo.GetBranchNames()
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"master", "feat-a"}, branches)
	})

	t.Run("reports the checked-out branch", func(t *testing.T) {
		t.Parallel()
		dir, _ := newTestRepo(t)

		repo, err := git.OpenRepository(dir)
		require.NoError(t, err)

		current, err := repo.GetCurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "master", current)
	})

	t.Run("returns the origin URL when configured", func(t *testing.T) {
		t.Parallel()
		dir, raw := newTestRepo(t)

		repo, err := git.OpenRepository(dir)
		require.NoError(t, err)
		require.Equal(t, "", repo.GetOriginURL())

		_, err = raw.CreateRemote(&gogitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:owner/repo.git"},
		})
		require.NoError(t, err)

		repo, err = git.OpenRepository(dir)
		require.NoError(t, err)
		require.Equal(t, "git@github.com:owner/repo.git", repo.GetOriginURL())
	})
}
