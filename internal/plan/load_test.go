package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lexpr.dev/lexpr/internal/plan"
	"lexpr.dev/lexpr/testhelpers"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a plan file as a raw document", func(t *testing.T) {
		t.Parallel()
		path := testhelpers.WritePlanFile(t, testhelpers.PlanDoc("main",
			testhelpers.ItemDoc("A", "org/repo", "feat/a"),
		))

		doc, err := plan.LoadFile(path)
		require.NoError(t, err)

		root, ok := doc.(map[string]any)
		require.True(t, ok)
		require.Equal(t, "main", root["target"])
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, err := plan.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "plan.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := plan.LoadFile(path)
		require.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	p := &plan.Plan{
		Target: "main",
		Items: []plan.Item{
			{Repo: "org/repo", Branch: "feat/a"},
		},
	}

	data, err := plan.Encode(p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	doc, err := plan.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, plan.Validate(doc))

	decoded, err := plan.Decode(doc)
	require.NoError(t, err)
	require.Equal(t, p, decoded)
}
