package mergeorder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	lexerrors "lexpr.dev/lexpr/internal/errors"
	"lexpr.dev/lexpr/internal/mergeorder"
	"lexpr.dev/lexpr/internal/plan"
)

func item(name string, deps ...string) plan.Item {
	return plan.Item{Repo: "org/repo", Branch: name, Name: name, Deps: deps}
}

func TestLevels(t *testing.T) {
	t.Parallel()

	t.Run("independent items share level zero", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("A"),
			item("B", "A"),
			item("C"),
		}

		levels, err := mergeorder.Levels(items)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"A", "C"}, {"B"}}, levels)
	})

	t.Run("empty input yields no levels", func(t *testing.T) {
		t.Parallel()
		levels, err := mergeorder.Levels(nil)
		require.NoError(t, err)
		require.Empty(t, levels)
	})

	t.Run("diamond dependencies level correctly", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("top", "left", "right"),
			item("left", "base"),
			item("right", "base"),
			item("base"),
		}

		levels, err := mergeorder.Levels(items)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"base"}, {"left", "right"}, {"top"}}, levels)
	})

	t.Run("items without explicit name use repo@branch", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			{Repo: "org/repo", Branch: "feat/b", Deps: []string{"org/repo@feat/a"}},
			{Repo: "org/repo", Branch: "feat/a"},
		}

		levels, err := mergeorder.Levels(items)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"org/repo@feat/a"}, {"org/repo@feat/b"}}, levels)
	})

	t.Run("direct cycle fails", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("A", "B"),
			item("B", "A"),
		}

		levels, err := mergeorder.Levels(items)
		require.ErrorIs(t, err, lexerrors.ErrCycle)
		require.Nil(t, levels)
	})

	t.Run("chained cycle fails with no partial levels", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("A"),
			item("B", "A", "D"),
			item("C", "B"),
			item("D", "C"),
		}

		levels, err := mergeorder.Levels(items)
		require.ErrorIs(t, err, lexerrors.ErrCycle)
		require.Nil(t, levels)
	})

	t.Run("unknown dependency fails naming item and dep", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("B", "X"),
		}

		_, err := mergeorder.Levels(items)
		require.ErrorIs(t, err, lexerrors.ErrUnknownDependency)

		var depErr *lexerrors.UnknownDependencyError
		require.True(t, errors.As(err, &depErr))
		require.Equal(t, "B", depErr.Item)
		require.Equal(t, "X", depErr.Dep)
	})

	t.Run("first unknown dependency wins in item-then-dep order", func(t *testing.T) {
		t.Parallel()
		items := []plan.Item{
			item("A", "zzz"),
			item("B", "aaa"),
		}

		_, err := mergeorder.Levels(items)
		var depErr *lexerrors.UnknownDependencyError
		require.True(t, errors.As(err, &depErr))
		require.Equal(t, "A", depErr.Item)
		require.Equal(t, "zzz", depErr.Dep)
	})
}

func TestLevelsDeterminism(t *testing.T) {
	t.Parallel()

	items := []plan.Item{
		item("api", "core"),
		item("core"),
		item("cli", "api", "core"),
		item("docs"),
		item("web", "api"),
	}

	t.Run("repeated calls yield identical output", func(t *testing.T) {
		t.Parallel()
		first, err := mergeorder.Levels(items)
		require.NoError(t, err)
		second, err := mergeorder.Levels(items)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("input permutations yield identical output", func(t *testing.T) {
		t.Parallel()
		want, err := mergeorder.Levels(items)
		require.NoError(t, err)

		reversed := make([]plan.Item, len(items))
		for i, it := range items {
			reversed[len(items)-1-i] = it
		}
		got, err := mergeorder.Levels(reversed)
		require.NoError(t, err)
		require.Equal(t, want, got)

		rotated := append(append([]plan.Item(nil), items[2:]...), items[:2]...)
		got, err = mergeorder.Levels(rotated)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("every dependency lands in an earlier level", func(t *testing.T) {
		t.Parallel()
		levels, err := mergeorder.Levels(items)
		require.NoError(t, err)

		levelOf := make(map[string]int)
		for i, level := range levels {
			for _, name := range level {
				levelOf[name] = i
			}
		}
		for _, it := range items {
			for _, dep := range it.Deps {
				require.Less(t, levelOf[dep], levelOf[it.ResolvedName()],
					"%s must level before %s", dep, it.ResolvedName())
			}
		}
	})

	t.Run("levels partition the item set", func(t *testing.T) {
		t.Parallel()
		levels, err := mergeorder.Levels(items)
		require.NoError(t, err)

		seen := make(map[string]int)
		total := 0
		for _, level := range levels {
			for _, name := range level {
				seen[name]++
				total++
			}
		}
		require.Equal(t, len(items), total)
		for _, it := range items {
			require.Equal(t, 1, seen[it.ResolvedName()])
		}
	})
}
