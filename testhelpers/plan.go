// Package testhelpers provides plan-document builders and file helpers
// shared by the test suites.
package testhelpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// PlanDoc builds a raw plan document in the shape produced by decoding
// a plan file with encoding/json.
func PlanDoc(target string, items ...map[string]any) map[string]any {
	list := make([]any, len(items))
	for i, item := range items {
		list[i] = item
	}
	return map[string]any{
		"target": target,
		"items":  list,
	}
}

// ItemDoc builds a raw item document. An empty name is omitted so the
// item's identity derives from repo@branch.
func ItemDoc(name, repo, branch string, deps ...string) map[string]any {
	item := map[string]any{
		"repo":   repo,
		"branch": branch,
	}
	if name != "" {
		item["name"] = name
	}
	if len(deps) > 0 {
		list := make([]any, len(deps))
		for i, dep := range deps {
			list[i] = dep
		}
		item["deps"] = list
	}
	return item
}

// GateDoc builds a raw gate document
func GateDoc(name, run string) map[string]any {
	return map[string]any{
		"name": name,
		"run":  run,
	}
}

// WritePlanFile writes a plan document to a temp file and returns its path
func WritePlanFile(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
