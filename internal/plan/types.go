// Package plan defines the merge plan document model and its validation.
//
// A plan names a merge target and the set of change items (repository +
// branch, with optional explicit name, dependencies and gate commands)
// that should land on it. Plans are decoded from JSON, validated against
// the plan schema, and handed to the mergeorder engine as immutable
// values.
package plan

// Plan represents the top-level plan document
type Plan struct {
	Target string `json:"target"`
	Items  []Item `json:"items"`
}

// Item represents a single change unit: a branch in a repository with
// optional explicit name, dependencies and gates
type Item struct {
	Repo   string   `json:"repo"`
	Branch string   `json:"branch"`
	Name   string   `json:"name,omitempty"`
	Deps   []string `json:"deps,omitempty"`
	Gates  []Gate   `json:"gates,omitempty"`
}

// Gate represents a named check command associated with an item.
// Gate execution is out of scope for v1; gates are carried through
// validation only.
type Gate struct {
	Name string            `json:"name"`
	Run  string            `json:"run"`
	Cwd  string            `json:"cwd,omitempty"`
	Env  map[string]string `json:"env,omitempty"`
}

// ResolvedName returns the item's identity: the explicit name if set,
// otherwise "repo@branch". Every downstream component addresses items
// only by this name.
func (i Item) ResolvedName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Repo + "@" + i.Branch
}
