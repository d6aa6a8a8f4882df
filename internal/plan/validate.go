package plan

import (
	"bytes"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	lexerrors "lexpr.dev/lexpr/internal/errors"
	"lexpr.dev/lexpr/schemas"
)

const schemaURL = "https://lexpr.dev/schemas/plan.schema.json"

var (
	schemaOnce    sync.Once
	schemaCached  *jsonschema.Schema
	schemaInitErr error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemas.PlanSchema)); err != nil {
			schemaInitErr = err
			return
		}
		schemaCached, schemaInitErr = compiler.Compile(schemaURL)
	})
	return schemaCached, schemaInitErr
}

// Validate checks a raw plan document against the plan schema and the
// resolved-name uniqueness rule. Returns nil when the document is valid,
// or a *errors.SchemaError naming the first offending field by path.
//
// When the schema engine cannot be initialized, the hand-written
// structural check (ValidateStructural) is used instead; both strategies
// share the same error contract.
func Validate(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return ValidateStructural(doc)
	}

	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			path, msg := firstViolation(ve)
			return lexerrors.NewSchemaError(path, msg)
		}
		return lexerrors.NewSchemaError("<root>", err.Error())
	}

	return checkUniqueNames(doc)
}

// firstViolation flattens the validation error tree to its leaf causes
// and returns the one with the smallest instance path. Determinism here
// matters: the first reported error must not depend on keyword evaluation
// order inside the schema engine.
func firstViolation(ve *jsonschema.ValidationError) (path, message string) {
	var leaves []*jsonschema.ValidationError
	collectLeaves(ve, &leaves)

	sort.SliceStable(leaves, func(i, j int) bool {
		return pointerLess(leaves[i].InstanceLocation, leaves[j].InstanceLocation)
	})

	first := leaves[0]
	loc := strings.TrimPrefix(first.InstanceLocation, "/")
	if loc == "" {
		loc = "<root>"
	}
	return loc, first.Message
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, ve)
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}

// pointerLess orders JSON pointers segment-wise, comparing array indices
// numerically so that items/2 sorts before items/10.
func pointerLess(a, b string) bool {
	as := strings.Split(strings.TrimPrefix(a, "/"), "/")
	bs := strings.Split(strings.TrimPrefix(b, "/"), "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			return ai < bi
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}

// checkUniqueNames enforces global uniqueness of resolved item names.
// JSON Schema cannot express the repo@branch derivation, so both
// validation strategies run this check after the structural pass.
func checkUniqueNames(doc any) error {
	root, ok := doc.(map[string]any)
	if !ok {
		return lexerrors.NewSchemaError("<root>", "expected object")
	}
	items, ok := root["items"].([]any)
	if !ok {
		return lexerrors.NewSchemaError("items", "required array")
	}

	seen := make(map[string]struct{}, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name := resolvedNameRaw(item)
		if _, dup := seen[name]; dup {
			return lexerrors.NewSchemaError("items", "duplicate item names (explicit or derived)")
		}
		seen[name] = struct{}{}
	}
	return nil
}

// resolvedNameRaw derives an item's identity from its raw document form:
// the explicit name if present and non-empty, otherwise repo@branch.
func resolvedNameRaw(item map[string]any) string {
	if name, _ := item["name"].(string); name != "" {
		return name
	}
	repo, _ := item["repo"].(string)
	branch, _ := item["branch"].(string)
	return repo + "@" + branch
}

// ValidateStructural is the schema-free validation strategy. It walks
// the document in a fixed field order and stops at the first violation,
// matching the schema strategy's error contract.
func ValidateStructural(doc any) error {
	root, ok := doc.(map[string]any)
	if !ok {
		return lexerrors.NewSchemaError("<root>", "expected object")
	}

	if !isNonEmptyString(root["target"]) {
		return lexerrors.NewSchemaError("target", "required non-empty string")
	}

	items, ok := root["items"].([]any)
	if !ok {
		return lexerrors.NewSchemaError("items", "required array")
	}

	for idx, raw := range items {
		itemPath := "items/" + strconv.Itoa(idx)
		item, ok := raw.(map[string]any)
		if !ok {
			return lexerrors.NewSchemaError(itemPath, "expected object")
		}

		for _, req := range []string{"repo", "branch"} {
			if !isNonEmptyString(item[req]) {
				return lexerrors.NewSchemaError(itemPath+"/"+req, "required non-empty string")
			}
		}

		if name, present := item["name"]; present {
			if _, ok := name.(string); !ok {
				return lexerrors.NewSchemaError(itemPath+"/name", "expected string")
			}
		}

		if deps, present := item["deps"]; present {
			if !isStringList(deps) {
				return lexerrors.NewSchemaError(itemPath+"/deps", "expected array of strings")
			}
		}

		if rawGates, present := item["gates"]; present {
			gates, ok := rawGates.([]any)
			if !ok {
				return lexerrors.NewSchemaError(itemPath+"/gates", "expected array")
			}
			for gidx, rawGate := range gates {
				gatePath := itemPath + "/gates/" + strconv.Itoa(gidx)
				gate, ok := rawGate.(map[string]any)
				if !ok {
					return lexerrors.NewSchemaError(gatePath, "expected object")
				}
				for _, req := range []string{"name", "run"} {
					if !isNonEmptyString(gate[req]) {
						return lexerrors.NewSchemaError(gatePath+"/"+req, "required non-empty string")
					}
				}
				if cwd, present := gate["cwd"]; present {
					if _, ok := cwd.(string); !ok {
						return lexerrors.NewSchemaError(gatePath+"/cwd", "expected string")
					}
				}
				if env, present := gate["env"]; present {
					if !isStringMap(env) {
						return lexerrors.NewSchemaError(gatePath+"/env", "expected object of string->string")
					}
				}
			}
		}
	}

	return checkUniqueNames(doc)
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

func isStringList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, entry := range list {
		if !isNonEmptyString(entry) {
			return false
		}
	}
	return true
}

func isStringMap(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, value := range m {
		if _, ok := value.(string); !ok {
			return false
		}
	}
	return true
}
