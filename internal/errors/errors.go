// Package errors provides sentinel errors and custom error types for the lexpr application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidPlan indicates that a plan document failed structural validation
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrUnknownDependency indicates that an item depends on a name not present in the plan
	ErrUnknownDependency = errors.New("unknown dependency")

	// ErrCycle indicates that the dependency graph contains a cycle
	ErrCycle = errors.New("dependency cycle detected")
)

// SchemaError represents a structural violation in a plan document.
// Path addresses the first offending field (slash-separated, "<root>" for
// document-level violations).
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Is returns true if the target error is ErrInvalidPlan
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidPlan
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, message string) *SchemaError {
	return &SchemaError{Path: path, Message: message}
}

// UnknownDependencyError represents a deps entry that names an item
// missing from the plan
type UnknownDependencyError struct {
	Item string // resolved name of the referencing item
	Dep  string // the missing dependency name
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("unknown dep %q for item %q", e.Dep, e.Item)
}

// Is returns true if the target error is ErrUnknownDependency
func (e *UnknownDependencyError) Is(target error) bool {
	return target == ErrUnknownDependency
}

// NewUnknownDependencyError creates a new UnknownDependencyError
func NewUnknownDependencyError(item, dep string) *UnknownDependencyError {
	return &UnknownDependencyError{Item: item, Dep: dep}
}

// CycleError represents a dependency cycle among the plan's items.
// v1 reports cycle existence only, not which items form the cycle.
type CycleError struct{}

func (e *CycleError) Error() string {
	return "dependency cycle detected"
}

// Is returns true if the target error is ErrCycle
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// NewCycleError creates a new CycleError
func NewCycleError() *CycleError {
	return &CycleError{}
}
