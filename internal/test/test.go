// Package test provides types for representing discovered tytanic tests.
//
// This package contains only data types and their associated methods, with no discovery logic.
// It exists separately from the suite package so that the test set builtins can depend on
// these types without creating circular dependencies.
package test

import (
	"slices"
	"strings"
)

// Kind is the type of a test.
type Kind string

const (
	TemplateKind Kind = "template"
	UnitKind     Kind = "unit"
)

// RefKind describes how a unit test stores its reference.
type RefKind string

const (
	// CompileOnly tests have no reference, they only need to compile.
	CompileOnly RefKind = "compile-only"
	// Ephemeral tests compile a reference script next to the test.
	Ephemeral RefKind = "ephemeral"
	// Persistent tests compare against stored reference documents.
	Persistent RefKind = "persistent"
)

// Test represents a discovered test. Tests are created during discovery and never modified
// afterwards, so they can be shared between goroutines.
type Test struct {
	id          string
	path        string
	kind        Kind
	refKind     RefKind
	annotations []Annotation
}

// NewUnit creates a unit test with the given identifier and reference kind.
func NewUnit(id string, refKind RefKind) *Test {
	return &Test{
		id:      id,
		kind:    UnitKind,
		refKind: refKind,
	}
}

// NewTemplate creates the template test for the template file at path.
func NewTemplate(path string) *Test {
	return &Test{
		id:      TemplateID,
		path:    path,
		kind:    TemplateKind,
		refKind: CompileOnly,
	}
}

// WithPath sets the directory, or file for the template test, the test was discovered at.
func (t *Test) WithPath(path string) *Test {
	t.path = path

	return t
}

// WithAnnotations sets the annotations read from the test script.
func (t *Test) WithAnnotations(annotations ...Annotation) *Test {
	t.annotations = annotations

	return t
}

// ID returns the identifier of the test.
func (t *Test) ID() string {
	return t.id
}

// Path returns the path the test was discovered at.
func (t *Test) Path() string {
	return t.path
}

// Kind returns the kind of the test.
func (t *Test) Kind() Kind {
	return t.kind
}

// RefKind returns the reference kind of the test. Template tests are always compile-only.
func (t *Test) RefKind() RefKind {
	return t.refKind
}

// Annotations returns the annotations of the test.
func (t *Test) Annotations() []Annotation {
	return t.annotations
}

// IsSkipped returns true if the test carries the skip annotation.
func (t *Test) IsSkipped() bool {
	return slices.Contains(t.annotations, AnnotationSkip)
}

// Name returns the last fragment of the identifier.
func (t *Test) Name() string {
	_, name := SplitID(t.id)

	return name
}

// Module returns all but the last fragment of the identifier, it may be empty.
func (t *Test) Module() string {
	module, _ := SplitID(t.id)

	return module
}

// Tests is a list of discovered tests.
type Tests []*Test

// Sort sorts the tests by identifier.
func (ts Tests) Sort() Tests {
	slices.SortFunc(ts, func(a, b *Test) int {
		return strings.Compare(a.id, b.id)
	})

	return ts
}

// IDs returns the identifiers of the tests in order.
func (ts Tests) IDs() []string {
	ids := make([]string, len(ts))
	for i, t := range ts {
		ids[i] = t.id
	}

	return ids
}

// Find returns the test with the given identifier.
func (ts Tests) Find(id string) (*Test, bool) {
	idx := slices.IndexFunc(ts, func(t *Test) bool { return t.id == id })
	if idx < 0 {
		return nil, false
	}

	return ts[idx], true
}
