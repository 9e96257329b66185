package testset

import (
	"maps"
	"slices"
	"sort"

	"github.com/xrash/smetrics"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// similarityThreshold is the minimum Jaro similarity for a binding to be suggested.
const similarityThreshold = 0.7

// Identifier is a binding name: an ASCII letter followed by ASCII letters, digits, `-` or `_`.
type Identifier string

// InvalidIdentifierError is returned by NewIdentifier for malformed names.
type InvalidIdentifierError struct {
	Name string
}

func (e InvalidIdentifierError) Error() string {
	return "invalid identifier " + quoteString(e.Name)
}

// NewIdentifier validates name.
func NewIdentifier(name string) (Identifier, error) {
	if !IsValidIdentifier(name) {
		return "", errors.New(InvalidIdentifierError{Name: name})
	}

	return Identifier(name), nil
}

// IsValidIdentifier reports whether name is a valid identifier.
func IsValidIdentifier(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isIdentifierChar(name[i]) {
			return false
		}
	}

	return true
}

// Context holds the bindings an expression is evaluated against. There is a single flat
// namespace. A Context must not be modified once it is shared between goroutines.
type Context struct {
	bindings map[Identifier]Value
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{bindings: make(map[Identifier]Value)}
}

// Bind binds value to id and returns the value that was bound before, if any.
func (c *Context) Bind(id Identifier, value Value) (Value, bool) {
	old, ok := c.bindings[id]
	c.bindings[id] = value

	return old, ok
}

// Resolve returns the value bound to id, or an UnknownBindingError with suggestions.
func (c *Context) Resolve(id Identifier) (Value, error) {
	if value, ok := c.bindings[id]; ok {
		return value, nil
	}

	return nil, errors.New(UnknownBindingError{ID: id, Similar: c.FindSimilar(id)})
}

// FindSimilar returns the bound identifiers similar to id, most similar first.
func (c *Context) FindSimilar(id Identifier) []Identifier {
	type candidate struct {
		id    Identifier
		score float64
	}

	var candidates []candidate

	for _, bound := range c.Identifiers() {
		if bound == id {
			continue
		}

		if score := smetrics.Jaro(string(id), string(bound)); score > similarityThreshold {
			candidates = append(candidates, candidate{id: bound, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	similar := make([]Identifier, len(candidates))
	for i, cand := range candidates {
		similar[i] = cand.id
	}

	return similar
}

// Identifiers returns all bound identifiers in sorted order.
func (c *Context) Identifiers() []Identifier {
	return slices.Sorted(maps.Keys(c.bindings))
}

// Clone returns a copy of the context which can be extended without affecting c.
func (c *Context) Clone() *Context {
	return &Context{bindings: maps.Clone(c.bindings)}
}
