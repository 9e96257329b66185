package testset

import (
	"regexp"

	"github.com/gobwas/glob"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// PatternKind selects how a pattern is matched against a test identifier.
type PatternKind int

const (
	// PatternGlob matches using shell glob syntax. Wildcards also match the path separator.
	PatternGlob PatternKind = iota
	// PatternRegex matches if the regular expression matches anywhere in the identifier.
	PatternRegex
	// PatternExact matches if the identifier is byte-wise equal to the pattern.
	PatternExact
)

var patternKinds = map[string]PatternKind{
	"glob":  PatternGlob,
	"g":     PatternGlob,
	"regex": PatternRegex,
	"r":     PatternRegex,
	"exact": PatternExact,
	"e":     PatternExact,
}

// ParsePatternKind returns the pattern kind for one of the long or short kind prefixes.
func ParsePatternKind(str string) (PatternKind, bool) {
	kind, ok := patternKinds[str]
	return kind, ok
}

func (k PatternKind) String() string {
	switch k {
	case PatternGlob:
		return "glob"
	case PatternRegex:
		return "regex"
	case PatternExact:
		return "exact"
	}

	return "unknown"
}

// Pattern is a compiled pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	glob   glob.Glob
	regex  *regexp.Regexp
	source string
	kind   PatternKind
}

// InvalidPatternError is returned when a glob or regular expression does not compile.
type InvalidPatternError struct {
	Err    error
	Source string
	Kind   PatternKind
}

func (e InvalidPatternError) Error() string {
	return "invalid " + e.Kind.String() + " " + quoteString(e.Source) + ": " + e.Err.Error()
}

func (e InvalidPatternError) Unwrap() error {
	return e.Err
}

// NewPattern compiles source as a pattern of the given kind.
func NewPattern(kind PatternKind, source string) (*Pattern, error) {
	pat := &Pattern{kind: kind, source: source}

	switch kind {
	case PatternGlob:
		// No separators, so that `*` crosses module boundaries.
		compiled, err := glob.Compile(source)
		if err != nil {
			return nil, errors.New(InvalidPatternError{Kind: kind, Source: source, Err: err})
		}

		pat.glob = compiled
	case PatternRegex:
		compiled, err := regexp.Compile(source)
		if err != nil {
			return nil, errors.New(InvalidPatternError{Kind: kind, Source: source, Err: err})
		}

		pat.regex = compiled
	case PatternExact:
	}

	return pat, nil
}

// MustNewPattern is like NewPattern but panics if the pattern does not compile.
func MustNewPattern(kind PatternKind, source string) *Pattern {
	pat, err := NewPattern(kind, source)
	if err != nil {
		panic(err)
	}

	return pat
}

// Kind returns the pattern kind.
func (p *Pattern) Kind() PatternKind {
	return p.kind
}

// Source returns the uncompiled pattern.
func (p *Pattern) Source() string {
	return p.source
}

// IsMatch reports whether id matches the pattern.
func (p *Pattern) IsMatch(id string) bool {
	switch p.kind {
	case PatternGlob:
		return p.glob.Match(id)
	case PatternRegex:
		return p.regex.MatchString(id)
	case PatternExact:
		return p.source == id
	}

	return false
}

func (p *Pattern) String() string {
	return p.kind.String() + ":" + quoteString(p.source)
}
