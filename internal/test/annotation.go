package test

import (
	"strings"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Annotation is a marker placed in the leading doc comment of a test script, e.g. `/// [skip]`.
type Annotation string

const (
	// AnnotationSkip excludes a test from runs unless skipping is disabled.
	AnnotationSkip Annotation = "skip"
)

var knownAnnotations = map[string]Annotation{
	string(AnnotationSkip): AnnotationSkip,
}

// UnknownAnnotationError is returned for an annotation with an unknown name.
type UnknownAnnotationError struct {
	Name string
}

func (e UnknownAnnotationError) Error() string {
	return "unknown annotation '" + e.Name + "'"
}

// MalformedAnnotationError is returned for an annotation that is missing a delimiter.
type MalformedAnnotationError struct {
	Line string
}

func (e MalformedAnnotationError) Error() string {
	return "malformed annotation '" + e.Line + "', expected '[name]'"
}

// ParseAnnotation parses a single annotation such as `[skip]` or `[ skip ]`.
func ParseAnnotation(str string) (Annotation, error) {
	rest, ok := strings.CutPrefix(str, "[")
	if !ok {
		return "", errors.New(MalformedAnnotationError{Line: str})
	}

	rest, ok = strings.CutSuffix(rest, "]")
	if !ok {
		return "", errors.New(MalformedAnnotationError{Line: str})
	}

	name := strings.TrimSpace(rest)

	annotation, ok := knownAnnotations[name]
	if !ok {
		return "", errors.New(UnknownAnnotationError{Name: name})
	}

	return annotation, nil
}

// ParseAnnotations collects the annotations from the leading comment block of a test script.
//
// Regular `//` comments and blank lines before the doc comment are skipped. The doc comment
// is the following run of `///` lines; blank doc lines are ignored and the first doc line
// that does not start with `[` ends the annotations.
func ParseAnnotations(source string) ([]Annotation, error) {
	var annotations []Annotation

	inDoc := false

	for line := range strings.Lines(source) {
		line = strings.TrimRight(line, "\r\n")

		if !inDoc {
			if strings.TrimSpace(line) == "" {
				continue
			}

			if strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "///") {
				continue
			}

			inDoc = true
		}

		doc, ok := strings.CutPrefix(line, "///")
		if !ok {
			break
		}

		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}

		if !strings.HasPrefix(doc, "[") {
			break
		}

		annotation, err := ParseAnnotation(doc)
		if err != nil {
			return nil, err
		}

		annotations = append(annotations, annotation)
	}

	return annotations, nil
}
