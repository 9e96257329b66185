package test

import (
	"slices"
	"strings"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

const (
	// Separator separates the fragments of a test identifier.
	Separator = "/"
	// TemplateID is the identifier of the project template test.
	TemplateID = "@template"
)

// Names of the files and directories that make up a unit test directory.
const (
	ScriptName = "test.typ"
	RefName    = "ref"
	RefScript  = "ref.typ"
	OutName    = "out"
	DiffName   = "diff"
)

// ReservedFragments may not be used as a fragment of a test identifier.
var ReservedFragments = []string{RefName, "test", OutName, DiffName}

// InvalidIDError is returned when a test identifier is malformed.
type InvalidIDError struct {
	ID       string
	Fragment string
	Reason   string
}

func (e InvalidIDError) Error() string {
	if e.Fragment == "" {
		return "invalid test identifier '" + e.ID + "': " + e.Reason
	}

	return "invalid test identifier '" + e.ID + "': fragment '" + e.Fragment + "' " + e.Reason
}

// ValidateID checks that id is a valid unit test identifier: one or more fragments separated
// by `/`, each starting with an ASCII letter followed by ASCII letters, digits, `-` or `_`,
// and none of them reserved.
func ValidateID(id string) error {
	if id == "" {
		return errors.New(InvalidIDError{ID: id, Reason: "is empty"})
	}

	for fragment := range strings.SplitSeq(id, Separator) {
		if fragment == "" {
			return errors.New(InvalidIDError{ID: id, Reason: "contains an empty fragment"})
		}

		if IsReservedFragment(fragment) {
			return errors.New(InvalidIDError{ID: id, Fragment: fragment, Reason: "is reserved"})
		}

		if !IsValidFragment(fragment) {
			return errors.New(InvalidIDError{ID: id, Fragment: fragment, Reason: "contains invalid characters"})
		}
	}

	return nil
}

// IsValidFragment reports whether fragment may be used as part of a test identifier,
// ignoring reserved names.
func IsValidFragment(fragment string) bool {
	if fragment == "" || !isASCIILetter(fragment[0]) {
		return false
	}

	for i := 1; i < len(fragment); i++ {
		ch := fragment[i]
		if !isASCIILetter(ch) && !('0' <= ch && ch <= '9') && ch != '-' && ch != '_' {
			return false
		}
	}

	return true
}

// IsReservedFragment reports whether fragment is one of the reserved names.
func IsReservedFragment(fragment string) bool {
	return slices.Contains(ReservedFragments, fragment)
}

// SplitID splits an identifier into its module and name.
func SplitID(id string) (module, name string) {
	idx := strings.LastIndex(id, Separator)
	if idx < 0 {
		return "", id
	}

	return id[:idx], id[idx+1:]
}

func isASCIILetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
