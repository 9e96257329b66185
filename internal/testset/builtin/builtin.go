// Package builtin provides the default test set bindings for tytanic tests.
package builtin

import (
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

// Names of the builtin bindings.
const (
	All         testset.Identifier = "all"
	None        testset.Identifier = "none"
	Skip        testset.Identifier = "skip"
	Unit        testset.Identifier = "unit"
	Template    testset.Identifier = "template"
	CompileOnly testset.Identifier = "compile-only"
	Ephemeral   testset.Identifier = "ephemeral"
	Persistent  testset.Identifier = "persistent"
	ID          testset.Identifier = "id"
)

// Context returns a new context with all builtin bindings. Callers may bind additional
// values on the returned context.
func Context() *testset.Context {
	ctx := testset.NewContext()

	ctx.Bind(All, testset.SetConstructor(All, AllSet()))
	ctx.Bind(None, testset.SetConstructor(None, NoneSet()))
	ctx.Bind(Skip, testset.SetConstructor(Skip, SkipSet()))
	ctx.Bind(Unit, testset.SetConstructor(Unit, KindSet(test.UnitKind)))
	ctx.Bind(Template, testset.SetConstructor(Template, KindSet(test.TemplateKind)))
	ctx.Bind(CompileOnly, testset.SetConstructor(CompileOnly, RefKindSet(test.CompileOnly)))
	ctx.Bind(Ephemeral, testset.SetConstructor(Ephemeral, RefKindSet(test.Ephemeral)))
	ctx.Bind(Persistent, testset.SetConstructor(Persistent, RefKindSet(test.Persistent)))
	ctx.Bind(ID, testset.NewFunc(idFunc))

	return ctx
}

// AllSet contains every test.
func AllSet() testset.Set {
	return testset.NewSet(func(*testset.Context, testset.Test) (bool, error) {
		return true, nil
	})
}

// NoneSet contains no test.
func NoneSet() testset.Set {
	return testset.Set{}
}

// SkipSet contains the tests annotated with `[skip]`.
func SkipSet() testset.Set {
	return hostSet(func(t *test.Test) bool {
		return t.IsSkipped()
	})
}

// KindSet contains the tests of the given kind.
func KindSet(kind test.Kind) testset.Set {
	return hostSet(func(t *test.Test) bool {
		return t.Kind() == kind
	})
}

// RefKindSet contains the unit tests with the given reference kind.
func RefKindSet(refKind test.RefKind) testset.Set {
	return hostSet(func(t *test.Test) bool {
		return t.Kind() == test.UnitKind && t.RefKind() == refKind
	})
}

// hostSet adapts a predicate over tytanic tests. Tests of other types are never members.
func hostSet(pred func(*test.Test) bool) testset.Set {
	return testset.NewSet(func(_ *testset.Context, t testset.Test) (bool, error) {
		hostTest, ok := t.(*test.Test)
		if !ok {
			return false, nil
		}

		return pred(hostTest), nil
	})
}

// idFunc implements `id(pattern, ...)`, the set of tests whose identifier matches any of
// the given globs.
func idFunc(ctx *testset.Context, args []testset.Value) (testset.Value, error) {
	first, rest, err := testset.ExpectArgsMin[testset.Str](ID, ctx, args, 1)
	if err != nil {
		return nil, err
	}

	sets := make([]testset.Set, 0, len(first)+len(rest))

	for _, source := range append(first, rest...) {
		pat, err := testset.NewPattern(testset.PatternGlob, string(source))
		if err != nil {
			return nil, testset.NewCustomError(err)
		}

		sets = append(sets, testset.CoercePattern(pat))
	}

	if len(sets) == 1 {
		return sets[0], nil
	}

	return testset.Union(sets[0], sets[1], sets[2:]...), nil
}
