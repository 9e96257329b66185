package testset_test

import (
	"slices"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

// testID is a minimal test that only has an identifier.
type testID string

func (t testID) ID() string { return string(t) }

var allIDs = []testID{"a", "b", "c", "d", "foo/bar", "foo/barbaz", "foo/baz/qux", "bar/foo"}

var errBoom = errors.Errorf("boom")

// setOf returns a set containing exactly the given identifiers.
func setOf(ids ...string) testset.Set {
	return testset.NewSet(func(_ *testset.Context, test testset.Test) (bool, error) {
		return slices.Contains(ids, test.ID()), nil
	})
}

// failing returns a set which fails for every test.
func failing() testset.Set {
	return testset.NewSet(func(*testset.Context, testset.Test) (bool, error) {
		return false, errBoom
	})
}

// members returns the identifiers of allIDs contained in set.
func members(ctx *testset.Context, set testset.Set) ([]string, error) {
	var ids []string

	for _, id := range allIDs {
		ok, err := set.Contains(ctx, id)
		if err != nil {
			return nil, err
		}

		if ok {
			ids = append(ids, string(id))
		}
	}

	return ids, nil
}

// testContext binds a few zero argument set constructors for evaluation tests.
func testContext() *testset.Context {
	ctx := testset.NewContext()
	ctx.Bind("all", testset.SetConstructor("all", testset.NewSet(func(*testset.Context, testset.Test) (bool, error) {
		return true, nil
	})))
	ctx.Bind("none", testset.SetConstructor("none", testset.Set{}))
	ctx.Bind("ab", testset.SetConstructor("ab", setOf("a", "b")))
	ctx.Bind("bc", testset.SetConstructor("bc", setOf("b", "c")))
	ctx.Bind("boom", testset.SetConstructor("boom", failing()))
	ctx.Bind("foobar", testset.Num(1))

	return ctx
}
