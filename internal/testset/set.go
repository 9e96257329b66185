package testset

// SetFunc decides whether test is a member of a set.
type SetFunc func(ctx *Context, test Test) (bool, error)

// Set is a test set: a predicate over tests built from other sets. A Set never holds any
// mutable state, so it can be shared and evaluated from many goroutines. The zero Set
// contains no tests.
type Set struct {
	contains SetFunc
}

// NewSet creates a set from a predicate. The predicate must be safe for concurrent use
// and must return the same result for the same context and test.
func NewSet(contains SetFunc) Set {
	return Set{contains: contains}
}

// Type implements Value.
func (Set) Type() Type { return TypeSet }

// Contains reports whether test is a member of the set.
func (s Set) Contains(ctx *Context, test Test) (bool, error) {
	if s.contains == nil {
		return false, nil
	}

	return s.contains(ctx, test)
}

// CoercePattern returns the set of tests whose identifier matches pat.
func CoercePattern(pat *Pattern) Set {
	return NewSet(func(_ *Context, test Test) (bool, error) {
		return pat.IsMatch(test.ID()), nil
	})
}

// Complement returns the set of tests which are not in a.
func Complement(a Set) Set {
	return NewSet(func(ctx *Context, test Test) (bool, error) {
		ok, err := a.Contains(ctx, test)
		if err != nil {
			return false, err
		}

		return !ok, nil
	})
}

// Union returns the set of tests in any of the given sets. Operands are evaluated in order
// until one contains the test, later operands are not evaluated.
func Union(a, b Set, rest ...Set) Set {
	sets := append([]Set{a, b}, rest...)

	return NewSet(func(ctx *Context, test Test) (bool, error) {
		for _, set := range sets {
			ok, err := set.Contains(ctx, test)
			if err != nil {
				return false, err
			}

			if ok {
				return true, nil
			}
		}

		return false, nil
	})
}

// Intersection returns the set of tests in all of the given sets. Operands are evaluated in
// order until one does not contain the test, later operands are not evaluated.
func Intersection(a, b Set, rest ...Set) Set {
	sets := append([]Set{a, b}, rest...)

	return NewSet(func(ctx *Context, test Test) (bool, error) {
		for _, set := range sets {
			ok, err := set.Contains(ctx, test)
			if err != nil {
				return false, err
			}

			if !ok {
				return false, nil
			}
		}

		return true, nil
	})
}

// Difference returns the set of tests in a but not in b. b is only evaluated for tests in a.
func Difference(a, b Set) Set {
	return NewSet(func(ctx *Context, test Test) (bool, error) {
		ok, err := a.Contains(ctx, test)
		if err != nil || !ok {
			return false, err
		}

		ok, err = b.Contains(ctx, test)
		if err != nil {
			return false, err
		}

		return !ok, nil
	})
}

// SymmetricDifference returns the set of tests in exactly one of a and b. Both operands
// are always evaluated.
func SymmetricDifference(a, b Set) Set {
	return NewSet(func(ctx *Context, test Test) (bool, error) {
		inA, err := a.Contains(ctx, test)
		if err != nil {
			return false, err
		}

		inB, err := b.Contains(ctx, test)
		if err != nil {
			return false, err
		}

		return inA != inB, nil
	})
}
