package testset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/testset"
)

func TestSet_Operators(t *testing.T) {
	t.Parallel()

	a := setOf("a", "b")
	b := setOf("b", "c")

	tests := []struct {
		name     string
		set      testset.Set
		expected []string
	}{
		{name: "zero set", set: testset.Set{}, expected: nil},
		{name: "union", set: testset.Union(a, b), expected: []string{"a", "b", "c"}},
		{name: "union of many", set: testset.Union(a, b, setOf("d")), expected: []string{"a", "b", "c", "d"}},
		{name: "intersection", set: testset.Intersection(a, b), expected: []string{"b"}},
		{name: "intersection of many", set: testset.Intersection(a, b, setOf("c")), expected: nil},
		{name: "difference", set: testset.Difference(a, b), expected: []string{"a"}},
		{name: "symmetric difference", set: testset.SymmetricDifference(a, b), expected: []string{"a", "c"}},
		{
			name:     "complement",
			set:      testset.Complement(a),
			expected: []string{"c", "d", "foo/bar", "foo/barbaz", "foo/baz/qux", "bar/foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ids, err := members(testset.NewContext(), tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSet_Laws(t *testing.T) {
	t.Parallel()

	a := setOf("a", "b", "foo/bar")
	b := setOf("b", "c", "bar/foo")

	tests := []struct {
		name  string
		left  testset.Set
		right testset.Set
	}{
		{name: "double complement", left: testset.Complement(testset.Complement(a)), right: a},
		{
			name:  "de morgan union",
			left:  testset.Complement(testset.Union(a, b)),
			right: testset.Intersection(testset.Complement(a), testset.Complement(b)),
		},
		{
			name:  "de morgan intersection",
			left:  testset.Complement(testset.Intersection(a, b)),
			right: testset.Union(testset.Complement(a), testset.Complement(b)),
		},
		{
			name:  "difference is intersection with complement",
			left:  testset.Difference(a, b),
			right: testset.Intersection(a, testset.Complement(b)),
		},
		{
			name:  "symmetric difference",
			left:  testset.SymmetricDifference(a, b),
			right: testset.Union(testset.Difference(a, b), testset.Difference(b, a)),
		},
		{name: "union is commutative", left: testset.Union(a, b), right: testset.Union(b, a)},
		{name: "intersection is commutative", left: testset.Intersection(a, b), right: testset.Intersection(b, a)},
		{name: "self difference is empty", left: testset.Difference(a, a), right: testset.Set{}},
		{name: "self symmetric difference is empty", left: testset.SymmetricDifference(a, a), right: testset.Set{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := testset.NewContext()

			left, err := members(ctx, tt.left)
			require.NoError(t, err)

			right, err := members(ctx, tt.right)
			require.NoError(t, err)

			assert.Equal(t, right, left)
		})
	}
}

func TestSet_ShortCircuit(t *testing.T) {
	t.Parallel()

	everything := testset.Complement(testset.Set{})
	nothing := testset.Set{}

	tests := []struct {
		name    string
		set     testset.Set
		wantErr bool
	}{
		{name: "union stops at first member", set: testset.Union(everything, failing())},
		{name: "union evaluates later operands", set: testset.Union(nothing, failing()), wantErr: true},
		{name: "intersection stops at first non member", set: testset.Intersection(nothing, failing())},
		{name: "intersection evaluates later operands", set: testset.Intersection(everything, failing()), wantErr: true},
		{name: "difference skips right for non members", set: testset.Difference(nothing, failing())},
		{name: "difference evaluates right for members", set: testset.Difference(everything, failing()), wantErr: true},
		{name: "symmetric difference evaluates both", set: testset.SymmetricDifference(nothing, failing()), wantErr: true},
		{name: "complement propagates errors", set: testset.Complement(failing()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.set.Contains(testset.NewContext(), testID("a"))
			if tt.wantErr {
				require.ErrorIs(t, err, errBoom)
				return
			}

			require.NoError(t, err)
		})
	}
}
