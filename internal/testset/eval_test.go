package testset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

func evalMembers(t *testing.T, input string) []string {
	t.Helper()

	expr, err := testset.Parse(input)
	require.NoError(t, err)

	ctx := testContext()

	set, err := testset.EvalSet(ctx, expr)
	require.NoError(t, err)

	ids, err := members(ctx, set)
	require.NoError(t, err)

	return ids
}

func TestEval_Sets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{input: "ab() | bc()", expected: []string{"a", "b", "c"}},
		{input: "ab() or bc()", expected: []string{"a", "b", "c"}},
		{input: "ab() & bc()", expected: []string{"b"}},
		{input: "ab() ~ bc()", expected: []string{"a"}},
		{input: "ab() ^ bc()", expected: []string{"a", "c"}},
		{input: "none()", expected: nil},
		{input: "!ab() & !bc() & !g:'foo/**'", expected: []string{"d", "bar/foo"}},
		{input: "g:'foo/*'", expected: []string{"foo/bar", "foo/barbaz", "foo/baz/qux"}},
		{input: "e:foo/bar", expected: []string{"foo/bar"}},
		{input: "r:'bar$'", expected: []string{"foo/bar"}},
		{input: "r:bar ~ e:foo/bar", expected: []string{"foo/barbaz", "bar/foo"}},
		{input: "all() ~ (ab() | r:/)", expected: []string{"c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, evalMembers(t, tt.input))
		})
	}
}

func TestEval_Equivalences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		left  string
		right string
	}{
		{left: "not (ab() and bc())", right: "!( ab() & bc() )"},
		{left: "ab() diff bc()", right: "ab() & !bc()"},
		{left: "ab() xor bc()", right: "(ab() ~ bc()) | (bc() ~ ab())"},
		{left: "!!ab()", right: "ab()"},
		{left: "ab() ^ bc() ^ g:'*'", right: "ab() ^ (bc() ^ g:'*')"},
	}

	for _, tt := range tests {
		t.Run(tt.left, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, evalMembers(t, tt.right), evalMembers(t, tt.left))
		})
	}
}

func TestEval_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expected testset.Value
		input    string
	}{
		{input: "42", expected: testset.Num(42)},
		{input: `"a\tb"`, expected: testset.Str("a\tb")},
		{input: "foobar", expected: testset.Num(1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			expr, err := testset.Parse(tt.input)
			require.NoError(t, err)

			value, err := testset.Eval(testContext(), expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	t.Parallel()

	t.Run("operands must be sets", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("1 | 2")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var mismatch testset.TypeMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, []testset.Type{testset.TypeSet}, mismatch.Expected)
		assert.Equal(t, testset.TypeNum, mismatch.Found)
		assert.Equal(t, "expected test set, found number", mismatch.Error())
	})

	t.Run("complement of a string", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("!'a'")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var mismatch testset.TypeMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, testset.TypeStr, mismatch.Found)
	})

	t.Run("result must be a set", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("'a'")
		require.NoError(t, err)

		_, err = testset.EvalSet(testContext(), expr)

		var mismatch testset.TypeMismatchError
		require.True(t, errors.As(err, &mismatch))
	})

	t.Run("calling a number", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("foobar()")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var mismatch testset.TypeMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, []testset.Type{testset.TypeFunc}, mismatch.Expected)
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("all(1)")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var count testset.InvalidArgumentCountError
		require.True(t, errors.As(err, &count))
		assert.Equal(t, testset.InvalidArgumentCountError{Func: "all", Expected: 0, Found: 1}, count)
		assert.Equal(t, "function all expects no arguments, got 1", count.Error())
	})

	t.Run("unknown binding", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("foo")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var unknown testset.UnknownBindingError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, testset.Identifier("foo"), unknown.ID)
		require.NotEmpty(t, unknown.Similar)
		assert.Equal(t, testset.Identifier("foobar"), unknown.Similar[0])
	})

	t.Run("unknown function", func(t *testing.T) {
		t.Parallel()

		expr, err := testset.Parse("ab() | nope()")
		require.NoError(t, err)

		_, err = testset.Eval(testContext(), expr)

		var unknown testset.UnknownBindingError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, testset.Identifier("nope"), unknown.ID)
	})
}

func TestEval_ContainsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		id      string
		wantErr bool
	}{
		{input: "all() | boom()", id: "a"},
		{input: "boom() | all()", id: "a", wantErr: true},
		{input: "ab() & boom()", id: "c"},
		{input: "ab() & boom()", id: "a", wantErr: true},
		{input: "ab() ~ boom()", id: "c"},
		{input: "none() ^ boom()", id: "c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.id, func(t *testing.T) {
			t.Parallel()

			expr, err := testset.Parse(tt.input)
			require.NoError(t, err)

			ctx := testContext()

			set, err := testset.EvalSet(ctx, expr)
			require.NoError(t, err)

			_, err = set.Contains(ctx, testID(tt.id))
			if tt.wantErr {
				require.ErrorIs(t, err, errBoom)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEval_CustomFunction(t *testing.T) {
	t.Parallel()

	ctx := testset.NewContext()
	ctx.Bind("prefix", testset.NewFunc(func(ctx *testset.Context, args []testset.Value) (testset.Value, error) {
		strs, err := testset.ExpectArgsExact[testset.Str]("prefix", ctx, args, 1)
		if err != nil {
			return nil, err
		}

		pat, err := testset.NewPattern(testset.PatternGlob, string(strs[0])+"*")
		if err != nil {
			return nil, testset.NewCustomError(err)
		}

		return testset.CoercePattern(pat), nil
	}))

	expr, err := testset.Parse("prefix('foo/')")
	require.NoError(t, err)

	set, err := testset.EvalSet(ctx, expr)
	require.NoError(t, err)

	ids, err := members(ctx, set)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo/bar", "foo/barbaz", "foo/baz/qux"}, ids)

	expr, err = testset.Parse("prefix('[')")
	require.NoError(t, err)

	_, err = testset.EvalSet(ctx, expr)

	var custom testset.CustomError
	require.True(t, errors.As(err, &custom))
}
