package test_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/test"
)

func TestValidateID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      string
		wantErr string
	}{
		{id: "a"},
		{id: "a/b/c"},
		{id: "compile-only_1/Foo"},
		{id: "", wantErr: "invalid test identifier '': is empty"},
		{id: "a//b", wantErr: "invalid test identifier 'a//b': contains an empty fragment"},
		{id: "/a", wantErr: "invalid test identifier '/a': contains an empty fragment"},
		{id: "a/ref", wantErr: "invalid test identifier 'a/ref': fragment 'ref' is reserved"},
		{id: "test/a", wantErr: "invalid test identifier 'test/a': fragment 'test' is reserved"},
		{id: "a/1b", wantErr: "invalid test identifier 'a/1b': fragment '1b' contains invalid characters"},
		{id: "a b", wantErr: "invalid test identifier 'a b': fragment 'a b' contains invalid characters"},
		{id: "@template", wantErr: "invalid test identifier '@template': fragment '@template' contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			err := test.ValidateID(tt.id)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tt.wantErr)

			var idErr test.InvalidIDError
			assert.True(t, errors.As(err, &idErr))
			assert.Equal(t, tt.id, idErr.ID)
		})
	}
}

func TestSplitID(t *testing.T) {
	t.Parallel()

	unit := test.NewUnit("a/b/c", test.Persistent)
	assert.Equal(t, "a/b", unit.Module())
	assert.Equal(t, "c", unit.Name())

	top := test.NewUnit("c", test.Persistent)
	assert.Empty(t, top.Module())
	assert.Equal(t, "c", top.Name())
}

func TestTest(t *testing.T) {
	t.Parallel()

	unit := test.NewUnit("a/b", test.Ephemeral).
		WithPath("tests/a/b").
		WithAnnotations(test.AnnotationSkip)

	assert.Equal(t, "a/b", unit.ID())
	assert.Equal(t, "tests/a/b", unit.Path())
	assert.Equal(t, test.UnitKind, unit.Kind())
	assert.Equal(t, test.Ephemeral, unit.RefKind())
	assert.True(t, unit.IsSkipped())

	tmpl := test.NewTemplate("template.typ")
	assert.Equal(t, test.TemplateID, tmpl.ID())
	assert.Equal(t, test.TemplateKind, tmpl.Kind())
	assert.Equal(t, test.CompileOnly, tmpl.RefKind())
	assert.False(t, tmpl.IsSkipped())
}

func TestTests(t *testing.T) {
	t.Parallel()

	tests := test.Tests{
		test.NewUnit("b", test.CompileOnly),
		test.NewTemplate("template.typ"),
		test.NewUnit("a/c", test.CompileOnly),
	}.Sort()

	assert.Equal(t, []string{"@template", "a/c", "b"}, tests.IDs())

	found, ok := tests.Find("a/c")
	require.True(t, ok)
	assert.Equal(t, "a/c", found.ID())

	_, ok = tests.Find("nope")
	assert.False(t, ok)
}
