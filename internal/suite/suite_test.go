package suite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/config"
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/filter"
	"github.com/tytanic-dev/tytanic/internal/project"
	"github.com/tytanic-dev/tytanic/internal/suite"
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/testset"
	"github.com/tytanic-dev/tytanic/internal/testset/builtin"
	"github.com/tytanic-dev/tytanic/internal/vfs"
)

const root = "/project"

var errBoom = errors.Errorf("boom")

func newProject(t *testing.T, files map[string]string, dirs ...string) *project.Project {
	t.Helper()

	fs := vfs.NewMemMapFS()

	for name, content := range files {
		require.NoError(t, vfs.WriteFile(fs, filepath.Join(root, name), []byte(content), 0o644))
	}

	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	cfg := config.Default()
	cfg.Template = "template.typ"

	return project.New(fs, root, cfg)
}

func fixture(t *testing.T) *project.Project {
	t.Helper()

	return newProject(t, map[string]string{
		"template.typ":           "= Template",
		"tests/a/test.typ":       "Hello",
		"tests/b/test.typ":       "Hello",
		"tests/b/ref.typ":        "Hello",
		"tests/c/test.typ":       "/// [skip]\n\nHello",
		"tests/d/e/test.typ":     "Hello",
		"tests/d/ref/test.typ":   "not a test",
		"tests/.hidden/test.typ": "not a test",
	}, "tests/c/ref")
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	p := fixture(t)

	tests, err := suite.Discover(t.Context(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"@template", "a", "b", "c", "d/e"}, tests.IDs())

	tmpl, ok := tests.Find("@template")
	require.True(t, ok)
	assert.Equal(t, test.TemplateKind, tmpl.Kind())
	assert.Equal(t, filepath.Join(root, "template.typ"), tmpl.Path())

	expected := map[string]test.RefKind{
		"a":   test.CompileOnly,
		"b":   test.Ephemeral,
		"c":   test.Persistent,
		"d/e": test.CompileOnly,
	}

	for id, refKind := range expected {
		unit, ok := tests.Find(id)
		require.True(t, ok, id)
		assert.Equal(t, test.UnitKind, unit.Kind(), id)
		assert.Equal(t, refKind, unit.RefKind(), id)
		assert.Equal(t, p.UnitDir(id), unit.Path(), id)
	}

	c, _ := tests.Find("c")
	assert.True(t, c.IsSkipped())

	a, _ := tests.Find("a")
	assert.False(t, a.IsSkipped())
}

func TestDiscover_MissingTestsRoot(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"template.typ": ""})

	tests, err := suite.Discover(t.Context(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"@template"}, tests.IDs())
}

func TestDiscover_MissingTemplate(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"tests/a/test.typ": ""})

	tests, err := suite.Discover(t.Context(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tests.IDs())
}

func TestDiscover_InvalidAnnotation(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{
		"tests/a/test.typ": "/// [unknown]\n",
		"tests/b/test.typ": "",
	})

	tests, err := suite.Discover(t.Context(), p)
	require.Error(t, err)
	assert.Equal(t, []string{"b"}, tests.IDs())

	var invalid suite.InvalidTestError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "a", invalid.ID)

	var unknown test.UnknownAnnotationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "unknown", unknown.Name)
}

func TestDiscover_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := suite.Discover(ctx, fixture(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		matched  []string
		filtered []string
	}{
		{
			input:    "all()",
			matched:  []string{"@template", "a", "b", "c", "d/e"},
			filtered: nil,
		},
		{
			input:    "unit() & !skip()",
			matched:  []string{"a", "b", "d/e"},
			filtered: []string{"@template", "c"},
		},
		{
			input:    "template()",
			matched:  []string{"@template"},
			filtered: []string{"a", "b", "c", "d/e"},
		},
		{
			input:    "g:d/* | ephemeral()",
			matched:  []string{"b", "d/e"},
			filtered: []string{"@template", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			f, err := filter.NewExpressionFilter(builtin.Context(), tt.input)
			require.NoError(t, err)

			s, err := suite.Collect(t.Context(), fixture(t), f, suite.WithMaxWorkers(2))
			require.NoError(t, err)

			assert.Equal(t, tt.matched, s.Matched().IDs())
			assert.Equal(t, tt.filtered, s.Filtered().IDs())
			assert.Equal(t, 5, s.Len())
		})
	}
}

func TestCollect_ExactMissing(t *testing.T) {
	t.Parallel()

	f := &filter.CombinedFilter{Exact: filter.NewExactFilter("a", "x", "y")}

	_, err := suite.Collect(t.Context(), fixture(t), f)
	require.Error(t, err)

	var missing filter.MissingTestsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"x", "y"}, missing.IDs)
}

func TestCollect_Exact(t *testing.T) {
	t.Parallel()

	f := &filter.CombinedFilter{Exact: filter.NewExactFilter("d/e", "a")}

	s, err := suite.Collect(t.Context(), fixture(t), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d/e"}, s.Matched().IDs())
}

func TestFromTests_FilterError(t *testing.T) {
	t.Parallel()

	f, err := filter.NewExpressionFilter(builtin.Context(), "all()")
	require.NoError(t, err)

	f = f.Map(func(testset.Set) testset.Set {
		return testset.NewSet(func(*testset.Context, testset.Test) (bool, error) {
			return false, errBoom
		})
	})

	tests := test.Tests{test.NewUnit("a", test.CompileOnly), test.NewUnit("b", test.CompileOnly)}

	_, err = suite.FromTests(t.Context(), fixture(t), tests, f, 1)
	require.Error(t, err)

	var filterErr suite.FilterError
	require.True(t, errors.As(err, &filterErr))
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "could not filter test a")
	assert.Contains(t, err.Error(), "could not filter test b")
}
