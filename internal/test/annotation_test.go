package test_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/test"
)

func TestParseAnnotation(t *testing.T) {
	t.Parallel()

	annotation, err := test.ParseAnnotation("[skip]")
	require.NoError(t, err)
	assert.Equal(t, test.AnnotationSkip, annotation)

	annotation, err = test.ParseAnnotation("[ skip  ]")
	require.NoError(t, err)
	assert.Equal(t, test.AnnotationSkip, annotation)

	_, err = test.ParseAnnotation("[ skip  ")

	var malformed test.MalformedAnnotationError
	require.True(t, errors.As(err, &malformed))

	_, err = test.ParseAnnotation("[unknown]")

	var unknown test.UnknownAnnotationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "unknown", unknown.Name)
}

func TestParseAnnotations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected []test.Annotation
		wantErr  bool
	}{
		{name: "no space", source: "///[skip]", expected: []test.Annotation{test.AnnotationSkip}},
		{name: "with space", source: "/// [skip]", expected: []test.Annotation{test.AnnotationSkip}},
		{name: "empty doc", source: "///", expected: nil},
		{name: "trailing empty doc line", source: "///[skip]\n///", expected: []test.Annotation{test.AnnotationSkip}},
		{
			name:     "after regular comments",
			source:   "\n// license\n\n/// [skip]\n///\n/// Some docs.\n#import \"/src/lib.typ\": foo\n",
			expected: []test.Annotation{test.AnnotationSkip},
		},
		{name: "docs end annotations", source: "/// Some docs.\n/// [skip]\n", expected: nil},
		{name: "code ends doc block", source: "#set page()\n/// [skip]\n", expected: nil},
		{name: "crlf line endings", source: "/// [skip]\r\n#set page()\r\n", expected: []test.Annotation{test.AnnotationSkip}},
		{name: "unknown annotation", source: "/// [fast]\n", wantErr: true},
		{name: "no source", source: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			annotations, err := test.ParseAnnotations(tt.source)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, annotations)
		})
	}
}
