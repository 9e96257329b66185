package list

import (
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/options"
)

const (
	// FormatText outputs one test identifier per line.
	FormatText = "text"

	// FormatJSON outputs the matched tests as a JSON array.
	FormatJSON = "json"

	// FormatTree outputs the matched tests as a tree of their modules.
	FormatTree = "tree"
)

type Options struct {
	*options.Options

	// Format determines the format of the output.
	Format string

	// Expression is the test set expression selecting the tests. Empty means the project default.
	Expression string

	// IDs are exact test identifiers. They cannot be combined with Expression.
	IDs []string

	// NoSkip includes tests annotated with [skip].
	NoSkip bool

	// JSON is an alias for --format=json.
	JSON bool

	// Tree is an alias for --format=tree.
	Tree bool
}

func NewOptions(opts *options.Options) *Options {
	return &Options{
		Options: opts,
		Format:  FormatText,
	}
}

func (o *Options) Validate() error {
	errs := []error{}

	if err := o.validateFormat(); err != nil {
		errs = append(errs, err)
	}

	if o.Expression != "" && len(o.IDs) > 0 {
		errs = append(errs, errors.New("test identifiers cannot be combined with --"+ExpressionFlagName))
	}

	if len(errs) > 0 {
		return errors.New(errors.Join(errs...))
	}

	return nil
}

func (o *Options) validateFormat() error {
	switch o.Format {
	case FormatText, FormatJSON, FormatTree:
		return nil
	default:
		return errors.New("invalid format: " + o.Format)
	}
}
