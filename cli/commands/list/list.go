package list

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mgutz/ansi"

	"github.com/tytanic-dev/tytanic/cli/commands/common"
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/filter"
	"github.com/tytanic-dev/tytanic/internal/project"
	"github.com/tytanic-dev/tytanic/internal/suite"
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/testset"
	"github.com/tytanic-dev/tytanic/internal/testset/builtin"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// defaultExpression selects every test when neither the command line nor tytanic.hcl give one.
const defaultExpression = "all()"

// Run runs the list command.
func Run(ctx context.Context, opts *Options) error {
	p, err := project.Discover(ctx, opts.FS, opts.WorkingDir)
	if err != nil {
		return err
	}

	f, query, err := NewFilter(ctx, opts, p)
	if err != nil {
		return common.ReportExpressionError(opts.ErrWriter, err, query, opts.UseColor(opts.ErrWriter))
	}

	var suiteOpts []suite.Option
	if opts.MaxWorkers > 0 {
		suiteOpts = append(suiteOpts, suite.WithMaxWorkers(opts.MaxWorkers))
	}

	s, err := suite.Collect(ctx, p, f, suiteOpts...)
	if err != nil {
		return common.ReportExpressionError(opts.ErrWriter, err, query, opts.UseColor(opts.ErrWriter))
	}

	log.LoggerFromContext(ctx).Debugf("Listing %d of %d tests", len(s.Matched()), s.Len())

	listed := testsToListed(p, s.Matched())

	switch opts.Format {
	case FormatText:
		return outputText(opts, listed)
	case FormatJSON:
		return outputJSON(opts, listed)
	case FormatTree:
		return outputTree(opts, listed)
	default:
		// Validated by the command before running.
		return errors.New("invalid format: " + opts.Format)
	}
}

// NewFilter builds the filter for the given options: an exact filter for test identifiers,
// otherwise an expression filter for the expression of the command line or of the project.
// Unless NoSkip is set, skipped tests are removed from the expression's set. The returned
// query is the expression that was parsed, if any.
func NewFilter(ctx context.Context, opts *Options, p *project.Project) (filter.Filter, string, error) {
	if len(opts.IDs) > 0 {
		return &filter.CombinedFilter{Exact: filter.NewExactFilter(opts.IDs...)}, "", nil
	}

	query := opts.Expression
	if query == "" {
		query = p.Config().DefaultFilter
	}

	if query == "" {
		query = defaultExpression
	}

	expr, err := common.ParseExpression(ctx, builtin.Context(), query)
	if err != nil {
		return nil, query, err
	}

	if !opts.NoSkip {
		expr = expr.Map(func(set testset.Set) testset.Set {
			return testset.Difference(set, builtin.SkipSet())
		})
	}

	return &filter.CombinedFilter{Expression: expr}, query, nil
}

type ListedTests []*ListedTest

type ListedTest struct {
	ID      string       `json:"id"`
	Kind    test.Kind    `json:"kind"`
	RefKind test.RefKind `json:"ref_kind,omitempty"`
	Path    string       `json:"path"`
	Skipped bool         `json:"skipped"`
}

func testsToListed(p *project.Project, tests test.Tests) ListedTests {
	listed := make(ListedTests, 0, len(tests))

	for _, t := range tests {
		path := t.Path()
		if rel, err := filepath.Rel(p.Root(), path); err == nil {
			path = filepath.ToSlash(rel)
		}

		item := &ListedTest{
			ID:      t.ID(),
			Kind:    t.Kind(),
			Path:    path,
			Skipped: t.IsSkipped(),
		}

		if t.Kind() == test.UnitKind {
			item.RefKind = t.RefKind()
		}

		listed = append(listed, item)
	}

	return listed
}

// outputJSON outputs the matched tests in JSON format.
func outputJSON(opts *Options, tests ListedTests) error {
	jsonBytes, err := json.MarshalIndent(tests, "", "  ")
	if err != nil {
		return errors.New(err)
	}

	if _, err := opts.Writer.Write(append(jsonBytes, '\n')); err != nil {
		return errors.New(err)
	}

	return nil
}

// Colorizer colors test identifiers by kind.
type Colorizer struct {
	unitColorizer     func(string) string
	templateColorizer func(string) string
	moduleColorizer   func(string) string
}

// NewColorizer creates a new Colorizer.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		return &Colorizer{
			unitColorizer:     func(s string) string { return s },
			templateColorizer: func(s string) string { return s },
			moduleColorizer:   func(s string) string { return s },
		}
	}

	return &Colorizer{
		unitColorizer:     ansi.ColorFunc("blue+bh"),
		templateColorizer: ansi.ColorFunc("green+bh"),
		moduleColorizer:   ansi.ColorFunc("white+d"),
	}
}

// Colorize colors the module part and the name of the identifier differently.
func (c *Colorizer) Colorize(t *ListedTest) string {
	if t.Kind == test.TemplateKind {
		return c.templateColorizer(t.ID)
	}

	idx := strings.LastIndex(t.ID, test.Separator)
	if idx < 0 {
		return c.unitColorizer(t.ID)
	}

	return c.moduleColorizer(t.ID[:idx+1]) + c.unitColorizer(t.ID[idx+1:])
}

// outputText outputs one test per line.
func outputText(opts *Options, tests ListedTests) error {
	c := NewColorizer(opts.UseColor(opts.Writer))

	var sb strings.Builder

	for _, t := range tests {
		sb.WriteString(c.Colorize(t))
		sb.WriteString("\n")
	}

	if _, err := opts.Writer.Write([]byte(sb.String())); err != nil {
		return errors.New(err)
	}

	return nil
}

// outputTree outputs the matched tests in tree format.
func outputTree(opts *Options, tests ListedTests) error {
	s := NewTreeStyler(opts.UseColor(opts.Writer))

	t := s.Style(generateTree(tests))

	if _, err := opts.Writer.Write([]byte(t.String() + "\n")); err != nil {
		return errors.New(err)
	}

	return nil
}

type TreeStyler struct {
	shouldColor bool
	entryStyle  lipgloss.Style
	rootStyle   lipgloss.Style
	itemStyle   lipgloss.Style
}

func NewTreeStyler(shouldColor bool) *TreeStyler {
	return &TreeStyler{
		shouldColor: shouldColor,
		entryStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).MarginRight(1),
		rootStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		itemStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

func (s *TreeStyler) Style(t *tree.Tree) *tree.Tree {
	t = t.Enumerator(tree.RoundedEnumerator)

	if !s.shouldColor {
		return t
	}

	return t.
		EnumeratorStyle(s.entryStyle).
		RootStyle(s.rootStyle).
		ItemStyle(s.itemStyle)
}

// generateTree creates a tree with one node per identifier fragment.
func generateTree(tests ListedTests) *tree.Tree {
	root := tree.Root(".")
	nodes := make(map[string]*tree.Tree)

	for _, t := range tests {
		current := root
		path := ""

		for segment := range strings.SplitSeq(t.ID, test.Separator) {
			path += test.Separator + segment

			node, exists := nodes[path]
			if !exists {
				node = tree.New().Root(segment)
				nodes[path] = node
				current.Child(node)
			}

			current = node
		}
	}

	return root
}
