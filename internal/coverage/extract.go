package coverage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/zackehh/covsummary/internal/fileutils"
	"github.com/zackehh/covsummary/internal/perf"
	"go.opentelemetry.io/otel/attribute"
)

// Report is the outcome of one successful extraction.
type Report struct {
	Mode      Mode
	Path      string
	Fragments Fragments
	Line      decimal.Decimal
	Branch    decimal.Decimal
}

// String renders the single output line, e.g.
// "Line Coverage: 83.7%\t\tBranch Coverage: 90.0%".
func (report Report) String() string {
	return FormatLine(FormatPercent(report.Line), FormatPercent(report.Branch))
}

// Extractor reads coverage reports below a project root.
type Extractor struct {
	fs         afero.Fs
	root       string
	reportPath string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithReportPath reads the given file instead of the fixed per-mode location.
func WithReportPath(path string) Option {
	return func(extractor *Extractor) {
		extractor.reportPath = path
	}
}

// NewExtractor uses the OS filesystem when fs is nil.
func NewExtractor(fs afero.Fs, root string, opts ...Option) *Extractor {
	extractor := &Extractor{
		fs:   fileutils.InitFilesystem(fs),
		root: root,
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

// ReportPath is the file Extract reads for mode.
func (extractor *Extractor) ReportPath(mode Mode) string {
	if extractor.reportPath != "" {
		return extractor.reportPath
	}
	return SourceFor(mode).Path(extractor.root)
}

// Extract reads the report for mode and returns both coverage figures.
func (extractor *Extractor) Extract(ctx context.Context, mode Mode) (report Report, err error) {
	source := SourceFor(mode)
	path := extractor.ReportPath(mode)

	ctx, span := perf.StartSpan(ctx, "coverage.extract",
		attribute.String("mode", mode.String()),
		attribute.String("report_path", path),
	)
	defer func() {
		span.SetAttributes(attribute.Bool("success", err == nil))
		span.End()
	}()

	content, err := extractor.read(ctx, path)
	if err != nil {
		return Report{}, err
	}

	_, matchSpan := perf.StartSpan(ctx, "coverage.match")
	fragments, found := source.Find(content)
	matchSpan.SetAttributes(attribute.Bool("found", found))
	matchSpan.End()
	if !found {
		return Report{}, &PatternNotFoundError{Mode: mode, Path: path}
	}

	_, interpretSpan := perf.StartSpan(ctx, "coverage.interpret")
	defer interpretSpan.End()

	interpreter := InterpreterFor(mode)
	line, err := interpreter.Interpret(fragments.Line)
	if err != nil {
		return Report{}, err
	}
	branch, err := interpreter.Interpret(fragments.Branch)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Mode:      mode,
		Path:      path,
		Fragments: fragments,
		Line:      line,
		Branch:    branch,
	}, nil
}

func (extractor *Extractor) read(ctx context.Context, path string) ([]byte, error) {
	_, span := perf.StartSpan(ctx, "coverage.read")
	defer span.End()

	if fileutils.IsDir(path, extractor.fs) {
		return nil, &FileAccessError{Path: path, Err: errors.New("is a directory")}
	}

	content, err := afero.ReadFile(extractor.fs, path)
	if err != nil {
		return nil, &FileAccessError{
			Path:    path,
			Missing: !fileutils.FileExists(path, extractor.fs),
			Err:     errors.Wrap(err, "read report"),
		}
	}
	span.SetAttributes(attribute.Int("bytes", len(content)))
	return content, nil
}
