package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"inctrim.dev/pkg/inctrim/internal/adapter"
	"inctrim.dev/pkg/inctrim/internal/controller"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

var (
	// ErrFilesFailed is returned when at least one file could not be processed.
	ErrFilesFailed = errors.New("one or more files failed")
	// ErrNoSources is returned when the run has no files to process.
	ErrNoSources = errors.New("no source files found")
)

// TrimArgs contains the arguments for one trimming run.
type TrimArgs struct {
	Sources  SourceArgs
	Flags    FlagArgs
	Compiler string
	Fix      bool
	Verbose  bool
	Diff     bool
	Report   m.Path
}

// Workflow runs the include trimmer over a set of files.
type Workflow interface {
	Trim(ctx context.Context, args TrimArgs) (m.RunReport, error)
	// View displays a report saved by a previous run.
	View(ctx context.Context, path m.Path) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.CompilerAdapter
	adapter.ReportStore
	controller.UI
	FlagResolver
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	compilerAdapter adapter.CompilerAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	flagResolver FlagResolver,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		CompilerAdapter: compilerAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		FlagResolver:    flagResolver,
	}
}

// engine bundles the per-run pipeline built around one oracle.
type engine struct {
	Prover
	Rewriter
}

// Trim processes every file sequentially. A failing file never stops the
// run; it is reported and counted, and ErrFilesFailed is returned at the end.
func (w *workflow) Trim(ctx context.Context, args TrimArgs) (m.RunReport, error) {
	flags, err := w.Resolve(ctx, args.Flags)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("resolve flags: %w", err)
	}

	report := m.RunReport{
		Compiler: args.Compiler,
		Includes: flags.Includes,
		CFlags:   flags.CFlags,
		Fix:      args.Fix,
	}

	files, err := CollectSources(ctx, w.SourceFSAdapter, args.Sources)
	if err != nil {
		return report, fmt.Errorf("collect sources: %w", err)
	}

	if len(files) == 0 {
		w.DisplayNoSources(ctx, args.Sources.Root, args.Sources.Extensions)
		return report, ErrNoSources
	}

	oracle := NewOracle(w.SourceFSAdapter, w.CompilerAdapter, w.UI, OracleOptions{
		Compiler: args.Compiler,
		Flags:    flags,
		Verbose:  args.Verbose,
	})
	eng := engine{Prover: NewProver(oracle), Rewriter: NewRewriter(oracle)}

	slog.Info("Starting run", "files", len(files), "compiler", args.Compiler, "fix", args.Fix)

	for _, path := range files {
		report.Files = append(report.Files, w.processFile(ctx, eng, path, args))
	}

	w.DisplaySummary(ctx, report)

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	if failed := report.Failed(); failed > 0 {
		slog.Info("Run finished with failures", "failed", failed)
		return report, ErrFilesFailed
	}

	return report, nil
}

func (w *workflow) View(ctx context.Context, path m.Path) error {
	report, err := w.LoadReport(ctx, path)
	if err != nil {
		slog.Error("Failed to load report", "path", path, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	w.DisplaySummary(ctx, report)

	return nil
}

func (w *workflow) processFile(ctx context.Context, eng engine, path m.Path, args TrimArgs) m.FileReport {
	result := m.FileReport{Path: path}

	content, err := w.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read source", "path", path, "error", err)
		return w.ioFailure(ctx, result, fmt.Errorf("read: %w", err))
	}

	source := m.SourceFile{Path: path, Lines: m.SplitLines(string(content))}

	block, ok := FindIncludeBlock(source.Lines)
	if !ok {
		if args.Verbose {
			w.DisplaySkipped(ctx, path)
		}

		result.Outcome = m.OutcomeSkipped

		return result
	}

	classification, err := eng.Classify(ctx, source, block)
	if errors.Is(err, ErrBaselineBroken) {
		w.DisplayBaselineBroken(ctx, path)

		result.Outcome = m.OutcomeBaselineBroken
		result.Error = err.Error()

		return result
	}

	if err != nil {
		return w.ioFailure(ctx, result, err)
	}

	result.Needed = directives(dedupe(classification.Needed))
	result.Removable = directives(classification.Removable)

	if !args.Fix {
		w.DisplayClassification(ctx, path, classification)

		if args.Diff {
			w.DisplayDiff(ctx, path, source.Lines, RebuildFile(source.Lines, block, classification.NeededTexts()))
		}

		result.Outcome = m.OutcomeChecked

		return result
	}

	return w.rewrite(ctx, eng, source, block, classification, args, result)
}

func (w *workflow) rewrite(
	ctx context.Context,
	eng engine,
	source m.SourceFile,
	block m.IncludeBlock,
	classification m.Classification,
	args TrimArgs,
	result m.FileReport,
) m.FileReport {
	repaired, err := eng.Repair(ctx, source, block, classification)
	if errors.Is(err, ErrRepairExhausted) {
		w.DisplayRepairExhausted(ctx, source.Path)

		result.Outcome = m.OutcomeRepairExhausted
		result.Error = err.Error()

		return result
	}

	if err != nil {
		return w.ioFailure(ctx, result, err)
	}

	result.Restored = directives(repaired.Restored)

	if slices.Equal(repaired.Lines, source.Lines) {
		if args.Verbose {
			w.DisplayUnchanged(ctx, source.Path)
		}

		result.Outcome = m.OutcomeUnchanged

		return result
	}

	updated := m.SourceFile{Path: source.Path, Lines: repaired.Lines}.Content()

	if err := w.WriteFile(ctx, source.Path, []byte(updated)); err != nil {
		slog.Error("Failed to write source", "path", source.Path, "error", err)
		return w.ioFailure(ctx, result, fmt.Errorf("write: %w", err))
	}

	kept := len(repaired.Keep)
	w.DisplayRewrite(ctx, source.Path, kept, len(block.Includes)-kept)

	if args.Diff {
		w.DisplayDiff(ctx, source.Path, source.Lines, repaired.Lines)
	}

	result.Outcome = m.OutcomeRewritten
	result.BytesSaved = len(source.Content()) - len(updated)

	return result
}

func (w *workflow) ioFailure(ctx context.Context, result m.FileReport, err error) m.FileReport {
	w.DisplayError(ctx, result.Path, err)

	result.Outcome = m.OutcomeIOError
	result.Error = err.Error()

	return result
}

func dedupe(includes []m.IncludeLine) []m.IncludeLine {
	seen := make(map[string]bool, len(includes))
	out := make([]m.IncludeLine, 0, len(includes))

	for _, inc := range includes {
		if seen[inc.Text] {
			continue
		}

		seen[inc.Text] = true
		out = append(out, inc)
	}

	return out
}

func directives(includes []m.IncludeLine) []string {
	if len(includes) == 0 {
		return nil
	}

	out := make([]string, 0, len(includes))
	for _, inc := range includes {
		out = append(out, inc.Directive())
	}

	return out
}
