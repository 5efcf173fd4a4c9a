package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"inctrim.dev/pkg/inctrim/internal/adapter"
	"inctrim.dev/pkg/inctrim/internal/controller"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

const (
	tempObjectPattern = "inctrim-*.o"
	defaultSourceExt  = ".c"
)

// Oracle decides whether a candidate version of a source file compiles.
type Oracle interface {
	// Compiles reports whether unit compiles. The error is reserved for
	// failures to stage the candidate; a failing or missing compiler is a
	// plain false.
	Compiles(ctx context.Context, unit m.SourceFile) (bool, error)
}

// OracleOptions configures a compile oracle for one run.
type OracleOptions struct {
	Compiler string
	Flags    m.CompileFlags
	Verbose  bool
}

type compileOracle struct {
	fsAdapter       adapter.SourceFSAdapter
	compilerAdapter adapter.CompilerAdapter
	ui              controller.UI
	options         OracleOptions
}

// NewOracle constructs an Oracle that compiles candidates with the external
// compiler. Candidates are written to fresh temp files which are removed
// before Compiles returns.
func NewOracle(
	fsAdapter adapter.SourceFSAdapter,
	compilerAdapter adapter.CompilerAdapter,
	ui controller.UI,
	options OracleOptions,
) Oracle {
	return &compileOracle{
		fsAdapter:       fsAdapter,
		compilerAdapter: compilerAdapter,
		ui:              ui,
		options:         options,
	}
}

func (o *compileOracle) Compiles(ctx context.Context, unit m.SourceFile) (bool, error) {
	sourcePath, err := o.fsAdapter.CreateTemp(ctx, "inctrim-*"+sourceExt(unit.Path), []byte(unit.Content()))
	if err != nil {
		slog.Error("Failed to create temp source", "path", unit.Path, "error", err)
		return false, fmt.Errorf("create temp source: %w", err)
	}

	defer o.cleanupTemp(ctx, sourcePath)

	objectPath, err := o.fsAdapter.CreateTemp(ctx, tempObjectPattern, nil)
	if err != nil {
		slog.Error("Failed to create temp object", "path", unit.Path, "error", err)
		return false, fmt.Errorf("create temp object: %w", err)
	}

	defer o.cleanupTemp(ctx, objectPath)

	result, runErr := o.compilerAdapter.Run(ctx, o.options.Compiler, o.compileArgs(sourcePath, objectPath))

	if o.options.Verbose && o.ui != nil {
		o.ui.DisplayCompilation(ctx, result)
	}

	if runErr != nil {
		slog.Debug("Candidate does not compile", "path", unit.Path, "error", runErr)
		return false, nil
	}

	return true, nil
}

// compileArgs builds `-c src -o obj <cflags> <includes>`. Only the configured
// flags reach the compiler; headers next to the original file resolve only
// when an include flag names their directory.
func (o *compileOracle) compileArgs(sourcePath, objectPath m.Path) []string {
	args := []string{"-c", string(sourcePath), "-o", string(objectPath)}
	return append(args, o.options.Flags.Args()...)
}

// cleanupTemp removes a temp file even when ctx has been cancelled.
func (o *compileOracle) cleanupTemp(ctx context.Context, path m.Path) {
	if err := o.fsAdapter.Remove(context.WithoutCancel(ctx), path); err != nil {
		slog.Error("Failed to remove temp file", "path", path, "error", err)
	}
}

func sourceExt(path m.Path) string {
	if ext := filepath.Ext(string(path)); ext != "" {
		return ext
	}

	return defaultSourceExt
}
