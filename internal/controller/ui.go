// Package controller provides the user-facing output of the include trimmer.
package controller

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// UI defines how progress and results of a run are presented.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	// DisplayCompilation shows a compiler command line and its captured output.
	DisplayCompilation(ctx context.Context, result adapter.CompileResult)
	DisplaySkipped(ctx context.Context, path m.Path)
	DisplayBaselineBroken(ctx context.Context, path m.Path)
	DisplayRepairExhausted(ctx context.Context, path m.Path)
	DisplayClassification(ctx context.Context, path m.Path, classification m.Classification)
	DisplayRewrite(ctx context.Context, path m.Path, kept, removed int)
	DisplayUnchanged(ctx context.Context, path m.Path)
	DisplayDiff(ctx context.Context, path m.Path, before, after []string)
	DisplayError(ctx context.Context, path m.Path, err error)
	DisplayNoSources(ctx context.Context, root m.Path, extensions []string)
	DisplaySummary(ctx context.Context, report m.RunReport)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
