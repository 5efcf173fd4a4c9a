package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

const (
	includesVar = "INCLUDES"
	cflagsVar   = "CFLAGS"
)

// FlagArgs selects where compiler flags come from. A non-nil override
// replaces the flags derived from the Makefile for that category.
type FlagArgs struct {
	Makefile         m.Path
	IncludeOverrides []string
	CFlagOverrides   []string
}

// FlagResolver resolves the compiler flags used for a whole run.
type FlagResolver interface {
	Resolve(ctx context.Context, args FlagArgs) (m.CompileFlags, error)
}

type flagResolver struct {
	makefileAdapter adapter.MakefileAdapter
	fsAdapter       adapter.SourceFSAdapter
}

// NewFlagResolver constructs a FlagResolver reading INCLUDES and CFLAGS.
func NewFlagResolver(makefileAdapter adapter.MakefileAdapter, fsAdapter adapter.SourceFSAdapter) FlagResolver {
	return &flagResolver{
		makefileAdapter: makefileAdapter,
		fsAdapter:       fsAdapter,
	}
}

func (r *flagResolver) Resolve(ctx context.Context, args FlagArgs) (m.CompileFlags, error) {
	var flags m.CompileFlags

	if args.IncludeOverrides != nil && args.CFlagOverrides != nil {
		flags.Includes = args.IncludeOverrides
		flags.CFlags = args.CFlagOverrides

		return flags, nil
	}

	vars, err := r.makefileAdapter.ReadVars(ctx, args.Makefile)
	if err != nil {
		slog.Error("Failed to read Makefile", "path", args.Makefile, "error", err)
		return flags, fmt.Errorf("read %s: %w", args.Makefile, err)
	}

	if args.IncludeOverrides != nil {
		flags.Includes = args.IncludeOverrides
	} else {
		flags.Includes, err = r.makefileIncludes(ctx, args.Makefile, vars[includesVar])
		if err != nil {
			return flags, err
		}
	}

	if args.CFlagOverrides != nil {
		flags.CFlags = args.CFlagOverrides
	} else {
		flags.CFlags, err = shlex.Split(vars[cflagsVar])
		if err != nil {
			return flags, fmt.Errorf("split %s: %w", cflagsVar, err)
		}
	}

	slog.Debug("Resolved compiler flags", "includes", flags.Includes, "cflags", flags.CFlags)

	return flags, nil
}

// makefileIncludes turns INCLUDES tokens into -I flags with absolute paths,
// resolving relative paths against the Makefile's directory. A bare -I names
// that directory itself.
func (r *flagResolver) makefileIncludes(ctx context.Context, makefile m.Path, value string) ([]string, error) {
	tokens, err := shlex.Split(value)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", includesVar, err)
	}

	baseDir, err := r.fsAdapter.AbsPath(ctx, m.Path(filepath.Dir(string(makefile))))
	if err != nil {
		return nil, fmt.Errorf("resolve makefile dir: %w", err)
	}

	includes := make([]string, 0, len(tokens))

	for _, token := range tokens {
		dir := strings.TrimPrefix(token, "-I")
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(string(baseDir), dir)
		}

		includes = append(includes, "-I"+filepath.Clean(dir))
	}

	return includes, nil
}
