package domain

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// SourceArgs selects the files of a run.
type SourceArgs struct {
	Root       m.Path
	Files      []m.Path
	Extensions []string
	Exclude    []string
}

// CollectSources returns the explicit files when given, otherwise every file
// under Root with a matching extension that no exclude pattern matches,
// sorted by path. A missing Root yields no files.
func CollectSources(ctx context.Context, fsAdapter adapter.SourceFSAdapter, args SourceArgs) ([]m.Path, error) {
	if len(args.Files) > 0 {
		return args.Files, nil
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	var sources []m.Path

	err = fsAdapter.Walk(ctx, args.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}

			return err
		}

		if info.IsDir() || !hasExtension(path, args.Extensions) || matchesAny(excludes, path) {
			return nil
		}

		sources = append(sources, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", args.Root, err)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i] < sources[j]
	})

	return sources, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func hasExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
