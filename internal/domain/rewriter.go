package domain

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	m "inctrim.dev/pkg/inctrim/internal/model"
)

// ErrRepairExhausted is returned when no reduced include set compiles, even
// after every removed include has been restored.
var ErrRepairExhausted = errors.New("trimmed includes fail to compile")

// RepairResult is the verified reduction of a file.
type RepairResult struct {
	Lines    []string
	Keep     map[string]bool
	Restored []m.IncludeLine
}

// Rewriter produces a reduced file that is known to compile.
type Rewriter interface {
	Repair(ctx context.Context, source m.SourceFile, block m.IncludeBlock, classification m.Classification) (RepairResult, error)
}

type rewriter struct {
	Oracle
}

// NewRewriter constructs a Rewriter backed by oracle.
func NewRewriter(oracle Oracle) Rewriter {
	return &rewriter{Oracle: oracle}
}

// Repair compiles the file reduced to the needed includes. When that fails,
// removed includes are restored one at a time in their original order until
// the file compiles. The result is a compiling superset, not necessarily the
// smallest one.
func (r *rewriter) Repair(
	ctx context.Context,
	source m.SourceFile,
	block m.IncludeBlock,
	classification m.Classification,
) (RepairResult, error) {
	keep := classification.NeededTexts()
	candidate := RebuildFile(source.Lines, block, keep)

	ok, err := r.Compiles(ctx, m.SourceFile{Path: source.Path, Lines: candidate})
	if err != nil {
		return RepairResult{}, err
	}

	if ok {
		return RepairResult{Lines: candidate, Keep: keep}, nil
	}

	slog.Info("Reduced include set does not compile, restoring", "path", source.Path)

	var restored []m.IncludeLine

	for _, inc := range classification.Removable {
		if keep[inc.Text] {
			continue
		}

		keep[inc.Text] = true
		restored = append(restored, inc)
		candidate = RebuildFile(source.Lines, block, keep)

		ok, err := r.Compiles(ctx, m.SourceFile{Path: source.Path, Lines: candidate})
		if err != nil {
			return RepairResult{}, err
		}

		if ok {
			return RepairResult{Lines: candidate, Keep: keep, Restored: restored}, nil
		}
	}

	return RepairResult{}, ErrRepairExhausted
}

// RebuildFile replaces the block's line range with one copy of each kept
// include in original order. A blank separator follows the new block when
// it is non-empty and the next line is not blank. Lines outside the block
// are preserved as they are.
func RebuildFile(lines []string, block m.IncludeBlock, keep map[string]bool) []string {
	var newBlock []string

	seen := make(map[string]bool)

	for _, inc := range block.Includes {
		if !keep[inc.Text] || seen[inc.Text] {
			continue
		}

		seen[inc.Text] = true

		text := inc.Text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}

		newBlock = append(newBlock, text)
	}

	if len(newBlock) > 0 && (block.End >= len(lines) || strings.TrimSpace(lines[block.End]) != "") {
		newBlock = append(newBlock, "\n")
	}

	out := make([]string, 0, block.Start+len(newBlock)+len(lines)-block.End)
	out = append(out, lines[:block.Start]...)
	out = append(out, newBlock...)

	return append(out, lines[block.End:]...)
}
