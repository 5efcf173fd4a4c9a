package domain

import (
	"context"
	"errors"
	"log/slog"

	m "inctrim.dev/pkg/inctrim/internal/model"
)

// ErrBaselineBroken is returned when the unmodified file does not compile.
var ErrBaselineBroken = errors.New("baseline does not compile")

// Prover classifies the includes of a block as needed or removable.
type Prover interface {
	Classify(ctx context.Context, source m.SourceFile, block m.IncludeBlock) (m.Classification, error)
}

type prover struct {
	Oracle
}

// NewProver constructs a Prover backed by oracle.
func NewProver(oracle Oracle) Prover {
	return &prover{Oracle: oracle}
}

// Classify compiles the unmodified file, then the file with each include
// removed on its own. An include whose removal breaks compilation is needed.
// Removals are never combined, so k includes cost k+1 compilations and two
// includes that are each removable may still be required together.
func (p *prover) Classify(ctx context.Context, source m.SourceFile, block m.IncludeBlock) (m.Classification, error) {
	ok, err := p.Compiles(ctx, source)
	if err != nil {
		return m.Classification{}, err
	}

	if !ok {
		slog.Info("Baseline does not compile", "path", source.Path)
		return m.Classification{}, ErrBaselineBroken
	}

	needed := make(map[string]bool)

	for _, inc := range block.Includes {
		candidate := m.SourceFile{Path: source.Path, Lines: withoutLine(source.Lines, inc.Index)}

		ok, err := p.Compiles(ctx, candidate)
		if err != nil {
			return m.Classification{}, err
		}

		slog.Debug("Include trial", "path", source.Path, "include", inc.Target, "compiles", ok)

		if !ok {
			needed[inc.Text] = true
		}
	}

	var classification m.Classification

	for _, inc := range block.Includes {
		if needed[inc.Text] {
			classification.Needed = append(classification.Needed, inc)
		} else {
			classification.Removable = append(classification.Removable, inc)
		}
	}

	return classification, nil
}

func withoutLine(lines []string, index int) []string {
	out := make([]string, 0, len(lines))
	out = append(out, lines[:index]...)

	return append(out, lines[index+1:]...)
}
