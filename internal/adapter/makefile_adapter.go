package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	m "inctrim.dev/pkg/inctrim/internal/model"
)

var makeVarRefPattern = regexp.MustCompile(`\$\(([^)]+)\)`)

// MakefileAdapter reads variable assignments from a build-description file.
type MakefileAdapter interface {
	// ReadVars returns the NAME = value assignments of the file at path.
	// A missing file yields an empty map.
	ReadVars(ctx context.Context, path m.Path) (map[string]string, error)
}

// LocalMakefileAdapter reads single-line assignments with one round of
// $(NAME) substitution. Conditionals, includes and continuations are ignored.
type LocalMakefileAdapter struct{}

// NewLocalMakefileAdapter constructs a LocalMakefileAdapter.
func NewLocalMakefileAdapter() *LocalMakefileAdapter {
	return &LocalMakefileAdapter{}
}

// ReadVars reads and expands the variables of the Makefile at path.
func (a *LocalMakefileAdapter) ReadVars(ctx context.Context, path m.Path) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, err
	}

	return ParseMakeVars(content), nil
}

// ParseMakeVars collects NAME = value lines and expands $(NAME) references
// once against the complete set of names. Undefined names expand to "".
func ParseMakeVars(content []byte) map[string]string {
	raw := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		value, _, _ = strings.Cut(value, "#")
		raw[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	vars := make(map[string]string, len(raw))
	for name, value := range raw {
		vars[name] = makeVarRefPattern.ReplaceAllStringFunc(value, func(ref string) string {
			return raw[ref[2:len(ref)-1]]
		})
	}

	return vars
}
