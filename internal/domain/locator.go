// Package domain contains the include-necessity engine and the run workflow.
package domain

import (
	"regexp"
	"strings"

	m "inctrim.dev/pkg/inctrim/internal/model"
)

var includePattern = regexp.MustCompile(`^\s*#\s*include\s*([<"])([^>"]+)[>"]`)

// ParseInclude reports whether line is an include directive and returns it
// as an IncludeLine positioned at index.
func ParseInclude(index int, line string) (m.IncludeLine, bool) {
	match := includePattern.FindStringSubmatch(line)
	if match == nil {
		return m.IncludeLine{}, false
	}

	return m.IncludeLine{
		Index:  index,
		Text:   line,
		Target: match[2],
		Angled: match[1] == "<",
	}, true
}

// FindIncludeBlock locates the first contiguous run of include directives,
// allowing blank lines in between and after. It returns false when the file
// has no include directive at all.
func FindIncludeBlock(lines []string) (m.IncludeBlock, bool) {
	start := -1

	for i, line := range lines {
		if includePattern.MatchString(line) {
			start = i
			break
		}
	}

	if start < 0 {
		return m.IncludeBlock{}, false
	}

	block := m.IncludeBlock{Start: start, End: start}

	for block.End < len(lines) {
		line := lines[block.End]

		if inc, ok := ParseInclude(block.End, line); ok {
			block.Includes = append(block.Includes, inc)
		} else if strings.TrimSpace(line) != "" {
			break
		}

		block.End++
	}

	return block, true
}
