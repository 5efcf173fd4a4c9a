// Package model defines the data structures shared by the include trimmer.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceFile is one compilation unit split into lines. Every line keeps its
// terminator so that joining the lines reproduces the file byte-for-byte.
type SourceFile struct {
	Path  Path
	Lines []string
}

// Content joins the lines back into the file body.
func (s SourceFile) Content() string {
	return strings.Join(s.Lines, "")
}

// SplitLines splits content into lines, keeping terminators.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// IncludeLine is a single include directive found in the include block.
type IncludeLine struct {
	Index  int    // position in SourceFile.Lines
	Text   string // exact line text including the terminator
	Target string // header name between the delimiters
	Angled bool   // true for <...>, false for "..."
}

// Directive returns the include text without surrounding whitespace.
func (i IncludeLine) Directive() string {
	return strings.TrimSpace(i.Text)
}

// IncludeBlock is the first contiguous run of include or blank lines.
// End is exclusive.
type IncludeBlock struct {
	Start    int
	End      int
	Includes []IncludeLine
}

// CompileFlags are the include-path flags and the other compiler flags used
// for every compilation in a run.
type CompileFlags struct {
	Includes []string
	CFlags   []string
}

// Args returns the flags in the order they are passed to the compiler.
func (f CompileFlags) Args() []string {
	args := make([]string, 0, len(f.CFlags)+len(f.Includes))
	args = append(args, f.CFlags...)
	args = append(args, f.Includes...)

	return args
}
