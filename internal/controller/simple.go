package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

var (
	fixStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	checkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI with line-oriented output on the cobra command's
// streams. Status tags are colored when styled is set.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// NewUI returns the UI used by the CLI.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}

// DisplayCompilation prints the command line and the compiler's output.
// Standard error of the compiler goes to the command's error stream.
func (s *SimpleUI) DisplayCompilation(ctx context.Context, result adapter.CompileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", strings.Join(result.Command, " "))

	if result.Stdout != "" {
		s.printf("%s\n", result.Stdout)
	}

	if result.Stderr != "" {
		s.write(s.cmd.ErrOrStderr(), "%s\n", result.Stderr)
	}
}

// DisplaySkipped reports a file without an include block.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: no include block found\n", s.tag("skip", faintStyle), path)
}

// DisplayBaselineBroken reports a file that does not compile unmodified.
func (s *SimpleUI) DisplayBaselineBroken(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: failed to compile baseline; skipping\n", s.tag("error", errorStyle), path)
}

// DisplayRepairExhausted reports a file whose reduced include sets never compiled.
func (s *SimpleUI) DisplayRepairExhausted(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: trimmed includes fail to compile; keeping original block\n", s.tag("error", errorStyle), path)
}

// DisplayClassification prints the dry-run result for a file.
func (s *SimpleUI) DisplayClassification(ctx context.Context, path m.Path, classification m.Classification) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: needed %d, removable %d\n",
		s.tag("check", checkStyle), path, len(classification.Needed), len(classification.Removable))

	for _, inc := range classification.Removable {
		s.printf("    removable: %s\n", inc.Directive())
	}
}

// DisplayRewrite reports a file that was rewritten.
func (s *SimpleUI) DisplayRewrite(ctx context.Context, path m.Path, kept, removed int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: kept %d, removed %d\n", s.tag("fix", fixStyle), path, kept, removed)
}

// DisplayUnchanged reports a file whose include block is already minimal.
func (s *SimpleUI) DisplayUnchanged(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s: no changes needed\n", s.tag("noop", faintStyle), path)
}

// DisplayDiff prints a unified diff between two versions of a file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, before, after []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	diff, err := UnifiedDiff(path, before, after)
	if err != nil || diff == "" {
		return
	}

	s.printf("%s", diff)
}

// DisplayError reports an unexpected per-file failure.
func (s *SimpleUI) DisplayError(ctx context.Context, path m.Path, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("%s %s: %v\n", s.tag("error", errorStyle), path, err)
}

// DisplayNoSources reports an empty file set.
func (s *SimpleUI) DisplayNoSources(ctx context.Context, root m.Path, extensions []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("No %s files found under %s\n", strings.Join(extensions, "/"), root)
}

// DisplaySummary prints a per-file table followed by totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Files) == 0 {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))

	saved := 0
	for _, file := range report.Files {
		if file.BytesSaved > 0 {
			saved += file.BytesSaved
		}
	}

	if saved > 0 {
		s.printf("Trimmed %s of include directives\n", humanize.Bytes(uint64(saved)))
	}
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Outcome", "Needed", "Removable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	needed, removable := 0, 0

	for _, file := range report.Files {
		table.Append([]string{
			string(file.Path),
			file.Outcome.String(),
			fmt.Sprintf("%d", len(file.Needed)),
			fmt.Sprintf("%d", len(file.Removable)),
		})

		needed += len(file.Needed)
		removable += len(file.Removable)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d failed", report.Failed()),
		fmt.Sprintf("%d", needed),
		fmt.Sprintf("%d", removable),
	})

	table.Render()

	return tableBuffer.String()
}

// UnifiedDiff renders the difference between before and after. Lines are
// expected to carry their terminators.
func UnifiedDiff(path m.Path, before, after []string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  3,
	})
}

func (s *SimpleUI) tag(label string, style lipgloss.Style) string {
	text := "[" + label + "]"
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.write(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) write(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
