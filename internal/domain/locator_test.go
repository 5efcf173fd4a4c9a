package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

func TestParseInclude(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantOK     bool
		wantTarget string
		wantAngled bool
	}{
		{"angled", "#include <stdio.h>\n", true, "stdio.h", true},
		{"quoted", "#include \"util/list.h\"\n", true, "util/list.h", false},
		{"spaces around hash", "  #  include <a.h>\n", true, "a.h", true},
		{"no space before name", "#include<a.h>\n", true, "a.h", true},
		{"tab indented", "\t#include \"b.h\"", true, "b.h", false},
		{"define", "#define X 1\n", false, "", false},
		{"macro include", "#include HEADER\n", false, "", false},
		{"commented out", "// #include <a.h>\n", false, "", false},
		{"empty name", "#include <>\n", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc, ok := ParseInclude(7, tt.line)
			require.Equal(t, tt.wantOK, ok)

			if !ok {
				return
			}

			assert.Equal(t, 7, inc.Index)
			assert.Equal(t, tt.line, inc.Text)
			assert.Equal(t, tt.wantTarget, inc.Target)
			assert.Equal(t, tt.wantAngled, inc.Angled)
		})
	}
}

func TestFindIncludeBlock(t *testing.T) {
	t.Run("no include directive", func(t *testing.T) {
		_, ok := FindIncludeBlock(m.SplitLines("int main(void) {\n\treturn 0;\n}\n"))
		assert.False(t, ok)
	})

	t.Run("empty file", func(t *testing.T) {
		_, ok := FindIncludeBlock(nil)
		assert.False(t, ok)
	})

	t.Run("block after a leading comment", func(t *testing.T) {
		lines := m.SplitLines("/* header */\n#include <a.h>\n#include \"b.h\"\nint x;\n")

		block, ok := FindIncludeBlock(lines)
		require.True(t, ok)
		assert.Equal(t, 1, block.Start)
		assert.Equal(t, 3, block.End)
		require.Len(t, block.Includes, 2)
		assert.Equal(t, 1, block.Includes[0].Index)
		assert.Equal(t, "b.h", block.Includes[1].Target)
	})

	t.Run("blank lines inside and after the block", func(t *testing.T) {
		lines := m.SplitLines("#include <a.h>\n\n#include <b.h>\n   \n\nint x;\n")

		block, ok := FindIncludeBlock(lines)
		require.True(t, ok)
		assert.Equal(t, 0, block.Start)
		assert.Equal(t, 5, block.End)
		require.Len(t, block.Includes, 2)
		assert.Equal(t, 2, block.Includes[1].Index)
	})

	t.Run("only the first block is recognized", func(t *testing.T) {
		lines := m.SplitLines("#include <a.h>\n#define X 1\n#include <b.h>\n")

		block, ok := FindIncludeBlock(lines)
		require.True(t, ok)
		assert.Equal(t, 1, block.End)
		require.Len(t, block.Includes, 1)
	})

	t.Run("block runs to end of file", func(t *testing.T) {
		lines := m.SplitLines("#include <a.h>\n#include <b.h>")

		block, ok := FindIncludeBlock(lines)
		require.True(t, ok)
		assert.Equal(t, 2, block.End)
		assert.Equal(t, "#include <b.h>", block.Includes[1].Text)
	})

	t.Run("every include lies within the block", func(t *testing.T) {
		lines := m.SplitLines("int a;\n#include <a.h>\n\n#include <a.h>\n#include \"c.h\"\nint b;\n#include <z.h>\n")

		block, ok := FindIncludeBlock(lines)
		require.True(t, ok)

		for _, inc := range block.Includes {
			assert.GreaterOrEqual(t, inc.Index, block.Start)
			assert.Less(t, inc.Index, block.End)
			assert.Equal(t, lines[inc.Index], inc.Text)
		}
		assert.Len(t, block.Includes, 3)
	})
}
