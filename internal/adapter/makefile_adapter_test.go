package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

func TestParseMakeVars(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "simple assignments",
			content: "CFLAGS = -O2 -Wall\nINCLUDES = -Iinc\n",
			want:    map[string]string{"CFLAGS": "-O2 -Wall", "INCLUDES": "-Iinc"},
		},
		{
			name:    "comments and rules are skipped",
			content: "# top comment\n\nall: main.o\n\tcc -c main.c\nCC = gcc # the compiler\n",
			want:    map[string]string{"CC": "gcc"},
		},
		{
			name:    "reference to a later definition",
			content: "INCLUDES = -Iinc $(EXTRA)\nEXTRA = -Ivendor\n",
			want:    map[string]string{"INCLUDES": "-Iinc -Ivendor", "EXTRA": "-Ivendor"},
		},
		{
			name:    "undefined reference expands to empty",
			content: "CFLAGS = -O2 $(MISSING)\n",
			want:    map[string]string{"CFLAGS": "-O2"},
		},
		{
			name:    "single round of substitution",
			content: "A = $(B)\nB = $(C)\nC = deep\n",
			want:    map[string]string{"A": "$(C)", "B": "deep", "C": "deep"},
		},
		{
			name:    "value keeps everything after the first equals",
			content: "CFLAGS = -DNAME=value\n",
			want:    map[string]string{"CFLAGS": "-DNAME=value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMakeVars([]byte(tt.content))
			for name, value := range tt.want {
				assert.Equal(t, value, strings.TrimSpace(got[name]), name)
			}
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestLocalMakefileAdapter_ReadVars(t *testing.T) {
	adapter := NewLocalMakefileAdapter()

	t.Run("reads example makefile", func(t *testing.T) {
		vars, err := adapter.ReadVars(context.Background(), m.Path(filepath.Join("..", "..", "examples", "basic", "Makefile")))
		require.NoError(t, err)
		assert.Equal(t, "-std=c99 -Wall", vars["CFLAGS"])
		assert.Equal(t, "-Iinclude", vars["INCLUDES"])
	})

	t.Run("missing file yields empty map", func(t *testing.T) {
		vars, err := adapter.ReadVars(context.Background(), m.Path(filepath.Join(t.TempDir(), "Makefile")))
		require.NoError(t, err)
		assert.Empty(t, vars)
	})
}
