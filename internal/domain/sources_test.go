package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	"inctrim.dev/pkg/inctrim/internal/domain"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))
	}

	return root
}

func TestCollectSources_WalksAndSorts(t *testing.T) {
	root := writeTree(t, "z.c", "a.c", "lib/m.c", "lib/m.h", "README.md")

	got, err := domain.CollectSources(context.Background(), adapter.NewLocalSourceFSAdapter(), domain.SourceArgs{
		Root:       m.Path(root),
		Extensions: []string{".c"},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.c")),
		m.Path(filepath.Join(root, "lib", "m.c")),
		m.Path(filepath.Join(root, "z.c")),
	}, got)
}

func TestCollectSources_ExtensionsAndExcludes(t *testing.T) {
	root := writeTree(t, "a.c", "b.h", "vendor/v.c", "gen/g_generated.c")

	got, err := domain.CollectSources(context.Background(), adapter.NewLocalSourceFSAdapter(), domain.SourceArgs{
		Root:       m.Path(root),
		Extensions: []string{".c", ".h"},
		Exclude:    []string{"/vendor/", `_generated\.c$`},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.c")),
		m.Path(filepath.Join(root, "b.h")),
	}, got)
}

func TestCollectSources_ExplicitFilesKeepOrder(t *testing.T) {
	files := []m.Path{"src/z.c", "src/a.c"}

	got, err := domain.CollectSources(context.Background(), adapter.NewLocalSourceFSAdapter(), domain.SourceArgs{
		Root:    "does-not-matter",
		Files:   files,
		Exclude: []string{"z"},
	})
	require.NoError(t, err)
	assert.Equal(t, files, got)
}

func TestCollectSources_MissingRootIsEmpty(t *testing.T) {
	got, err := domain.CollectSources(context.Background(), adapter.NewLocalSourceFSAdapter(), domain.SourceArgs{
		Root:       m.Path(filepath.Join(t.TempDir(), "missing")),
		Extensions: []string{".c"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollectSources_InvalidExclude(t *testing.T) {
	_, err := domain.CollectSources(context.Background(), adapter.NewLocalSourceFSAdapter(), domain.SourceArgs{
		Root:       m.Path(t.TempDir()),
		Extensions: []string{".c"},
		Exclude:    []string{"("},
	})
	require.Error(t, err)
}
