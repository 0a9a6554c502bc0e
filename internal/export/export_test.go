package export_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbananza/landing/internal/export"
	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/internal/rendering"
	"github.com/kanbananza/landing/internal/storage"
	"github.com/kanbananza/landing/web"
)

func newExporter(t *testing.T) (*export.Exporter, afero.Fs) {
	t.Helper()
	memFs := afero.NewMemMapFs()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return export.New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), web.FS, logger), memFs
}

func TestExportWritesPagesAndAssets(t *testing.T) {
	x, memFs := newExporter(t)

	written, err := x.Export(context.Background(), "dist", export.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("dist", "index.html"),
		filepath.Join("dist", "pt-BR", "index.html"),
		filepath.Join("dist", "static", "css", "landing.css"),
	}, written)

	english, err := afero.ReadFile(memFs, filepath.Join("dist", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(english), `<html lang="en">`)
	assert.Contains(t, string(english), "Welcome to")
	assert.Contains(t, string(english), `href="/dashboard"`)
	assert.Contains(t, string(english), `href="/kiosk"`)

	portuguese, err := afero.ReadFile(memFs, filepath.Join("dist", "pt-BR", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(portuguese), `<html lang="pt-BR">`)
	assert.Contains(t, string(portuguese), "Bem-vindo ao")
	assert.Contains(t, string(portuguese), "Kanbananza")

	css, err := afero.ReadFile(memFs, filepath.Join("dist", "static", "css", "landing.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".features")
}

func TestExportClean(t *testing.T) {
	x, memFs := newExporter(t)
	require.NoError(t, afero.WriteFile(memFs, filepath.Join("dist", "stale.html"), []byte("old"), 0o644))

	_, err := x.Export(context.Background(), "dist", export.Options{Clean: true})
	require.NoError(t, err)

	exists, err := afero.Exists(memFs, filepath.Join("dist", "stale.html"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExportHonoursCancellation(t *testing.T) {
	x, memFs := newExporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := x.Export(ctx, "dist", export.Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, written)

	exists, err := afero.DirExists(memFs, "dist")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExportMissingStaticDir(t *testing.T) {
	memFs := afero.NewMemMapFs()
	x := export.New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), fstest.MapFS{}, nil)

	_, err := x.Export(context.Background(), "dist", export.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy assets")
}

func TestPageMatchesDocumentShape(t *testing.T) {
	x, _ := newExporter(t)

	doc, err := x.Page(context.Background(), i18n.Default())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToLower(string(doc)), "<!doctype html>"))
	assert.Equal(t, 2, strings.Count(string(doc), "<a "))
}
