// Package export writes the landing site as static files for CDN hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/internal/rendering"
	"github.com/kanbananza/landing/internal/storage"
	"github.com/kanbananza/landing/internal/view"
	"github.com/kanbananza/landing/web/src/templates/layouts"
	"github.com/kanbananza/landing/web/src/templates/pages"
)

const (
	indexFile = "index.html"
	staticDir = "static"
)

// Exporter renders every localized landing page and copies the static assets.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	assets   fs.FS
	logger   *slog.Logger
}

// New creates an Exporter. assets must contain a top-level "static" directory.
func New(store storage.Store, renderer rendering.Renderer, assets fs.FS, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{store: store, renderer: renderer, assets: assets, logger: logger}
}

// Options controls an export run.
type Options struct {
	// Clean removes outDir before writing.
	Clean bool
}

// Export writes the site under outDir and returns the written paths in
// order. The default language is written to outDir/index.html, other
// languages to outDir/<lang>/index.html.
func (x *Exporter) Export(ctx context.Context, outDir string, opts Options) ([]string, error) {
	if opts.Clean {
		if err := x.store.Delete(ctx, outDir); err != nil {
			return nil, fmt.Errorf("clean %s: %w", outDir, err)
		}
	}

	var written []string
	for _, tag := range i18n.Supported() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		loc := i18n.New(tag)
		target := filepath.Join(outDir, indexFile)
		if tag != i18n.DefaultTag() {
			target = filepath.Join(outDir, loc.Lang(), indexFile)
		}
		if err := x.writePage(ctx, target, loc); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	assets, err := x.copyAssets(ctx, outDir)
	written = append(written, assets...)
	if err != nil {
		return written, err
	}

	x.logger.Info("static export complete", "out_dir", outDir, "files", len(written))
	return written, nil
}

// Page renders the complete landing document for loc.
func (x *Exporter) Page(ctx context.Context, loc i18n.Localizer) ([]byte, error) {
	doc := layouts.Base(ctx, layouts.Page{
		Description: loc.T(i18n.KeyMetaDescription),
		Lang:        loc.Lang(),
		Content:     view.AdaptGomponentToTempl(pages.LandingFor(loc)),
	})
	return x.renderer.RenderComponent(ctx, doc)
}

func (x *Exporter) writePage(ctx context.Context, target string, loc i18n.Localizer) error {
	doc, err := x.Page(ctx, loc)
	if err != nil {
		return fmt.Errorf("render %s page: %w", loc.Lang(), err)
	}
	if _, err := x.store.Save(ctx, target, bytes.NewReader(doc)); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}
	x.logger.Debug("wrote page", "path", target, "lang", loc.Lang())
	return nil
}

func (x *Exporter) copyAssets(ctx context.Context, outDir string) ([]string, error) {
	var written []string
	err := fs.WalkDir(x.assets, staticDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := x.assets.Open(p)
		if err != nil {
			return fmt.Errorf("open asset %s: %w", p, err)
		}
		defer f.Close()

		target := filepath.Join(outDir, filepath.FromSlash(path.Clean(p)))
		if _, err := x.store.Save(ctx, target, f); err != nil {
			return fmt.Errorf("save asset %s: %w", target, err)
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy assets: %w", err)
	}
	return written, nil
}
