// Package app wires the landing site services into a dependency injector.
package app

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/kanbananza/landing/internal/config"
	"github.com/kanbananza/landing/internal/export"
	"github.com/kanbananza/landing/internal/logging"
	"github.com/kanbananza/landing/internal/rendering"
	"github.com/kanbananza/landing/internal/storage"
	"github.com/kanbananza/landing/web"
)

const sessionMaxAge = 86400 * 7 // 7 days

// NewInjector returns an injector providing the configuration and every
// service built from it. Services are created lazily on first invoke.
func NewInjector(cfg *config.Config) do.Injector {
	return NewInjectorWithFs(cfg, afero.NewOsFs())
}

// NewInjectorWithFs is NewInjector with an explicit export filesystem.
func NewInjectorWithFs(cfg *config.Config, fs afero.Fs) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.Provide(i, provideLogger)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideSessionStore)
	do.Provide(i, provideStore)
	do.Provide(i, provideExporter)

	return i
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return logging.New(cfg.LogFormat, cfg.LogLevel), nil
}

func provideRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideSessionStore(i do.Injector) (sessions.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

func provideStore(i do.Injector) (storage.Store, error) {
	return storage.NewAferoStore(do.MustInvoke[afero.Fs](i)), nil
}

func provideExporter(i do.Injector) (*export.Exporter, error) {
	return export.New(
		do.MustInvoke[storage.Store](i),
		do.MustInvoke[rendering.Renderer](i),
		web.FS,
		do.MustInvoke[*slog.Logger](i),
	), nil
}
