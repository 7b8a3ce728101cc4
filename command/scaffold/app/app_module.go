package app

import (
	"context"

	"github.com/bsthun/gut"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/emitter"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/generator"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/schema"
	"go.scnd.dev/open/scaffold/command/scaffold/template"
	"go.scnd.dev/open/scaffold/package/telemetry"
	"go.uber.org/fx"
)

const (
	AppName    = "scaffold"
	AppVersion = "0.1.0"
)

// Module provides a ready generator writing below the configured output directory.
func (r *App) Module() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Supply(r),
		fx.Provide(
			NewFilesystem,
			NewSchema,
			NewTelemetry,
			NewInstrument,
			template.New,
			NewEmitter,
			NewGenerator,
		),
	)
}

func NewFilesystem(app *App) billy.Filesystem {
	return osfs.New(*app.config.Output)
}

func NewSchema(app *App) (*schema.Schema, error) {
	return app.Schema()
}

func NewTelemetry(lc fx.Lifecycle, app *App) (*telemetry.Telemetry, error) {
	t, err := telemetry.New(&telemetry.Config{
		AppName:      gut.Ptr(AppName),
		AppVersion:   gut.Ptr(AppVersion),
		Url:          app.config.TelemetryUrl,
		Organization: app.config.TelemetryOrganization,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})

	return t, nil
}

func NewInstrument(t *telemetry.Telemetry) *telemetry.Instrument {
	return t.Instrument
}

func NewEmitter(app *App, filesystem billy.Filesystem, renderer *template.Renderer, instrument *telemetry.Instrument, sch *schema.Schema) *emitter.Emitter {
	return emitter.New(&emitter.Option{
		Filesystem:      filesystem,
		Renderer:        renderer,
		Instrument:      instrument,
		PackageName:     sch.PackageName,
		LayoutExtension: *app.config.LayoutExtension,
		SourceExtension: *app.config.SourceExtension,
		Verbose:         *app.verbose,
	})
}

func NewGenerator(app *App, sch *schema.Schema, em *emitter.Emitter) *generator.Generator {
	return generator.New(sch, em, *app.config.Strict)
}
