package generate

import (
	"context"
	"log"
	"os"

	"go.scnd.dev/open/scaffold/command/scaffold/app"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/generator"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/printer"
	"go.scnd.dev/open/scaffold/package/span"
	"go.uber.org/fx"
)

var layer = span.NewLayer("generate", "subcommand")

type Command struct {
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	s, ctx := layer.With(context.Background())
	defer s.End()

	// * construct generator
	var g *generator.Generator
	application := fx.New(app.Module(), fx.Populate(&g))
	if err := application.Err(); err != nil {
		return s.Error("unable to initialize generator", err)
	}
	if err := application.Start(ctx); err != nil {
		return s.Error("unable to start generator", err)
	}

	// * generate views
	report, err := g.Generate(ctx)
	if stopErr := application.Stop(ctx); stopErr != nil {
		log.Printf("unable to flush telemetry: %v", stopErr)
	}
	if err != nil {
		return s.Error("unable to generate views", err)
	}

	log.Printf("generated %d views into %s", report.Views, *app.Config().Output)
	if *app.Verbose() {
		if err := printer.PrintTree(os.Stdout, report.Plan.Files); err != nil {
			return s.Error("unable to print tree", err)
		}
	}

	return nil
}
