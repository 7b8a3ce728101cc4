package plan

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.scnd.dev/open/scaffold/command/scaffold/app"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/generator"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/printer"
	"go.scnd.dev/open/scaffold/package/span"
)

var layer = span.NewLayer("plan", "subcommand")

type Command struct {
	Output io.Writer `kong:"-"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run prints the files generate would write, without touching the output directory.
func Run(app *app.App, command *Command) error {
	s, _ := layer.With(context.Background())
	defer s.End()

	w := command.Output
	if w == nil {
		w = os.Stdout
	}

	// * load schema
	sch, err := app.Schema()
	if err != nil {
		return s.Error("unable to load schema", err)
	}

	// * print plan
	p := generator.NewPlan(sch, *app.Config().LayoutExtension, *app.Config().SourceExtension)
	if err := printer.PrintTree(w, p.Files); err != nil {
		return s.Error("unable to print tree", err)
	}
	for _, collision := range p.Collisions {
		fmt.Fprintf(w, "warning: %s\n", generator.DescribeCollision(collision))
	}
	fmt.Fprintf(w, "%d views, %d files\n", len(p.Positions), len(p.Files))

	return nil
}
