package main

import (
	"github.com/alecthomas/kong"
	"github.com/lithammer/dedent"
	"go.scnd.dev/open/scaffold/command/scaffold/app"
	"go.scnd.dev/open/scaffold/command/scaffold/index"
	"go.scnd.dev/open/scaffold/command/scaffold/subcommand/generate"
	"go.scnd.dev/open/scaffold/command/scaffold/subcommand/plan"
)

var description = dedent.Dedent(`
	Generate view layout and source stubs from a nested view schema.

	Schema format (json or yaml):
	  { "packageName": string, "views": ViewTree }
	  ViewTree := string | [ ViewTree, ... ] | { directory: ViewTree, ... }

	Strings are views, lists keep the current directory and mappings open a
	subdirectory per key. Without --schema the built-in schema is used.
`)

type Command struct {
	Verbose         bool   `help:"Enable verbose output." short:"v"`
	Config          string `help:"Configuration file (default: ./scaffold.yml when present)." type:"path"`
	Schema          string `help:"Schema file, json or yaml." short:"s" type:"path"`
	Output          string `help:"Base directory of the generated tree (default: executable directory)." short:"o" type:"path"`
	Strict          bool   `help:"Reject schemas where two views produce the same file." negatable:""`
	LayoutExtension string `help:"Extension of layout files." placeholder:"xml"`
	SourceExtension string `help:"Extension of source stubs." placeholder:"kt"`

	Generate generate.Command `cmd:"" default:"1" help:"Write the generated tree."`
	Plan     plan.Command     `cmd:"" help:"Print the files generate would write."`
}

// Override collects the flags given on the command line. Strict is taken only
// when --strict or --no-strict was passed so the configuration file keeps it otherwise.
func (r *Command) Override(ctx *kong.Context) *index.Config {
	override := new(index.Config)
	if r.Schema != "" {
		override.Schema = &r.Schema
	}
	if r.Output != "" {
		override.Output = &r.Output
	}
	if Explicit(ctx, "strict") {
		override.Strict = &r.Strict
	}
	if r.LayoutExtension != "" {
		override.LayoutExtension = &r.LayoutExtension
	}
	if r.SourceExtension != "" {
		override.SourceExtension = &r.SourceExtension
	}
	return override
}

// Explicit reports whether the named flag appeared on the command line.
func Explicit(ctx *kong.Context, name string) bool {
	if ctx == nil {
		return false
	}
	for _, path := range ctx.Path {
		if path.Flag != nil && path.Flag.Name == name {
			return true
		}
	}
	return false
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("scaffold"),
		kong.Description(description),
		kong.UsageOnError(),
	)

	application, err := app.New(&app.Option{
		Verbose:    command.Verbose,
		ConfigPath: command.Config,
		Override:   command.Override(ctx),
	})
	ctx.FatalIfErrorf(err)

	err = ctx.Run(application)
	ctx.FatalIfErrorf(err)
}
