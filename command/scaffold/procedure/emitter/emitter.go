package emitter

import (
	"context"
	"fmt"
	"log"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/tree"
	"go.scnd.dev/open/scaffold/command/scaffold/template"
	"go.scnd.dev/open/scaffold/package/span"
	"go.scnd.dev/open/scaffold/package/telemetry"
	"go.scnd.dev/open/scaffold/utility/form"
)

const (
	DirectoryGenerated = "generated"
	DirectoryLayout    = "layout"

	ArtifactLayout = "layout"
	ArtifactSource = "source"
)

type Emitter struct {
	Filesystem      billy.Filesystem
	Renderer        *template.Renderer
	Instrument      *telemetry.Instrument
	PackageName     string
	LayoutExtension string
	SourceExtension string
	Verbose         bool
	Layer           *span.Layer
}

type Option struct {
	Filesystem      billy.Filesystem
	Renderer        *template.Renderer
	Instrument      *telemetry.Instrument
	PackageName     string
	LayoutExtension string
	SourceExtension string
	Verbose         bool
}

func New(option *Option) *Emitter {
	return &Emitter{
		Filesystem:      option.Filesystem,
		Renderer:        option.Renderer,
		Instrument:      option.Instrument,
		PackageName:     option.PackageName,
		LayoutExtension: option.LayoutExtension,
		SourceExtension: option.SourceExtension,
		Verbose:         option.Verbose,
		Layer:           span.NewLayer("emitter", "procedure"),
	}
}

func LayoutPath(name string, extension string) string {
	return path.Join(DirectoryGenerated, DirectoryLayout, fmt.Sprintf("view_%s.%s", form.ToLower(name), extension))
}

func SourcePath(p string, name string, extension string) string {
	return path.Join(DirectoryGenerated, p, fmt.Sprintf("%sView.%s", name, extension))
}

// Prepare creates the layout directory and the root of the view tree.
func (r *Emitter) Prepare(ctx context.Context) error {
	s, ctx := r.Layer.With(ctx)
	defer s.End()

	for _, directory := range []string{
		path.Join(DirectoryGenerated, DirectoryLayout),
		path.Join(DirectoryGenerated, tree.Root),
	} {
		if err := r.Directory(ctx, directory); err != nil {
			return s.Error("unable to prepare output", err)
		}
	}

	return nil
}

// Emit writes the layout file and the source stub of one view, overwriting existing files.
func (r *Emitter) Emit(ctx context.Context, name string, p string) error {
	s, ctx := r.Layer.With(ctx)
	defer s.End()
	s.Variable("name", name)
	s.Variable("path", p)

	// * ensure view directory
	if err := r.Directory(ctx, path.Join(DirectoryGenerated, p)); err != nil {
		return s.Error(fmt.Sprintf("unable to emit view %s", name), err)
	}

	// * write layout
	layoutPath := LayoutPath(name, r.LayoutExtension)
	if err := util.WriteFile(r.Filesystem, layoutPath, r.Renderer.RenderLayout(), 0644); err != nil {
		return s.Error(fmt.Sprintf("unable to write layout file %s", layoutPath), err)
	}
	r.Instrument.ArtifactWritten(ctx, ArtifactLayout)

	// * write source stub
	sourcePath := SourcePath(p, name, r.SourceExtension)
	source := r.Renderer.RenderSource(&template.SourceValues{
		PackageName: r.PackageName,
		Path:        p,
		Name:        name,
	})
	if err := util.WriteFile(r.Filesystem, sourcePath, source, 0644); err != nil {
		return s.Error(fmt.Sprintf("unable to write source file %s", sourcePath), err)
	}
	r.Instrument.ArtifactWritten(ctx, ArtifactSource)

	if r.Verbose {
		log.Printf("generated %s and %s", layoutPath, sourcePath)
	}

	return nil
}
