package generator

import (
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/emitter"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/schema"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/tree"
)

// Plan is the set of files a schema produces, in write order.
type Plan struct {
	Positions  []*tree.Position
	Collisions []*tree.Collision
	Files      []string
}

func NewPlan(schema *schema.Schema, layoutExtension string, sourceExtension string) *Plan {
	positions := tree.Collect(schema.Views, tree.Root)

	// * list files once, in the order they are first written
	seen := make(map[string]struct{})
	files := make([]string, 0, len(positions)*2)
	for _, position := range positions {
		for _, file := range []string{
			emitter.LayoutPath(position.Name, layoutExtension),
			emitter.SourcePath(position.Path, position.Name, sourceExtension),
		} {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}

	return &Plan{
		Positions:  positions,
		Collisions: tree.Collisions(positions),
		Files:      files,
	}
}
