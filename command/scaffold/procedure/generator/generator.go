package generator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.scnd.dev/open/scaffold/command/scaffold/procedure/emitter"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/schema"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/tree"
	"go.scnd.dev/open/scaffold/package/span"
)

type Generator struct {
	Schema  *schema.Schema
	Emitter *emitter.Emitter
	Strict  bool
	Layer   *span.Layer
}

type Report struct {
	Plan  *Plan
	Views int
}

func New(schema *schema.Schema, emitter *emitter.Emitter, strict bool) *Generator {
	return &Generator{
		Schema:  schema,
		Emitter: emitter,
		Strict:  strict,
		Layer:   span.NewLayer("generator", "procedure"),
	}
}

func (r *Generator) Plan() *Plan {
	return NewPlan(r.Schema, r.Emitter.LayoutExtension, r.Emitter.SourceExtension)
}

// Generate writes every view of the schema. Files written before a failure are kept.
func (r *Generator) Generate(ctx context.Context) (*Report, error) {
	s, ctx := r.Layer.With(ctx)
	defer s.End()

	// * check collisions
	plan := r.Plan()
	if len(plan.Collisions) > 0 {
		if r.Strict {
			return nil, s.Error("conflicting views", fmt.Errorf("%s", DescribeCollision(plan.Collisions[0])))
		}
		for _, collision := range plan.Collisions {
			log.Printf("warning: %s, last one wins", DescribeCollision(collision))
		}
	}

	// * prepare output
	if err := r.Emitter.Prepare(ctx); err != nil {
		return nil, s.Error("unable to prepare output directories", err)
	}

	// * emit views
	views := 0
	err := tree.Walk(r.Schema.Views, tree.Root, func(name string, path string) error {
		views++
		return r.Emitter.Emit(ctx, name, path)
	})
	if err != nil {
		return nil, s.Error("generation aborted", err)
	}
	s.Variable("views", views)

	return &Report{
		Plan:  plan,
		Views: views,
	}, nil
}

func DescribeCollision(collision *tree.Collision) string {
	locations := make([]string, 0, len(collision.Positions))
	for _, position := range collision.Positions {
		locations = append(locations, position.Path+"/"+position.Name)
	}
	return fmt.Sprintf("%s file %s is produced by %s", collision.Kind, collision.Key, strings.Join(locations, ", "))
}
