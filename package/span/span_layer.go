package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const TracerName = "scaffold"

type ContextKey struct {
	Name string
}

var ContextKeySpan = ContextKey{
	Name: "scaffold.span",
}

// Layer names a component; spans opened through it carry the layer as a trace attribute.
type Layer struct {
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"`
	Caller *Caller `json:"caller,omitempty"`
}

func NewLayer(name string, typ string) *Layer {
	return &Layer{
		Name:   name,
		Type:   typ,
		Caller: NewCaller(),
	}
}

func (r *Layer) With(ctx context.Context) (*Wrapper, context.Context) {
	parent, ok := ctx.Value(ContextKeySpan).(*Span)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	// * start tracing span, noop unless a provider is installed
	ctx, tracingSpan := otel.Tracer(TracerName).Start(ctx, name)
	tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     r,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if ok {
		s.Path = append(append([]*string{}, parent.Path...), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	return &Wrapper{Span: s}, context.WithValue(ctx, ContextKeySpan, s)
}
