package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	ArtifactCounter  metric.Int64Counter
	DirectoryCounter metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	artifactCounter, err := meter.Int64Counter(
		"scaffold.artifact.written",
		metric.WithDescription("Number of generated files written"),
	)
	if err != nil {
		return nil, err
	}

	directoryCounter, err := meter.Int64Counter(
		"scaffold.directory.created",
		metric.WithDescription("Number of output directories created"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		ArtifactCounter:  artifactCounter,
		DirectoryCounter: directoryCounter,
	}, nil
}

func (r *Instrument) ArtifactWritten(ctx context.Context, kind string) {
	if r == nil {
		return
	}
	r.ArtifactCounter.Add(
		ctx,
		1,
		metric.WithAttributes(
			attribute.String("artifact.kind", kind),
		),
	)
}

func (r *Instrument) DirectoryCreated(ctx context.Context) {
	if r == nil {
		return
	}
	r.DirectoryCounter.Add(ctx, 1)
}
