package span

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChainsMessages(t *testing.T) {
	err := NewError(nil, "unable to write file", os.ErrPermission)
	err = NewError(nil, "unable to emit view", err)

	assert.Equal(t, "unable to emit view: unable to write file: "+os.ErrPermission.Error(), err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Len(t, e.Items, 2)
	assert.NotNil(t, e.Items[0].Trace)
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewError(nil, "invalid schema", nil)
	assert.Equal(t, "invalid schema", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestLayerWithNestsSpans(t *testing.T) {
	layer := NewLayer("generator", "procedure")

	outer, ctx := layer.With(context.Background())
	inner, _ := layer.With(ctx)
	inner.Variable("name", "Login")
	inner.End()
	outer.End()

	assert.Len(t, outer.Span.Children, 1)
	assert.Equal(t, outer.Span.Name, inner.Span.Path[0])
	assert.Equal(t, "Login", inner.Span.Variables["name"])
	assert.NotNil(t, inner.Span.Ended)

	err := inner.Error("failed", errors.New("boom"))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Same(t, inner.Span, e.Items[0].Span)
}
