package template

import (
	"github.com/valyala/fasttemplate"
	"go.scnd.dev/open/scaffold/package/span"
	"go.scnd.dev/open/scaffold/utility/form"
)

const (
	TagStart = "${"
	TagEnd   = "}"
)

type Renderer struct {
	Layout []byte
	Source *fasttemplate.Template
}

type SourceValues struct {
	PackageName string
	Path        string
	Name        string
}

func New() (*Renderer, error) {
	// * parse source template once
	source, err := fasttemplate.NewTemplate(string(SourceView), TagStart, TagEnd)
	if err != nil {
		return nil, span.NewError(nil, "invalid source template", err)
	}

	return &Renderer{
		Layout: LayoutView,
		Source: source,
	}, nil
}

func (r *Renderer) RenderLayout() []byte {
	return r.Layout
}

// RenderSource substitutes the placeholders verbatim, without escaping.
func (r *Renderer) RenderSource(values *SourceValues) []byte {
	return []byte(r.Source.ExecuteString(map[string]any{
		"packageName":   values.PackageName,
		"dottedPath":    form.ToDotted(values.Path),
		"name":          values.Name,
		"lowercaseName": form.ToLower(values.Name),
	}))
}
