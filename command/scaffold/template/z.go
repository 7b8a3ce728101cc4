package template

import (
	_ "embed"
)

//go:embed layout/view.xml
var LayoutView []byte

//go:embed source/view.kt
var SourceView []byte

//go:embed schema/views.json
var SchemaViews []byte
