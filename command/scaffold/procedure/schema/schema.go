package schema

import (
	"os"

	"go.scnd.dev/open/scaffold/command/scaffold/procedure/tree"
	"go.scnd.dev/open/scaffold/command/scaffold/template"
	"go.scnd.dev/open/scaffold/package/span"
	"gopkg.in/yaml.v3"
)

const (
	KeyPackageName = "packageName"
	KeyViews       = "views"
)

type Schema struct {
	PackageName string
	Views       tree.Node
}

// Default parses the schema compiled into the binary.
func Default() (*Schema, error) {
	return Parse(template.SchemaViews)
}

// Load reads a schema file, falling back to Default when path is empty.
func Load(path string) (*Schema, error) {
	if path == "" {
		return Default()
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, span.NewError(nil, "unable to read schema file", err)
	}

	return Parse(payload)
}

// Parse accepts JSON or YAML. A payload opening with '{' or '[' is read as
// JSON. Mapping order is kept as written and a repeated key keeps its last value.
func Parse(payload []byte) (*Schema, error) {
	// * decode document
	document := new(yaml.Node)
	if JsonPayload(payload) {
		decoded, err := DecodeJson(payload)
		if err != nil {
			return nil, span.NewError(nil, "malformed schema", err)
		}
		document = decoded
	} else if err := yaml.Unmarshal(payload, document); err != nil {
		return nil, span.NewError(nil, "malformed schema", err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, span.NewError(nil, "empty schema", nil)
	}

	root := resolve(document.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, span.NewError(nil, "schema root must be a mapping", nil)
	}

	// * extract top level keys
	schema := new(Schema)
	var views *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case KeyPackageName:
			if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
				return nil, span.NewError(nil, "packageName must be a string", nil)
			}
			schema.PackageName = value.Value
		case KeyViews:
			views = value
		}
	}

	if schema.PackageName == "" {
		return nil, span.NewError(nil, "packageName is required", nil)
	}
	if views == nil {
		return nil, span.NewError(nil, "views is required", nil)
	}

	// * convert view tree
	node, err := ParseNode(views)
	if err != nil {
		return nil, span.NewError(nil, "invalid views", err)
	}
	schema.Views = node

	return schema, nil
}
