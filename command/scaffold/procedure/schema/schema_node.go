package schema

import (
	"fmt"

	"go.scnd.dev/open/scaffold/command/scaffold/procedure/tree"
	"go.scnd.dev/open/scaffold/package/span"
	"gopkg.in/yaml.v3"
)

// ParseNode converts a decoded yaml node into a view tree. Scalars that are not
// strings yield a nil node and are skipped by the walker.
func ParseNode(node *yaml.Node) (tree.Node, error) {
	node = resolve(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			return nil, nil
		}
		if node.Value == "" {
			return nil, span.NewError(nil, fmt.Sprintf("empty view name at line %d", node.Line), nil)
		}
		return &tree.Leaf{Name: node.Value}, nil

	case yaml.SequenceNode:
		sequence := &tree.Sequence{Items: make([]tree.Node, 0, len(node.Content))}
		for _, item := range node.Content {
			child, err := ParseNode(item)
			if err != nil {
				return nil, err
			}
			if child != nil {
				sequence.Items = append(sequence.Items, child)
			}
		}
		return sequence, nil

	case yaml.MappingNode:
		// * a repeated key keeps its first position and its last value
		entries := make([]*tree.GroupEntry, 0, len(node.Content)/2)
		indices := make(map[string]int)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := resolve(node.Content[i])
			if key.Kind != yaml.ScalarNode || key.Value == "" {
				return nil, span.NewError(nil, fmt.Sprintf("invalid directory name at line %d", key.Line), nil)
			}
			child, err := ParseNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			if index, ok := indices[key.Value]; ok {
				entries[index].Node = child
				continue
			}
			indices[key.Value] = len(entries)
			entries = append(entries, &tree.GroupEntry{
				Directory: key.Value,
				Node:      child,
			})
		}

		// * drop entries whose value is not a view tree
		group := &tree.Group{Entries: make([]*tree.GroupEntry, 0, len(entries))}
		for _, entry := range entries {
			if entry.Node != nil {
				group.Entries = append(group.Entries, entry)
			}
		}
		return group, nil
	}

	return nil, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
