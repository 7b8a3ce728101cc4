package tree

const Root = "views"

// Visitor receives every leaf in traversal order. Returning an error stops the walk.
type Visitor func(name string, path string) error

func Walk(node Node, path string, visit Visitor) error {
	switch n := node.(type) {
	case *Leaf:
		return visit(n.Name, path)
	case *Sequence:
		for _, item := range n.Items {
			if err := Walk(item, path, visit); err != nil {
				return err
			}
		}
	case *Group:
		for _, entry := range n.Entries {
			if err := Walk(entry.Node, path+"/"+entry.Directory, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

func Collect(node Node, path string) []*Position {
	positions := make([]*Position, 0)
	_ = Walk(node, path, func(name string, path string) error {
		positions = append(positions, &Position{
			Name: name,
			Path: path,
		})
		return nil
	})

	return positions
}
