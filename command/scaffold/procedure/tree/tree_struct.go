package tree

// Node is one of Leaf, Sequence or Group.
type Node interface {
	node()
}

// Leaf is a single view name.
type Leaf struct {
	Name string
}

// Sequence holds siblings that share the current output path.
type Sequence struct {
	Items []Node
}

// Group introduces one path segment per entry, in document order.
type Group struct {
	Entries []*GroupEntry
}

type GroupEntry struct {
	Directory string
	Node      Node
}

func (*Leaf) node()     {}
func (*Sequence) node() {}
func (*Group) node()    {}

// Position is a leaf together with the output path it resolves to.
type Position struct {
	Name string
	Path string
}
