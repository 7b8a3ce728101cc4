package tree

type CollisionKind string

const (
	CollisionLayout CollisionKind = "layout"
	CollisionSource CollisionKind = "source"
)
