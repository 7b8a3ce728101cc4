package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves(names ...string) *Sequence {
	items := make([]Node, 0, len(names))
	for _, name := range names {
		items = append(items, &Leaf{Name: name})
	}
	return &Sequence{Items: items}
}

func TestWalkLeaf(t *testing.T) {
	positions := Collect(&Leaf{Name: "Login"}, Root)

	require.Len(t, positions, 1)
	assert.Equal(t, &Position{Name: "Login", Path: "views"}, positions[0])
}

func TestWalkGroupAddsSegment(t *testing.T) {
	node := &Group{Entries: []*GroupEntry{
		{Directory: "dashboard", Node: leaves("Dashboard", "Settings")},
	}}

	positions := Collect(node, Root)

	assert.Equal(t, []*Position{
		{Name: "Dashboard", Path: "views/dashboard"},
		{Name: "Settings", Path: "views/dashboard"},
	}, positions)
}

func TestWalkSequenceKeepsPath(t *testing.T) {
	node := &Sequence{Items: []Node{
		&Leaf{Name: "Rooms"},
		&Sequence{Items: []Node{&Leaf{Name: "Nested"}}},
	}}

	positions := Collect(node, Root)

	assert.Equal(t, []*Position{
		{Name: "Rooms", Path: "views"},
		{Name: "Nested", Path: "views"},
	}, positions)
}

func TestWalkGroupInsideSequenceInsideGroup(t *testing.T) {
	node := &Group{Entries: []*GroupEntry{
		{Directory: "rooms", Node: &Sequence{Items: []Node{
			&Leaf{Name: "Rooms"},
			&Group{Entries: []*GroupEntry{
				{Directory: "setupbridge", Node: leaves("SetUpBridgeDiscover", "SetupBridgePickWiFi")},
			}},
		}}},
	}}

	positions := Collect(node, Root)

	assert.Equal(t, []*Position{
		{Name: "Rooms", Path: "views/rooms"},
		{Name: "SetUpBridgeDiscover", Path: "views/rooms/setupbridge"},
		{Name: "SetupBridgePickWiFi", Path: "views/rooms/setupbridge"},
	}, positions)
}

func TestWalkGroupEntriesKeepOrder(t *testing.T) {
	node := &Group{Entries: []*GroupEntry{
		{Directory: "b", Node: &Leaf{Name: "B"}},
		{Directory: "a", Node: &Leaf{Name: "A"}},
	}}

	positions := Collect(node, Root)

	require.Len(t, positions, 2)
	assert.Equal(t, "views/b", positions[0].Path)
	assert.Equal(t, "views/a", positions[1].Path)
}

func TestWalkNilNode(t *testing.T) {
	assert.Empty(t, Collect(nil, Root))
	assert.Empty(t, Collect(&Sequence{Items: []Node{nil}}, Root))
}

func TestWalkStopsOnVisitorError(t *testing.T) {
	failure := errors.New("disk full")
	visited := make([]string, 0)

	err := Walk(leaves("A", "B", "C"), Root, func(name string, path string) error {
		visited = append(visited, name)
		if name == "B" {
			return failure
		}
		return nil
	})

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, []string{"A", "B"}, visited)
}

func TestCollisions(t *testing.T) {
	positions := []*Position{
		{Name: "Settings", Path: "views/dashboard"},
		{Name: "Settings", Path: "views/rooms"},
		{Name: "Login", Path: "views"},
		{Name: "Login", Path: "views"},
		{Name: "login", Path: "views/shared"},
	}

	collisions := Collisions(positions)

	require.Len(t, collisions, 3)
	assert.Equal(t, CollisionLayout, collisions[0].Kind)
	assert.Equal(t, "settings", collisions[0].Key)
	assert.Len(t, collisions[0].Positions, 2)
	assert.Equal(t, CollisionLayout, collisions[1].Kind)
	assert.Equal(t, "login", collisions[1].Key)
	assert.Len(t, collisions[1].Positions, 3)
	assert.Equal(t, CollisionSource, collisions[2].Kind)
	assert.Equal(t, "views/Login", collisions[2].Key)
}

func TestCollisionsNone(t *testing.T) {
	assert.Empty(t, Collisions(Collect(leaves("A", "B"), Root)))
}
