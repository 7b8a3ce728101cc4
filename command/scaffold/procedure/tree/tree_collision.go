package tree

import (
	"go.scnd.dev/open/scaffold/utility/form"
)

// Collision lists positions that resolve to the same output file. The last one wins.
type Collision struct {
	Kind      CollisionKind
	Key       string
	Positions []*Position
}

func Collisions(positions []*Position) []*Collision {
	collisions := make([]*Collision, 0)
	collisions = append(collisions, collide(CollisionLayout, positions, func(position *Position) string {
		return form.ToLower(position.Name)
	})...)
	collisions = append(collisions, collide(CollisionSource, positions, func(position *Position) string {
		return position.Path + "/" + position.Name
	})...)

	return collisions
}

func collide(kind CollisionKind, positions []*Position, key func(*Position) string) []*Collision {
	// * group positions by key, keeping first-seen order
	keys := make([]string, 0)
	groups := make(map[string][]*Position)
	for _, position := range positions {
		k := key(position)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], position)
	}

	collisions := make([]*Collision, 0)
	for _, k := range keys {
		if len(groups[k]) < 2 {
			continue
		}
		collisions = append(collisions, &Collision{
			Kind:      kind,
			Key:       k,
			Positions: groups[k],
		})
	}

	return collisions
}
