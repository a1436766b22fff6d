package tree

import (
	"github.com/NielsdaWheelz/maketree/internal/config"
	"github.com/NielsdaWheelz/maketree/internal/core"
)

// Build grows a random tree from src, one level per round.
//
// Each round walks the nodes created in the previous round (the frontier). A
// node is expanded when a draw in [0, BranchDrawMax] exceeds BranchCutoff; it
// then gets a drawn number of children in [0, MaxChildren], each named with a
// name draw followed by a title draw. Nodes created in the last round are never
// expanded, so the depth is at most opts.Levels.
//
// opts must have passed config.Validate.
func Build(src core.Source, opts config.Options) *RootNode {
	newName := func() string {
		return core.NewName(src, opts.NameMinLen, opts.NameMaxLen)
	}

	name := newName()
	root := NewRoot(name, newName())

	frontier := []Node{root}
	for level := 0; level < opts.Levels && len(frontier) > 0; level++ {
		var next []Node
		for _, n := range frontier {
			if src.IntRange(0, opts.BranchDrawMax) <= opts.BranchCutoff {
				continue
			}
			k := src.IntRange(0, opts.MaxChildren)
			for i := 0; i < k; i++ {
				childName := newName()
				child := NewChild(childName, newName())
				n.AddChild(child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	return root
}
