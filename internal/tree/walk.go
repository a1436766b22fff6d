package tree

// Walk visits n and its descendants in pre-order. The root passed in has depth 0.
func Walk(n Node, fn func(n Node, depth int)) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	fn(n, depth)
	for _, c := range n.GetChildren() {
		walk(c, depth+1, fn)
	}
}

// Summary describes the shape of a tree.
type Summary struct {
	Nodes     int // including the root
	Leaves    int
	Depth     int // edges on the longest root-to-leaf path
	MaxFanout int
}

// Stats computes a Summary for the tree under n.
func Stats(n Node) Summary {
	var s Summary
	Walk(n, func(n Node, depth int) {
		s.Nodes++
		kids := len(n.GetChildren())
		if kids == 0 {
			s.Leaves++
		}
		if kids > s.MaxFanout {
			s.MaxFanout = kids
		}
		if depth > s.Depth {
			s.Depth = depth
		}
	})
	return s
}
