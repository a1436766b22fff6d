package tree

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NielsdaWheelz/maketree/internal/config"
	"github.com/NielsdaWheelz/maketree/internal/core"
)

// scriptedSource replays fixed draws.
type scriptedSource struct {
	t      *testing.T
	values []int
}

func (s *scriptedSource) IntRange(lo, hi int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("scriptedSource exhausted drawing [%d, %d]", lo, hi)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < lo || v > hi {
		s.t.Fatalf("scripted value %d outside [%d, %d]", v, lo, hi)
	}
	return v
}

// maxSource always returns the top of the range.
type maxSource struct{}

func (maxSource) IntRange(lo, hi int) int { return hi }

// nameDraws returns the draws NewName consumes to produce s.
func nameDraws(s string) []int {
	draws := []int{len(s)}
	for _, r := range s {
		draws = append(draws, int(r-'a'))
	}
	return draws
}

func script(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestBuild_Scripted(t *testing.T) {
	opts := config.Defaults()
	opts.Levels = 2

	src := &scriptedSource{t: t, values: script(
		nameDraws("rootname"), nameDraws("roottitle"),
		// level 0: root expands into two children
		[]int{41, 2},
		nameDraws("alpha"), nameDraws("alphat"),
		nameDraws("bravo"), nameDraws("bravot"),
		// level 1: alpha stays a leaf (40 is not > 40), bravo gets one child
		[]int{40},
		[]int{100, 1},
		nameDraws("charlie"), nameDraws("charliet"),
		// level 2 is never reached: charlie is not drawn for
	)}

	got := Build(src, opts)

	want := &RootNode{
		Name:  "rootname",
		Title: "roottitle",
		Children: []*ChildNode{
			{Name: "alpha", Title: "alphat", Children: []*ChildNode{}},
			{Name: "bravo", Title: "bravot", Children: []*ChildNode{
				{Name: "charlie", Title: "charliet", Children: []*ChildNode{}},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
	if len(src.values) != 0 {
		t.Errorf("%d scripted draws left unused", len(src.values))
	}
}

func TestBuild_ZeroChildCountLeavesLeaf(t *testing.T) {
	opts := config.Defaults()
	opts.Levels = 3

	src := &scriptedSource{t: t, values: script(
		nameDraws("rootname"), nameDraws("roottitle"),
		[]int{99, 0}, // expand, but with zero children
	)}

	got := Build(src, opts)
	if len(got.Children) != 0 {
		t.Errorf("root has %d children, want 0", len(got.Children))
	}
	if got.Children == nil {
		t.Error("root children should be an empty list, not nil")
	}
	if len(src.values) != 0 {
		t.Errorf("%d scripted draws left unused", len(src.values))
	}
}

func TestBuild_DepthBoundedByLevels(t *testing.T) {
	opts := config.Defaults()
	opts.MaxChildren = 1

	got := Build(maxSource{}, opts)

	s := Stats(got)
	if s.Depth != opts.Levels {
		t.Errorf("Depth = %d, want %d", s.Depth, opts.Levels)
	}
	if s.Nodes != opts.Levels+1 {
		t.Errorf("Nodes = %d, want %d", s.Nodes, opts.Levels+1)
	}
	if s.Leaves != 1 {
		t.Errorf("Leaves = %d, want 1", s.Leaves)
	}
	if got.Name != "zzzzzzzzzz" {
		t.Errorf("root name = %q, want ten z's", got.Name)
	}
}

func TestBuild_ZeroLevels(t *testing.T) {
	opts := config.Defaults()
	opts.Levels = 0

	src := &scriptedSource{t: t, values: script(nameDraws("rootname"), nameDraws("roottitle"))}
	got := Build(src, opts)

	if got.Name != "rootname" || got.Title != "roottitle" {
		t.Errorf("root = %q/%q, want rootname/roottitle", got.Name, got.Title)
	}
	if len(got.Children) != 0 {
		t.Errorf("root has %d children, want 0", len(got.Children))
	}
}

func TestBuild_Properties(t *testing.T) {
	namePattern := regexp.MustCompile(`^[a-z]{5,10}$`)
	opts := config.Defaults()

	for seed := int64(1); seed <= 200; seed++ {
		root := Build(core.NewSource(seed), opts)

		Walk(root, func(n Node, depth int) {
			if depth > opts.Levels {
				t.Fatalf("seed %d: node at depth %d > %d", seed, depth, opts.Levels)
			}
			if !namePattern.MatchString(n.GetName()) {
				t.Fatalf("seed %d: name %q does not match %s", seed, n.GetName(), namePattern)
			}
			if !namePattern.MatchString(n.GetTitle()) {
				t.Fatalf("seed %d: title %q does not match %s", seed, n.GetTitle(), namePattern)
			}
			kids := n.GetChildren()
			if kids == nil {
				t.Fatalf("seed %d: nil children at depth %d", seed, depth)
			}
			if len(kids) > opts.MaxChildren {
				t.Fatalf("seed %d: %d children > %d", seed, len(kids), opts.MaxChildren)
			}
			if depth == opts.Levels && len(kids) != 0 {
				t.Fatalf("seed %d: node at the last level has %d children", seed, len(kids))
			}
		})
	}
}

func TestBuild_SameSeedSameTree(t *testing.T) {
	opts := config.Defaults()
	a := Build(core.NewSource(2024), opts)
	b := Build(core.NewSource(2024), opts)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different trees (-a +b):\n%s", diff)
	}
}
