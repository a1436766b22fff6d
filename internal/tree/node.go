// Package tree defines the generated node types and builds random trees.
package tree

// Node is implemented by both RootNode and ChildNode.
type Node interface {
	GetName() string
	GetTitle() string
	GetChildren() []*ChildNode
	AddChild(c *ChildNode)
}

// RootNode is the single entry point of a tree.
// Field order is the serialized key order: name, children, title.
type RootNode struct {
	Name     string       `json:"name"`
	Children []*ChildNode `json:"children"`
	Title    string       `json:"title"`
}

// ChildNode is every node below the root.
// Field order is the serialized key order: name, title, children.
type ChildNode struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Children []*ChildNode `json:"children"`
}

// NewRoot returns a root with an empty, non-nil children list.
func NewRoot(name, title string) *RootNode {
	return &RootNode{Name: name, Children: []*ChildNode{}, Title: title}
}

// NewChild returns a child with an empty, non-nil children list.
func NewChild(name, title string) *ChildNode {
	return &ChildNode{Name: name, Title: title, Children: []*ChildNode{}}
}

func (r *RootNode) GetName() string           { return r.Name }
func (r *RootNode) GetTitle() string          { return r.Title }
func (r *RootNode) GetChildren() []*ChildNode { return r.Children }
func (r *RootNode) AddChild(c *ChildNode)     { r.Children = append(r.Children, c) }

func (c *ChildNode) GetName() string           { return c.Name }
func (c *ChildNode) GetTitle() string          { return c.Title }
func (c *ChildNode) GetChildren() []*ChildNode { return c.Children }
func (c *ChildNode) AddChild(n *ChildNode)     { c.Children = append(c.Children, n) }
