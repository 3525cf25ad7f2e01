package catalog

import "github.com/siremms300/jubian-admin-gateway/models"

// Node is one category in the indexed tree. Children holds ordered child ids;
// a node without children holds an empty slice, never nil, so callers can
// range without guarding.
type Node struct {
	ID       string
	Name     string
	Status   string
	Children []string
}

// Tree is a flat arena of nodes keyed by id, built once from a hierarchy
// response. The nested subcategories shape of the upstream payload is only
// valid at index time; afterwards every lookup goes through the arena.
type Tree struct {
	nodes map[string]*Node
	roots []string
}

// NewTree indexes a hierarchy response. A category whose subcategories field
// was absent indexes identically to one with an empty list.
func NewTree(roots []models.Category) *Tree {
	t := &Tree{nodes: make(map[string]*Node)}
	for _, c := range roots {
		t.roots = append(t.roots, c.ID)
		t.index(c)
	}
	return t
}

func (t *Tree) index(c models.Category) {
	node := &Node{
		ID:       c.ID,
		Name:     c.Name,
		Status:   c.Status,
		Children: make([]string, 0, len(c.Subcategories)),
	}
	for _, child := range c.Subcategories {
		node.Children = append(node.Children, child.ID)
		t.index(child)
	}
	t.nodes[c.ID] = node
}

// Node looks up a category by id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Roots returns the root-level nodes in response order.
func (t *Tree) Roots() []*Node {
	return t.resolve(t.roots)
}

// ChildrenOf returns the ordered children of id. Unknown ids and leaves both
// yield an empty slice.
func (t *Tree) ChildrenOf(id string) []*Node {
	n, ok := t.nodes[id]
	if !ok {
		return []*Node{}
	}
	return t.resolve(n.Children)
}

func (t *Tree) resolve(ids []string) []*Node {
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := t.nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Len reports the number of indexed nodes across all levels.
func (t *Tree) Len() int {
	return len(t.nodes)
}
