package node

// DisplayList is the ordered set of nodes a scene renders.
// Later nodes draw above earlier ones.
type DisplayList struct {
	nodes  []Node
	nextID ID
}

// NewDisplayList creates an empty display list
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// NextID reserves an id for a node that is about to be added
func (l *DisplayList) NextID() ID {
	l.nextID++
	return l.nextID
}

// Add appends a node on top of the list
func (l *DisplayList) Add(n Node) {
	l.nodes = append(l.nodes, n)
}

// Len returns the number of live nodes
func (l *DisplayList) Len() int {
	count := 0
	for _, n := range l.nodes {
		if !n.Destroyed() {
			count++
		}
	}
	return count
}

// All returns the live nodes in draw order
func (l *DisplayList) All() []Node {
	out := make([]Node, 0, len(l.nodes))
	for _, n := range l.nodes {
		if !n.Destroyed() {
			out = append(out, n)
		}
	}
	return out
}

// Images returns the live image nodes in draw order
func (l *DisplayList) Images() []*Image {
	var out []*Image
	for _, n := range l.nodes {
		if img, ok := n.(*Image); ok && !img.Destroyed() {
			out = append(out, img)
		}
	}
	return out
}

// Texts returns the live text nodes in draw order
func (l *DisplayList) Texts() []*Text {
	var out []*Text
	for _, n := range l.nodes {
		if txt, ok := n.(*Text); ok && !txt.Destroyed() {
			out = append(out, txt)
		}
	}
	return out
}

// TopmostAt returns the highest visible interactive node under the point, or nil.
func (l *DisplayList) TopmostAt(x, y float64) Node {
	hits := l.InteractiveAt(x, y)
	if len(hits) == 0 {
		return nil
	}
	return hits[0]
}

// InteractiveAt returns every visible interactive node under the point, topmost first.
func (l *DisplayList) InteractiveAt(x, y float64) []Node {
	var hits []Node
	for i := len(l.nodes) - 1; i >= 0; i-- {
		n := l.nodes[i]
		if n.Destroyed() || !n.Visible() || !n.Interactive() {
			continue
		}
		if n.Bounds().Contains(x, y) {
			hits = append(hits, n)
		}
	}
	return hits
}

// Prune drops destroyed nodes from the list
func (l *DisplayList) Prune() {
	kept := l.nodes[:0]
	for _, n := range l.nodes {
		if !n.Destroyed() {
			kept = append(kept, n)
		}
	}
	for i := len(kept); i < len(l.nodes); i++ {
		l.nodes[i] = nil
	}
	l.nodes = kept
}

// DestroyAll destroys every node, topmost first, and empties the list
func (l *DisplayList) DestroyAll() {
	for i := len(l.nodes) - 1; i >= 0; i-- {
		l.nodes[i].Destroy()
	}
	l.nodes = nil
}
