package slides

// Navigator is a cursor over a deck of a fixed size. Movement is clamped to
// the deck bounds; it never wraps around.
type Navigator struct {
	index int
	size  int
}

// NewNavigator returns a navigator positioned on the first of size slides.
func NewNavigator(size int) *Navigator {
	if size < 0 {
		size = 0
	}
	return &Navigator{size: size}
}

// Next advances one slide unless already on the last one.
func (n *Navigator) Next() int {
	return n.Go(n.index + 1)
}

// Prev steps back one slide unless already on the first one.
func (n *Navigator) Prev() int {
	return n.Go(n.index - 1)
}

// Go jumps to idx, clamped into range, and returns the resulting index.
func (n *Navigator) Go(idx int) int {
	switch {
	case n.size == 0 || idx < 0:
		idx = 0
	case idx >= n.size:
		idx = n.size - 1
	}
	n.index = idx
	return n.index
}

func (n *Navigator) Index() int { return n.index }
func (n *Navigator) Len() int { return n.size }
func (n *Navigator) First() bool { return n.index == 0 }

func (n *Navigator) Last() bool {
	return n.size == 0 || n.index == n.size-1
}
