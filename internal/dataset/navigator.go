package dataset

import "fmt"

// Navigator resolves navigation intents against a fixed catalog. Position
// state is owned by the caller; every method takes the position it moves
// from and returns the clamped result inside the View.
type Navigator struct {
	catalog  Catalog
	resolver *Resolver
}

// View is the observable result of one navigation event.
type View struct {
	Sample   Sample
	ID       string
	Index    int
	Position string // 1-based "current / total"
}

// NewNavigator creates a navigator over the given catalog. The resolver may
// be nil only when the catalog is empty.
func NewNavigator(catalog Catalog, resolver *Resolver) *Navigator {
	return &Navigator{catalog: catalog, resolver: resolver}
}

// Load resolves the sample at the clamped index. On an empty catalog it
// returns the degenerate view instead of failing.
func (n *Navigator) Load(index int) View {
	total := n.catalog.Len()
	if total == 0 {
		return View{Sample: EmptySample(), Position: "0/0"}
	}

	idx := clamp(index, 0, total-1)
	id := n.catalog.At(idx)
	return View{
		Sample:   n.resolver.Resolve(id),
		ID:       id,
		Index:    idx,
		Position: fmt.Sprintf("%d / %d", idx+1, total),
	}
}

// Previous steps back one sample, staying put at the lower boundary.
func (n *Navigator) Previous(index int) View {
	return n.Load(index - 1)
}

// Next steps forward one sample, staying put at the upper boundary.
func (n *Navigator) Next(index int) View {
	return n.Load(index + 1)
}

// SelectID jumps to the named sample, falling back to the first sample when
// the id is not in the catalog.
func (n *Navigator) SelectID(id string) View {
	if idx, ok := n.catalog.IndexOf(id); ok {
		return n.Load(idx)
	}
	return n.Load(0)
}

// SelectIndex jumps to the clamped index.
func (n *Navigator) SelectIndex(index int) View {
	return n.Load(index)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
