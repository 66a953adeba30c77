package registry

import "github.com/katalvlaran/integral/space"

// SelectionKind tags the outcome of Select.
type SelectionKind int

const (
	// SelectNone: no entry covers any axis; integrate numerically.
	SelectNone SelectionKind = iota

	// SelectPartial: an entry covers a strict, non-empty subset of the axes.
	SelectPartial

	// SelectFull: an entry covers every requested axis.
	SelectFull
)

// String returns a lowercase label suitable for logs and metric labels.
func (k SelectionKind) String() string {
	switch k {
	case SelectFull:
		return "full"
	case SelectPartial:
		return "partial"
	default:
		return "none"
	}
}

// Selection is the tagged result of Select. Axes and Entry are empty for SelectNone.
type Selection struct {
	Kind  SelectionKind
	Axes  []int // covered axes, request order
	Entry Entry
}

// Select runs MaxAxes followed by Find and tags the result.
// Repeated calls with the same registry and request return the same entry.
func (r *Registry) Select(request *space.Region) Selection {
	axes := r.MaxAxes(request)
	if len(axes) == 0 {
		return Selection{Kind: SelectNone}
	}
	entry, ok := r.Find(request, axes)
	if !ok {
		return Selection{Kind: SelectNone}
	}
	kind := SelectPartial
	if len(axes) == request.NumAxes() {
		kind = SelectFull
	}

	return Selection{Kind: kind, Axes: axes, Entry: entry}
}
