// Package registry holds the analytic integrals declared for one model type
// and selects the best one for a requested region.
//
// A Registry is append-only. Model types create one at package level, fill it
// from init() and hand the same pointer to every instance, so the
// registrations are shared by all instances of that type.
//
// Selection rules, in order:
//  1. An entry is eligible when every axis it declares is part of the request
//     and its region covers the request on those axes.
//  2. The eligible entry covering the most axes wins.
//  3. Ties go to the higher priority, then to the earlier registration.
//
// Having no eligible entry is a normal outcome (SelectNone), not an error.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/space"
)

// DefaultPriority is the priority of RegisterDefault entries.
// Higher values win ties between entries covering the same number of axes.
const DefaultPriority = 50

var (
	// ErrNilFunc indicates a registration without an integral function.
	ErrNilFunc = errors.New("registry: nil integral function")

	// ErrNilRegion indicates a registration without an applicability region.
	ErrNilRegion = errors.New("registry: nil region")
)

// Params are the current parameter values of a model instance.
type Params map[string]float64

// Func computes a closed-form integral.
//
//   - limits is a single-interval region over the covered axes S.
//   - x carries one row per event with the coordinates of the model axes
//     outside S, in model order; it is nil when no such axis exists, in
//     which case exactly one value is returned.
//   - The result has one value per row of x.
type Func func(x *matrix.Dense, limits *space.Region, p Params) ([]float64, error)

// Entry is one registered analytic integral. Entries are never mutated.
type Entry struct {
	Axes     []int         // covered axes, declaration order
	Region   *space.Region // applicability domain (wildcards allowed)
	Priority int           // higher wins ties
	Index    int           // registration order, last-resort tie-break
	Func     Func
}

// Registry is the ordered collection of entries of one model type.
// Writes are expected at init time; the lock keeps late registrations safe.
type Registry struct {
	name    string
	mu      sync.RWMutex
	entries []Entry
}

// New returns an empty registry labelled with the owning model type name.
func New(name string) *Registry {
	return &Registry{name: name}
}

// Name returns the label given to New.
func (r *Registry) Name() string { return r.name }

// Register appends an entry covering region.Axes() with the given priority.
//
// Errors:
//   - ErrNilFunc, ErrNilRegion.
func (r *Registry) Register(fn Func, region *space.Region, priority int) error {
	if fn == nil {
		return fmt.Errorf("Register(%s): %w", r.name, ErrNilFunc)
	}
	if region == nil {
		return fmt.Errorf("Register(%s): %w", r.name, ErrNilRegion)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Axes:     region.Axes(),
		Region:   region,
		Priority: priority,
		Index:    len(r.entries),
		Func:     fn,
	})

	return nil
}

// RegisterDefault registers fn with DefaultPriority.
func (r *Registry) RegisterDefault(fn Func, region *space.Region) error {
	return r.Register(fn, region, DefaultPriority)
}

// MustRegister is Register for init-time declarations; it panics on error.
func (r *Registry) MustRegister(fn Func, region *space.Region, priority int) {
	if err := r.Register(fn, region, priority); err != nil {
		panic(err)
	}
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Entries returns a snapshot of all entries in registration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Entry(nil), r.entries...)
}

// candidate pairs an eligible entry with the axes it covers, in request order.
type candidate struct {
	axes  []int
	entry Entry
}

// rank collects eligible entries for request, best first.
// When exact is non-nil only entries declaring exactly that axis set qualify.
func (r *Registry) rank(request *space.Region, exact []int) []candidate {
	if r == nil || request == nil {
		return nil
	}
	reqAxes := request.Axes()

	var out []candidate
	for _, e := range r.Entries() {
		if exact != nil && !sameSet(e.Axes, exact) {
			continue
		}
		shared := intersect(reqAxes, e.Axes)
		if len(shared) == 0 || len(shared) != len(e.Axes) {
			continue // would integrate an axis the caller did not ask for
		}
		ok, err := space.Covers(e.Region, request, shared)
		if err != nil || !ok {
			continue
		}
		out = append(out, candidate{axes: shared, entry: e})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a.axes) != len(b.axes) {
			return len(a.axes) > len(b.axes)
		}
		if a.entry.Priority != b.entry.Priority {
			return a.entry.Priority > b.entry.Priority
		}

		return a.entry.Index < b.entry.Index
	})

	return out
}

// MaxAxes returns the largest axis subset of request (in request order)
// that some entry can integrate analytically, or an empty slice.
func (r *Registry) MaxAxes(request *space.Region) []int {
	ranked := r.rank(request, nil)
	if len(ranked) == 0 {
		return []int{}
	}

	return ranked[0].axes
}

// Find returns the winning entry among those declaring exactly axes.
func (r *Registry) Find(request *space.Region, axes []int) (Entry, bool) {
	if len(axes) == 0 {
		return Entry{}, false
	}
	ranked := r.rank(request, axes)
	if len(ranked) == 0 {
		return Entry{}, false
	}

	return ranked[0].entry, true
}

// intersect returns the elements of req that are also in decl, in req order.
func intersect(req, decl []int) []int {
	out := make([]int, 0, len(decl))
	for _, a := range req {
		for _, d := range decl {
			if a == d {
				out = append(out, a)
				break
			}
		}
	}

	return out
}

// sameSet reports set equality of two duplicate-free axis slices.
func sameSet(a, b []int) bool {
	return len(a) == len(b) && len(intersect(a, b)) == len(a)
}
