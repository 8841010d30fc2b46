package rootbench

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexshd/rootbench/testfunc"
)

// Entry is a named target function with what the solvers may need about it.
type Entry struct {
	Name        string
	Description string
	F           Function
	DF          Function    // Derivative; nil if not known
	Big         BigFunction // Arbitrary-precision form; nil if not available
	Roots       []float64   // Known roots, for reporting errors
}

// Registry maps names to target functions. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register adds or replaces an entry.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = e
}

// Lookup returns the entry called name, or an error wrapping ErrUnknownFunction.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (have: %v)", ErrUnknownFunction, name, r.namesLocked())
	}
	return e, nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns the standard test functions.
func Builtins() []Entry {
	return []Entry{
		{
			Name:        "identity",
			Description: "x",
			F:           Func(testfunc.Identity),
			DF:          Func(testfunc.IdentityDeriv),
			Big:         testfunc.IdentityBig,
			Roots:       []float64{testfunc.IdentityRoot},
		},
		{
			Name:        "polynom",
			Description: "x^3 - 8.5x^2 + 20x - 8",
			F:           Func(testfunc.Polynom),
			DF:          Func(testfunc.PolynomDeriv),
			Big:         testfunc.PolynomBig,
			Roots:       []float64{testfunc.PolynomRoot, testfunc.PolynomRoot2},
		},
		{
			Name:        "trig",
			Description: "2x - 3sin(x) + 5",
			F:           Func(testfunc.Trig),
			DF:          Func(testfunc.TrigDeriv),
			Roots:       []float64{testfunc.TrigRoot},
		},
		{
			Name:        "exp",
			Description: "e^x - 2",
			F:           Func(testfunc.Exp),
			DF:          Func(testfunc.ExpDeriv),
			Big:         testfunc.ExpBig,
			Roots:       []float64{testfunc.ExpRoot},
		},
	}
}

// Default registry, pre-loaded with Builtins.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range Builtins() {
		r.Register(e)
	}
	return r
}

// DefaultRegistry returns the registry behind the package-level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds to the default registry.
func Register(e Entry) {
	defaultRegistry.Register(e)
}

// Lookup searches the default registry.
func Lookup(name string) (Entry, error) {
	return defaultRegistry.Lookup(name)
}

// Names lists the default registry.
func Names() []string {
	return defaultRegistry.Names()
}
