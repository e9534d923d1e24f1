// Package registry holds the ordered set of anti-pattern sniffers that the
// block validator runs before accepting a candidate NOTAM block.
package registry

import (
	"sort"
	"sync"
)

// Verdict is a sniffer's reason for rejecting a block.
type Verdict struct {
	Sniffer    string  `json:"sniffer"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// Sniffer is implemented by each anti-pattern detector.
type Sniffer interface {
	// Name returns the sniffer's unique identifier.
	Name() string

	// QuickCheck performs a fast string check before expensive regex.
	// Returns true if the block MIGHT be noise (false = definitely skip).
	QuickCheck(text string) bool

	// Priority determines run order. Lower number = checked first.
	Priority() int

	// Sniff inspects the block and returns a verdict if it is not a NOTAM.
	Sniff(text string) *Verdict
}

// Registry holds registered sniffers in priority order.
type Registry struct {
	mu       sync.RWMutex
	sniffers []Sniffer
	sorted   bool
}

// New creates a new Registry instance.
func New(sniffers ...Sniffer) *Registry {
	r := &Registry{}
	for _, s := range sniffers {
		r.Register(s)
	}
	return r
}

// Global default registry.
var defaultRegistry = New()

// Default returns the global registry instance.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a sniffer to the default registry.
// Called during init() in each sniffer package.
func Register(s Sniffer) {
	defaultRegistry.Register(s)
}

// Register adds a sniffer. A sniffer with the same name replaces the old one.
func (r *Registry) Register(s Sniffer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.sniffers {
		if existing.Name() == s.Name() {
			r.sniffers[i] = s
			r.sorted = false
			return
		}
	}
	r.sniffers = append(r.sniffers, s)
	r.sorted = false
}

func (r *Registry) sortLocked() {
	if r.sorted {
		return
	}
	sort.SliceStable(r.sniffers, func(i, j int) bool {
		return r.sniffers[i].Priority() < r.sniffers[j].Priority()
	})
	r.sorted = true
}

// ordered returns a priority-ordered snapshot of the sniffers.
func (r *Registry) ordered() []Sniffer {
	r.mu.RLock()
	if r.sorted {
		out := append([]Sniffer(nil), r.sniffers...)
		r.mu.RUnlock()
		return out
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortLocked()
	return append([]Sniffer(nil), r.sniffers...)
}

// Dispatch runs sniffers in priority order and returns the first verdict,
// or nil when every sniffer passes the block.
func (r *Registry) Dispatch(text string) *Verdict {
	for _, s := range r.ordered() {
		if !s.QuickCheck(text) {
			continue
		}
		if v := s.Sniff(text); v != nil {
			if v.Sniffer == "" {
				v.Sniffer = s.Name()
			}
			return v
		}
	}
	return nil
}

// Count returns the number of registered sniffers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sniffers)
}
