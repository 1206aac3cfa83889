// Package identity allocates the human-readable record identifiers shown at the front desk.
package identity

import (
	"strconv"
	"sync"
)

// Prefix identifies an entity class.
type Prefix string

const (
	PatientPrefix         Prefix = "P"
	ConsultationPrefix    Prefix = "C"
	SymptomAnalysisPrefix Prefix = "SA"
)

var bases = map[Prefix]int{
	PatientPrefix:         1000,
	ConsultationPrefix:    2000,
	SymptomAnalysisPrefix: 3000,
}

// Allocator hands out "<prefix><base+n>" identifiers, n counting earlier allocations for the
// same prefix. Sequence numbers are never reused for the lifetime of the Allocator.
type Allocator struct {
	mu     sync.Mutex
	issued map[Prefix]int
}

// NewAllocator creates an Allocator with all counters at zero.
func NewAllocator() *Allocator {
	return &Allocator{issued: make(map[Prefix]int)}
}

// Next returns the next identifier for prefix. Unknown prefixes start at zero.
func (a *Allocator) Next(prefix Prefix) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	seq := bases[prefix] + a.issued[prefix]
	a.issued[prefix]++
	return string(prefix) + strconv.Itoa(seq)
}

// issuedFor returns how many identifiers have been allocated for prefix.
func (a *Allocator) issuedFor(prefix Prefix) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.issued[prefix]
}
