package physics

import (
	"fmt"
	"log"
	"math/bits"
	"unsafe"

	"collide3d/internal/geometry"
)

// Pair is an unordered pair of bodies, stored with the lower address first.
type Pair struct {
	A, B *Rigidbody
}

// makePair creates a consistent collision pair (smaller pointer first)
func makePair(a, b *Rigidbody) Pair {
	if uintptr(unsafe.Pointer(a)) > uintptr(unsafe.Pointer(b)) {
		return Pair{A: b, B: a}
	}
	return Pair{A: a, B: b}
}

// CollisionListener is told when two bodies start and stop touching.
type CollisionListener interface {
	OnCollisionEnter(a, b *Rigidbody)
	OnCollisionExit(a, b *Rigidbody)
}

// Stats describes the last Step.
type Stats struct {
	PairsTested  int
	PairsSkipped int
	Manifolds    int
	Colliding    int
}

// Detector runs the narrow phase once per tick over a caller-supplied body list.
// Not safe for concurrent use.
type Detector struct {
	table    *DispatchTable
	registry *Registry
	listener CollisionListener
	stats    Stats

	// Collision tracking for callbacks
	active  map[Pair]bool // pairs touching last tick
	current map[Pair]bool // pairs touching this tick

	highWater int // largest manifold count seen, for logging
}

// NewDetector builds the dispatch table and rejects it if any cell is empty.
func NewDetector() (*Detector, error) {
	return newDetector(NewDispatchTable())
}

func newDetector(table *DispatchTable) (*Detector, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("dispatch table: %w", err)
	}
	log.Printf("Physics: narrow phase ready (%d shape kinds)", geometry.NumKinds)
	return &Detector{
		table:    table,
		registry: NewRegistry(),
		active:   make(map[Pair]bool),
		current:  make(map[Pair]bool),
	}, nil
}

// SetListener installs the enter/exit callback target. nil disables callbacks.
func (d *Detector) SetListener(l CollisionListener) {
	d.listener = l
}

// Step clears the registry and tests every unordered pair of bodies with colliders.
// Pairs where both bodies are immovable, or both asleep, are skipped. It returns the
// number of manifolds produced; read them through Registry.
func (d *Detector) Step(bodies []*Rigidbody) int {
	d.registry.Reset()
	d.stats = Stats{}
	d.current = make(map[Pair]bool, len(d.active))

	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		if a == nil || a.Collider == nil {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if b == nil || b.Collider == nil {
				continue
			}
			if (a.Immovable && b.Immovable) || (!a.IsAwake && !b.IsAwake) {
				d.stats.PairsSkipped++
				continue
			}

			d.stats.PairsTested++
			if d.table.Collide(a, b, d.registry) {
				d.current[makePair(a, b)] = true
			}
		}
	}

	d.stats.Manifolds = d.registry.Count()
	d.stats.Colliding = len(d.current)
	d.logHighWater()
	d.dispatchCollisionCallbacks()
	return d.stats.Manifolds
}

// logHighWater logs when the manifold count reaches a new power of two.
func (d *Detector) logHighWater() {
	n := d.registry.Count()
	if n <= d.highWater {
		return
	}
	if bits.Len(uint(n)) > bits.Len(uint(d.highWater)) {
		log.Printf("Physics: %d manifolds in one tick (%d pairs tested)", n, d.stats.PairsTested)
	}
	d.highWater = n
}

// dispatchCollisionCallbacks sends enter/exit notifications and rolls this tick's
// pairs over to the next.
func (d *Detector) dispatchCollisionCallbacks() {
	if d.listener != nil {
		for pair := range d.current {
			if !d.active[pair] {
				d.listener.OnCollisionEnter(pair.A, pair.B)
			}
		}
		for pair := range d.active {
			if !d.current[pair] {
				d.listener.OnCollisionExit(pair.A, pair.B)
			}
		}
	}
	d.active = d.current
}

// Registry holds the manifolds of the last Step. They stay valid until the next Step.
func (d *Detector) Registry() *Registry {
	return d.registry
}

// Table exposes the detector's dispatch table.
func (d *Detector) Table() *DispatchTable {
	return d.table
}

func (d *Detector) Stats() Stats {
	return d.stats
}

// Touching reports whether a and b produced a manifold in the last Step.
func (d *Detector) Touching(a, b *Rigidbody) bool {
	return d.active[makePair(a, b)]
}
