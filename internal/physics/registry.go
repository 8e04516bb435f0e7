package physics

// registryChunkSize is how many manifolds each arena chunk holds.
const registryChunkSize = 64

// Registry owns the manifolds produced during one tick. Storage is a list of
// fixed-size chunks that are never moved, so a *Manifold returned by Generate
// stays valid until the next Reset. Not safe for concurrent use.
type Registry struct {
	chunks []*[registryChunkSize]Manifold
	count  int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Generate returns a zeroed manifold for the pair a, b.
func (r *Registry) Generate(a, b *Rigidbody) *Manifold {
	chunk := r.count / registryChunkSize
	if chunk == len(r.chunks) {
		r.chunks = append(r.chunks, new([registryChunkSize]Manifold))
	}
	m := &r.chunks[chunk][r.count%registryChunkSize]
	*m = Manifold{Bodies: [2]*Rigidbody{a, b}}
	r.count++
	return m
}

// Count is the number of manifolds generated since the last Reset.
func (r *Registry) Count() int {
	return r.count
}

// At returns the i-th manifold of this tick.
func (r *Registry) At(i int) *Manifold {
	if i < 0 || i >= r.count {
		panic("physics: registry index out of range")
	}
	return &r.chunks[i/registryChunkSize][i%registryChunkSize]
}

// Manifolds lists this tick's manifolds in generation order.
func (r *Registry) Manifolds() []*Manifold {
	out := make([]*Manifold, r.count)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Reset logically empties the registry. Chunks are kept for the next tick.
func (r *Registry) Reset() {
	r.count = 0
}

// truncate drops manifolds generated after the first n.
func (r *Registry) truncate(n int) {
	if n < r.count {
		r.count = n
	}
}
