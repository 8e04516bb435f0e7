package physics

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxContacts is the most contact points a manifold holds. Extra candidates are dropped.
const MaxContacts = 4

// Contact is one world-space contact point and how deep it is.
type Contact struct {
	Point rl.Vector3
	Depth float32
}

// Manifold describes one pairwise overlap. Normal is unit length and points from
// Bodies[0] toward Bodies[1].
type Manifold struct {
	Normal       rl.Vector3
	Contacts     [MaxContacts]Contact
	ContactCount int
	Bodies       [2]*Rigidbody
}

// AddContact appends a contact, silently ignoring it once the manifold is full.
func (m *Manifold) AddContact(point rl.Vector3, depth float32) bool {
	if m.ContactCount >= MaxContacts {
		return false
	}
	m.Contacts[m.ContactCount] = Contact{Point: point, Depth: depth}
	m.ContactCount++
	return true
}

// Points returns the filled contacts.
func (m *Manifold) Points() []Contact {
	return m.Contacts[:m.ContactCount]
}

// MaxDepth returns the deepest contact's penetration.
func (m *Manifold) MaxDepth() float32 {
	var d float32
	for _, c := range m.Points() {
		if c.Depth > d {
			d = c.Depth
		}
	}
	return d
}

// flip re-expresses the manifold with the bodies swapped, keeping the normal
// pointing from Bodies[0] to Bodies[1].
func (m *Manifold) flip() {
	m.Bodies[0], m.Bodies[1] = m.Bodies[1], m.Bodies[0]
	m.Normal = rl.Vector3Scale(m.Normal, -1)
}

func (m *Manifold) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v -> %v normal=(%.3f, %.3f, %.3f)", m.Bodies[0], m.Bodies[1], m.Normal.X, m.Normal.Y, m.Normal.Z)
	for _, c := range m.Points() {
		fmt.Fprintf(&b, " [(%.3f, %.3f, %.3f) depth=%.4f]", c.Point.X, c.Point.Y, c.Point.Z, c.Depth)
	}
	return b.String()
}
