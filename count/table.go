package count

import (
	"fmt"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"

	"github.com/benbjohnson/immutable"
)

// Key is a tuple of graph vertices indexing the dynamic programming table.
type Key []graph.Vertex

func (k Key) Hash() uint32 {
	return utils.HashInts(k...)
}

func (k Key) Equal(o Key) bool {
	if len(k) != len(o) {
		return false
	}
	for i := range k {
		if k[i] != o[i] {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	return utils.IntsString(k, utils.VertexString)
}

// KPattern is a candidate partial match of the pattern stored in the table.
// Pi maps pattern vertices to positions on the root path of the key.
type KPattern struct {
	Vertices []graph.Vertex
	Boundary []graph.Vertex
	Pi       map[graph.Vertex]int
}

// Valid reports whether the k-pattern maps at least one pattern vertex and
// all of its targets lie on a root path of the given length.
func (p KPattern) Valid(pathLen int) bool {
	if len(p.Pi) == 0 {
		return false
	}
	for _, i := range p.Pi {
		if i < 0 || i >= pathLen {
			return false
		}
	}
	return true
}

func (p KPattern) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.Vertices, p.Boundary, p.Pi)
}

// DPTable maps vertex tuples to their candidate k-patterns. Keys are kept in
// insertion order so that sampling with a seeded source is reproducible.
type DPTable struct {
	entries *immutable.Map[Key, []KPattern]
	keys    []Key
}

func NewDPTable() *DPTable {
	return &DPTable{entries: utils.NewImmMap[Key, []KPattern]()}
}

// Add appends k-patterns to the entry for k.
func (t *DPTable) Add(k Key, patterns ...KPattern) {
	prev, found := t.entries.Get(k)
	if !found {
		t.keys = append(t.keys, append(Key{}, k...))
	}

	entry := make([]KPattern, 0, len(prev)+len(patterns))
	entry = append(entry, prev...)
	t.entries = t.entries.Set(k, append(entry, patterns...))
}

func (t *DPTable) Get(k Key) []KPattern {
	entry, _ := t.entries.Get(k)
	return entry
}

func (t *DPTable) Keys() []Key {
	return t.keys
}

func (t *DPTable) Len() int {
	return len(t.keys)
}
