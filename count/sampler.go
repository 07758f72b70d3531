package count

import (
	"math/rand"
	"sort"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTable     = errors.New("dynamic programming table is empty")
	ErrNoValidPattern = errors.New("no valid k-pattern")
)

const DefaultMaxRetries = 1000

// Sampler draws random partial pattern matches from a dynamic programming
// table, to illustrate the counting stage.
type Sampler struct {
	G        *graph.Graph
	Pattern  *graph.Graph
	TDD      *TDD
	Table    *DPTable
	Coloring graph.Coloring

	Rand       *rand.Rand
	MaxRetries int
	Margin     float64
}

// Sample is one k-pattern together with the key it was found under and the
// root path of the first key vertex.
type Sample struct {
	Key      Key
	RootPath []graph.Vertex
	Pattern  KPattern
}

func NewSampler(G, pattern *graph.Graph, tdd *TDD, table *DPTable, coloring graph.Coloring, rnd *rand.Rand) *Sampler {
	return &Sampler{
		G:          G,
		Pattern:    pattern,
		TDD:        tdd,
		Table:      table,
		Coloring:   coloring,
		Rand:       rnd,
		MaxRetries: DefaultMaxRetries,
	}
}

// SelectSample picks a uniformly random key and then a uniformly random
// valid k-pattern of that key. Invalid entries are rejected and redrawn at
// most MaxRetries times.
func (s *Sampler) SelectSample() (*Sample, error) {
	keys := s.Table.Keys()
	if len(keys) == 0 {
		return nil, ErrEmptyTable
	}

	key := keys[s.Rand.Intn(len(keys))]
	if len(key) == 0 {
		return nil, errors.Wrap(ErrNoValidPattern, "empty key")
	}

	path, err := s.TDD.RootPath(key[0])
	if err != nil {
		return nil, errors.Wrapf(err, "root path of key %v", []graph.Vertex(key))
	}

	retries := s.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}

	if entries := s.Table.Get(key); len(entries) > 0 {
		for i := 0; i < retries; i++ {
			p := entries[s.Rand.Intn(len(entries))]
			if p.Valid(len(path)) {
				utils.VerbosePrint("Sampled %v for key %v after %d draws\n", p, key, i+1)
				return &Sample{Key: key, RootPath: path, Pattern: p}, nil
			}
		}
	}

	return nil, errors.Wrapf(ErrNoValidPattern, "key %v after %d draws", []graph.Vertex(key), retries)
}

// Motif maps every pattern vertex in the domain of Pi to its graph vertex on
// the root path.
func (s *Sample) Motif() map[graph.Vertex]graph.Vertex {
	res := make(map[graph.Vertex]graph.Vertex, len(s.Pattern.Pi))
	for p, i := range s.Pattern.Pi {
		res[p] = s.RootPath[i]
	}
	return res
}

// Image returns the graph vertices hit by Pi in ascending order.
func (s *Sample) Image() []graph.Vertex {
	seen := make(map[graph.Vertex]bool)
	var res []graph.Vertex
	for _, v := range s.Motif() {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	sort.Ints(res)
	return res
}
