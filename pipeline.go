package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/cs-au-dk/drgraph/combine"
	"github.com/cs-au-dk/drgraph/count"
	"github.com/cs-au-dk/drgraph/decompose"
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/pipeline"
	"github.com/cs-au-dk/drgraph/utils"
)

// stages runs the visualisation of one pipeline stage on loaded artifacts.
type stages struct {
	p        *pipeline.Pipeline
	strategy layout.Strategy
	rnd      *rand.Rand
}

// colors parses a colour set flag, returning def for an empty flag.
func (st stages) colors(raw string, def graph.ColorSet) (graph.ColorSet, error) {
	if raw == "" {
		return def, nil
	}
	cs, err := utils.ParseInts(raw)
	if err != nil {
		return nil, err
	}
	return graph.NewColorSet(cs...), nil
}

func (st stages) decompose(colors graph.ColorSet) (*decompose.Decomposition, error) {
	fmt.Println()
	log.Println("Collecting components for colours", colors, "...")
	gen := st.p.Generator(st.strategy)
	gen.Margin = opts.Margin()
	d, err := gen.Decompose(colors, opts.SingletonsFirst())
	if err != nil {
		return nil, err
	}
	log.Println("Found", len(d.Components), "distinct components")
	fmt.Println()

	opts.OnVerbose(func() {
		for i, tree := range d.Trees {
			fmt.Printf("Tree %d rooted at %s: %v\n", i, utils.VertexString(tree.Root), tree.Tree)
		}
		fmt.Println()
	})

	return d, nil
}

func (st stages) count() (*count.Sampler, *count.View, error) {
	fmt.Println()
	log.Println("Sampling a k-pattern from", st.p.Table.Len(), "table keys...")
	sampler := st.p.Sampler(st.rnd)
	sampler.MaxRetries = opts.Retries()
	sampler.Margin = opts.Margin()

	v, err := sampler.Generate(st.strategy)
	if err != nil {
		return nil, nil, err
	}
	log.Println("Sampling done")
	fmt.Println()

	return sampler, v, nil
}

func (st stages) combine(base graph.ColorSet) []combine.Group {
	e := st.p.Expander()
	opts.OnVerbose(func() {
		fmt.Printf("Universe %v, pattern size %d, minimum size %d\n", e.Universe, e.PatternSize, e.MinSize)
	})
	return e.Expand(base)
}
