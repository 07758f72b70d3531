package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/pipeline"
	"github.com/cs-au-dk/drgraph/utils"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()

	start := time.Now()
	p, err := pipeline.Load(opts.Input())
	if err != nil {
		log.Fatalln("Failed to load pipeline artifacts:", err)
	}
	opts.OnVerbose(func() {
		utils.TimeTrack(start, "Loading "+opts.Input())
	})

	strategy, err := layout.SelectStrategy(opts.Layout().String())
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Using", strategy.Name(), "layout")

	st := stages{
		p:        p,
		strategy: strategy,
		rnd:      rand.New(rand.NewSource(opts.Seed())),
	}

	switch {
	case task.IsDecompose():
		colors, err := st.colors(opts.Colors(), p.Universe())
		if err != nil {
			log.Fatalln(err)
		}
		d, err := st.decompose(colors)
		if err != nil {
			log.Fatalln("Decomposition failed:", err)
		}
		printDecomposition(d)
		st.output(d.ToDotGraph())
	case task.IsCount():
		sampler, v, err := st.count()
		if err != nil {
			log.Fatalln("Sampling failed:", err)
		}
		printSample(sampler, v)
		st.output(sampler.ToDotGraph(v))
	case task.IsCombine():
		base, err := st.colors(opts.Base(), nil)
		if err != nil {
			log.Fatalln(err)
		}
		printGroups(base, st.combine(base))
	default:
		st.secondaryTask()
	}
}
