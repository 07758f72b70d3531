package main

import (
	"fmt"
	"os"

	"github.com/cs-au-dk/drgraph/combine"
	"github.com/cs-au-dk/drgraph/count"
	"github.com/cs-au-dk/drgraph/decompose"
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"

	"github.com/fatih/color"
)

var (
	header  = utils.CanColorize(color.New(color.FgBlue, color.Bold).SprintFunc())
	failure = utils.CanColorize(color.New(color.FgRed).SprintFunc())
)

func printDecomposition(d *decompose.Decomposition) {
	fmt.Println("================ Results =====================")
	fmt.Println("Colour set:", d.Colors)
	fmt.Println()

	malformed := 0
	for i, comp := range d.Components {
		tree := d.Trees[i]
		fmt.Printf("%s %s depth %d\n", header(fmt.Sprintf("Component %d", i)), utils.CountString(comp.Occ), tree.Depth())
		fmt.Println("  ", comp)
		if tree.Malformed {
			malformed++
			fmt.Println("  ", failure("malformed colouring, drawn as is"))
		}
	}

	fmt.Println()
	fmt.Println("Distinct components:", len(d.Components))
	if malformed > 0 {
		fmt.Println("Malformed components:", malformed)
	}
}

func printSample(sampler *count.Sampler, v *count.View) {
	s := v.Sample
	fmt.Println("================ Results =====================")
	fmt.Println(header("Key:"), s.Key)
	fmt.Println(header("Root path:"), utils.IntsString(s.RootPath, utils.VertexString))
	fmt.Println(header("k-pattern:"), s.Pattern)
	fmt.Println(header("Motif vertices:"), utils.IntsString(s.Image(), utils.VertexString))

	motifOf := s.Motif()
	for _, p := range sampler.Pattern.Vertices() {
		if g, ok := motifOf[p]; ok {
			fmt.Printf("  %d -> %s\n", p, utils.VertexString(g))
		}
	}

	motif := 0
	for _, a := range v.Attributes.Edges {
		if a["width"] == "4" {
			motif++
		}
	}
	fmt.Println("Motif edges:", motif)
}

func printGroups(base graph.ColorSet, groups []combine.Group) {
	fmt.Println("================ Results =====================")
	fmt.Println("Base:", base)
	fmt.Println()

	total := 0
	for _, g := range groups {
		fmt.Println(header(fmt.Sprintf("+%d colours:", g.Added)))
		for _, c := range g.Candidates {
			fmt.Println("  ", c)
		}
		total += len(g.Candidates)
	}

	fmt.Println()
	fmt.Println("Candidate colour sets:", total)
	opts.OnVerbose(func() {
		combine.WriteGroups(os.Stdout, base, groups)
	})
}
