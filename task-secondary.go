package main

import (
	"log"
	"os"

	"github.com/cs-au-dk/drgraph/utils/dot"
	"github.com/cs-au-dk/drgraph/vistool"
)

// secondaryTask runs the tasks that do not print a stage report.
func (st stages) secondaryTask() {
	switch {
	case task.IsServe():
		s := vistool.NewServer(st.p, st.strategy, st.rnd, opts.Retries())
		s.Margin = opts.Margin()
		vistool.Start(s, opts.Addr())
	}
}

// output writes dg to the -out file, if one was given.
func (st stages) output(dg *dot.DotGraph) {
	if opts.Output() == "" {
		return
	}

	f, err := os.Create(opts.Output())
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	if err := dg.WriteDot(f); err != nil {
		log.Fatalln("Failed to write", opts.Output(), err)
	}
	log.Printf("Wrote %d nodes to %s", dg.CountNodes(), opts.Output())
}
