package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	retries      uint
	seed         int64
	margin       float64
	input        string
	colors       string
	base         string
	layout       string
	output       string
	addr         string
	task         string
	noColorize   bool
	verbose      bool
	singletonsUp bool
}

const (
	_DECOMPOSE = iota
	_COUNT
	_COMBINE
	_SERVE
)

const (
	_LAYOUT_AUTO = iota
	_LAYOUT_RADIAL
	_LAYOUT_SPRING
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%v", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"decompose",
	"Collect the connected components induced by -colors, deduplicated up to coloured isomorphism, and lay out their underlying trees",
}, {
	"count",
	"Sample a valid k-pattern from the dynamic programming table and lay out the treedepth decomposition next to the pattern",
}, {
	"combine",
	"Enumerate the colour sets extending -base up to the pattern size",
}, {
	"serve",
	"Serve all stages as JSON for the browser front-end",
}}

var layouts = []struct{ flag, explanation string }{{
	"auto",
	"Use the radial graphviz layout if graphviz works, otherwise the force-directed layout",
}, {
	"radial",
	"Always use the radial (twopi) graphviz layout",
}, {
	"spring",
	"Always use the force-directed layout",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

type layoutInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) Retries() int {
	return int(opts.retries)
}

func (optInterface) Seed() int64 {
	return opts.seed
}

func (optInterface) Margin() float64 {
	return opts.margin
}

func (optInterface) Input() string {
	return opts.input
}

// Colors is the raw comma separated colour list given to -colors.
func (optInterface) Colors() string {
	return opts.colors
}

// Base is the raw comma separated colour list given to -base.
func (optInterface) Base() string {
	return opts.base
}

func (optInterface) Output() string {
	return opts.output
}

func (optInterface) Addr() string {
	return opts.addr
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

// SingletonsFirst reports whether single-vertex components are listed
// before larger components in decomposition output.
func (optInterface) SingletonsFirst() bool {
	return opts.singletonsUp
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsDecompose() bool {
	return opts.task == task[_DECOMPOSE].flag
}
func (taskInterface) IsCount() bool {
	return opts.task == task[_COUNT].flag
}
func (taskInterface) IsCombine() bool {
	return opts.task == task[_COMBINE].flag
}
func (taskInterface) IsServe() bool {
	return opts.task == task[_SERVE].flag
}

func (optInterface) Layout() layoutInterface {
	return layoutInterface{}
}
func (layoutInterface) String() string {
	return opts.layout
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	layoutFlag := "\n"
	for _, l := range layouts {
		layoutFlag += l.flag + " -- " + l.explanation + "\n"
	}
	layoutFlag += "\n"

	flag.UintVar(&(opts.retries), "retries", 1000, "Maximum number of draws when sampling a valid k-pattern for a table key.")
	flag.Int64Var(&(opts.seed), "seed", 1, "Seed for the k-pattern sampler.")
	flag.Float64Var(&(opts.margin), "margin", 0.05, "Margin kept free on each side of a layout cell.")
	flag.StringVar(&(opts.input), "input", "", "YAML file with the pipeline artifacts (graph, colorings, pattern, tdd, table).")
	flag.StringVar(&(opts.colors), "colors", "", "Comma separated colour set for -task decompose. Defaults to every colour of the final colouring.")
	flag.StringVar(&(opts.base), "base", "", "Comma separated base colour set for -task combine.")
	flag.StringVar(&(opts.layout), "layout", layouts[_LAYOUT_AUTO].flag, "Layout backend. Options:"+layoutFlag)
	flag.StringVar(&(opts.output), "out", "", "Write the tiled layouts as a DOT file to the given path.")
	flag.StringVar(&(opts.addr), "addr", ":8080", "Listen address for -task serve.")
	flag.StringVar(&(opts.task), "task", task[_DECOMPOSE].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.singletonsUp), "singletons-first", false, "list single-vertex components before the others")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	validLayout := false
	for _, l := range layouts {
		if l.flag == opts.layout {
			validLayout = true
			break
		}
	}

	if !validLayout {
		log.Fatalf("Value \"%s\" is not valid for -layout", opts.layout)
	}

	if opts.input == "" {
		log.Fatalln("Missing -input")
	}

	if opts.output != "" {
		opts.noColorize = true
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
