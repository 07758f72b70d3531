package dot

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
)

const tmplCluster = `{{define "cluster" -}}
	{{printf "subgraph %q {" .}}
		{{printf "%s" .Attrs.Lines}}
		{{range .Nodes}}
		{{template "node" .}}
		{{- end}}
	{{println "}" }}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

// Positions are given in points (pos="x,y!"), so the output is meant to be
// drawn with `neato -n`.
const tmplGraph = `{{.Keyword}} Layouts {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	bgcolor="white";
	pad="0.2";
	outputorder="edgesfirst";
	{{printf "%s" .Attrs.Lines}}

	node [shape="circle" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0" fixedsize="true"];
	{{- range .Clusters}}
	{{template "cluster" .}}
	{{- end}}

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{printf "%q %s %q [ %s ]" .From $.EdgeOp .To .Attrs}}
	{{- end}}
}
`

// ==[ type def/func: DotCluster ]===============================================
type DotCluster struct {
	ID    string
	Nodes []*DotNode
	Attrs DotAttrs
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

// List returns the attributes as key="value"; entries sorted by key.
func (p DotAttrs) List() []string {
	l := []string{}
	for k, v := range p {
		l = append(l, fmt.Sprintf("%s=%q;", k, v))
	}
	sort.Strings(l)
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	Title      string
	Attrs      DotAttrs
	Clusters   []*DotCluster
	Nodes      []*DotNode
	Edges      []*DotEdge
	Options    map[string]string
	Undirected bool
}

func (g *DotGraph) Keyword() string {
	if g.Undirected {
		return "graph"
	}
	return "digraph"
}

func (g *DotGraph) EdgeOp() string {
	if g.Undirected {
		return "--"
	}
	return "->"
}

// Merge moves the nodes, edges and clusters of other into g.
func (g *DotGraph) Merge(other *DotGraph) {
	g.Clusters = append(g.Clusters, other.Clusters...)
	g.Nodes = append(g.Nodes, other.Nodes...)
	g.Edges = append(g.Edges, other.Edges...)
}

func (g *DotGraph) CountNodes() int {
	res := len(g.Nodes)

	for _, cluster := range g.Clusters {
		res += len(cluster.Nodes)
	}

	return res
}

func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	t.Option("missingkey=zero") // Make missing map keys return the zero value of appropriate type
	for _, s := range []string{tmplCluster, tmplNode, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
