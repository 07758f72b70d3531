package graph

import (
	"fmt"

	"github.com/cs-au-dk/drgraph/utils/dot"
)

type VisualizationConfig[T comparable] struct {
	// Provides the ID and attributes for dot nodes.
	// If not provided, the ID is the stringified node.
	NodeAttrs func(node T) (string, dot.DotAttrs)
	// Provides the attributes for the edge between two nodes.
	EdgeAttrs func(from, to T) dot.DotAttrs
	// If provided, will create clusters for nodes with the same key.
	// The returned key must be safe to use in a Go map.
	ClusterKey func(node T) any
	// Provides the ID and attributes for dot clusters.
	ClusterAttrs func(key any) (string, dot.DotAttrs)
	// Emit an undirected graph. Symmetric edges are only emitted once.
	Undirected bool
}

func (G Graph[T]) ToDotGraph(nodes []T, cfg *VisualizationConfig[T]) *dot.DotGraph {
	if cfg == nil {
		cfg = &VisualizationConfig[T]{}
	}

	dg := &dot.DotGraph{
		Undirected: cfg.Undirected,
		Options:    map[string]string{},
	}

	keyToCluster := map[interface{}]*dot.DotCluster{}
	getCluster := func(key interface{}) *dot.DotCluster {
		if cluster, found := keyToCluster[key]; found {
			return cluster
		}

		var id string
		var attrs dot.DotAttrs
		if cfg.ClusterAttrs != nil {
			id, attrs = cfg.ClusterAttrs(key)
		} else {
			id = fmt.Sprint(key)
		}

		cluster := dot.NewDotCluster(id)
		if attrs != nil {
			cluster.Attrs = attrs
		}
		dg.Clusters = append(dg.Clusters, cluster)

		keyToCluster[key] = cluster
		return cluster
	}

	// Add nodes to graph
	nodeToDotNode := make(map[T]*dot.DotNode, len(nodes))
	order := make(map[T]int, len(nodes))
	for i, node := range nodes {
		dNode := &dot.DotNode{}

		if cfg.NodeAttrs != nil {
			dNode.ID, dNode.Attrs = cfg.NodeAttrs(node)
		} else {
			dNode.ID = fmt.Sprint(node)
		}

		nodeToDotNode[node] = dNode
		order[node] = i

		if cfg.ClusterKey != nil {
			cl := getCluster(cfg.ClusterKey(node))
			cl.Nodes = append(cl.Nodes, dNode)
		} else {
			dg.Nodes = append(dg.Nodes, dNode)
		}
	}

	// Add edges to graph
	for i, node := range nodes {
		a := nodeToDotNode[node]

		for _, edge := range G.Edges(node) {
			b, found := nodeToDotNode[edge]
			if !found {
				continue
			}

			if cfg.Undirected {
				// Emit the edge from the endpoint appearing first in nodes.
				if order[edge] < i {
					continue
				}
			}

			dEdge := &dot.DotEdge{
				From: a,
				To:   b,
			}
			if cfg.EdgeAttrs != nil {
				dEdge.Attrs = cfg.EdgeAttrs(node, edge)
			}
			dg.Edges = append(dg.Edges, dEdge)
		}
	}

	return dg
}
