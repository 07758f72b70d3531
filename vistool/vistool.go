package vistool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/cs-au-dk/drgraph/count"
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/pipeline"
	"github.com/cs-au-dk/drgraph/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
)

// PixelsPerCell scales grid coordinates to front-end positions.
const PixelsPerCell = 400

type Server struct {
	P        *pipeline.Pipeline
	Strategy layout.Strategy
	Margin   float64

	// Requests that sample share the sampler and its random source.
	samplerLock sync.Mutex
	sampler     *count.Sampler
}

func NewServer(p *pipeline.Pipeline, strategy layout.Strategy, rnd *rand.Rand, retries int) *Server {
	sampler := p.Sampler(rnd)
	if retries > 0 {
		sampler.MaxRetries = retries
	}

	return &Server{
		P:        p,
		Strategy: strategy,
		Margin:   layout.DefaultMargin,
		sampler:  sampler,
	}
}

func fail(w http.ResponseWriter, status int, err error) {
	log.Println(err)
	w.WriteHeader(status)
	io.WriteString(w, fmt.Sprint(err))
}

func respond(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println(err)
	}
}

func position(l layout.Layout, v graph.Vertex) map[string]any {
	p := l[v]
	return map[string]any{"x": p.X * PixelsPerCell, "y": p.Y * PixelsPerCell}
}

func node(id string, data map[string]any, pos map[string]any) map[string]any {
	data["id"] = id
	el := map[string]any{
		"group": "nodes",
		"data":  data,
	}
	if pos != nil {
		el["position"] = pos
	}
	return el
}

func edge(a, b string, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	data["id"] = fmt.Sprintf("%s-%s", a, b)
	data["source"] = a
	data["target"] = b
	return map[string]any{
		"group": "edges",
		"data":  data,
	}
}

// colorSet parses a query parameter, falling back to def when it is absent.
func colorSet(req *http.Request, key string, def graph.ColorSet) (graph.ColorSet, error) {
	raw := req.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	cs, err := utils.ParseInts(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parameter %s", key)
	}
	return graph.NewColorSet(cs...), nil
}

func (s *Server) decompose(w http.ResponseWriter, req *http.Request) {
	colors, err := colorSet(req, "colors", s.P.Universe())
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}

	gen := s.P.Generator(s.Strategy)
	gen.Margin = s.Margin
	d, err := gen.Decompose(colors, utils.Opts().SingletonsFirst())
	if err != nil {
		fail(w, http.StatusInternalServerError, err)
		return
	}

	data := []any{}
	for i, tree := range d.Trees {
		comp, l := d.Components[i], d.Layouts[i]
		cid := fmt.Sprintf("comp-%d", i)
		data = append(data, node(cid, map[string]any{
			"str":       fmt.Sprintf("x%d", comp.Occ),
			"occ":       comp.Occ,
			"malformed": tree.Malformed,
		}, nil))

		vid := func(v graph.Vertex) string { return fmt.Sprintf("%s-%d", cid, v) }
		for _, v := range tree.Tree.Vertices() {
			data = append(data, node(vid(v), map[string]any{
				"parent": cid,
				"str":    fmt.Sprintf("c%d", comp.Coloring[v]),
				"color":  comp.Coloring[v],
				"root":   v == tree.Root,
			}, position(l, v)))
		}
		for _, e := range tree.Tree.Edges() {
			data = append(data, edge(vid(e.U), vid(e.V), nil))
		}
	}

	respond(w, data)
}

func (s *Server) count(w http.ResponseWriter, _ *http.Request) {
	s.samplerLock.Lock()
	defer s.samplerLock.Unlock()

	sampler := s.sampler
	sampler.Margin = s.Margin
	v, err := sampler.Generate(s.Strategy)
	switch {
	case errors.Is(err, count.ErrEmptyTable), errors.Is(err, count.ErrNoValidPattern):
		fail(w, http.StatusNotFound, err)
		return
	case err != nil:
		fail(w, http.StatusInternalServerError, err)
		return
	}

	onPath := map[graph.Vertex]int{}
	for i, u := range v.Sample.RootPath {
		onPath[u] = i
	}

	gid := func(u graph.Vertex) string { return fmt.Sprintf("g-%d", u) }
	pid := func(p graph.Vertex) string { return fmt.Sprintf("p-%d", p) }

	data := []any{
		node("graph", map[string]any{"str": fmt.Sprintf("key %v", []graph.Vertex(v.Sample.Key))}, nil),
		node("pattern", map[string]any{"str": "pattern"}, nil),
	}

	for _, u := range sampler.G.Vertices() {
		d := map[string]any{
			"parent": "graph",
			"str":    fmt.Sprintf("c%d", sampler.Coloring[u]),
			"size":   v.Attributes.Nodes[u]["size"],
		}
		if i, ok := onPath[u]; ok {
			d["depth"] = i
		}
		data = append(data, node(gid(u), d, position(v.Layouts[0], u)))
	}
	for _, e := range sampler.G.Edges() {
		a := v.Attributes.Edges[e]
		data = append(data, edge(gid(e.U), gid(e.V), map[string]any{
			"width": a["width"],
			"style": a["style"],
		}))
	}

	for _, p := range sampler.Pattern.Vertices() {
		d := map[string]any{"parent": "pattern", "str": fmt.Sprint(p)}
		if i, ok := v.Sample.Pattern.Pi[p]; ok {
			d["image"] = gid(v.Sample.RootPath[i])
		}
		data = append(data, node(pid(p), d, position(v.Layouts[1], p)))
	}
	for _, e := range sampler.Pattern.Edges() {
		data = append(data, edge(pid(e.U), pid(e.V), nil))
	}

	respond(w, data)
}

func (s *Server) combine(w http.ResponseWriter, req *http.Request) {
	base, err := colorSet(req, "base", graph.NewColorSet())
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}

	data := []any{}
	for _, g := range s.P.Expander().Expand(base) {
		candidates := make([][]int, len(g.Candidates))
		for i, c := range g.Candidates {
			candidates[i] = c
		}
		data = append(data, map[string]any{
			"added":      g.Added,
			"candidates": candidates,
		})
	}

	respond(w, data)
}

// Router exposes the stages; /shutdown is added by Start.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/decompose", s.decompose)
	r.Get("/count", s.count)
	r.Get("/combine", s.combine)
	return r
}

func Start(s *Server, addr string) {
	r := s.Router()
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}
	r.Get("/shutdown", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
		go func() {
			if err := server.Shutdown(context.Background()); err != nil {
				log.Fatal(err)
			}
		}()
	})

	log.Printf("Listening on http://localhost%s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
