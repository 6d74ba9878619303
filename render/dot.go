// Package render draws a core.Graph, optionally with a found path
// highlighted, as Graphviz DOT text or as an image rendered by go-graphviz.
package render

import (
	"bytes"
	"errors"
	"strconv"
	"text/template"

	"github.com/katalvlaran/bfsroute/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("render: graph is nil")

const tmplDot = `{{.Kind}} {{printf "%q" .Title}} {
	rankdir="LR";
	node [shape="circle" fontname="Verdana"];
{{- range .Nodes}}
	{{printf "%q" .ID}}{{if .Attrs}} [{{.Attrs}}]{{end}};
{{- end}}
{{- range .Edges}}
	{{printf "%q" .From}} {{$.Arrow}} {{printf "%q" .To}} [label={{printf "%q" .Label}}{{if .OnPath}} color="red" penwidth="2"{{end}}];
{{- end}}
}
`

var dotTemplate = template.Must(template.New("dot").Parse(tmplDot))

type dotNode struct {
	ID    string
	Attrs string
}

type dotEdge struct {
	From, To string
	Label    string
	OnPath   bool
}

type dotGraph struct {
	Kind, Arrow string
	Title       string
	Nodes       []dotNode
	Edges       []dotEdge
}

// DOT renders g as DOT text. Directed graphs become a digraph; undirected
// graphs emit each mirrored pair once. Edges along path are drawn red, and
// the path's first and last vertices are filled.
func DOT(g *core.Graph, title string, path []string) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	directed := g.Directed()

	hops := make(map[[2]string]bool, len(path))
	for i := 1; i < len(path); i++ {
		hops[[2]string{path[i-1], path[i]}] = true
		if !directed {
			hops[[2]string{path[i], path[i-1]}] = true
		}
	}
	ends := map[string]string{}
	if len(path) > 0 {
		ends[path[0]] = `style="filled" fillcolor="palegreen"`
		ends[path[len(path)-1]] = `style="filled" fillcolor="lightsalmon"`
	}

	dg := dotGraph{Kind: "digraph", Arrow: "->", Title: title}
	if !directed {
		dg.Kind, dg.Arrow = "graph", "--"
	}
	for _, id := range g.Vertices() {
		dg.Nodes = append(dg.Nodes, dotNode{ID: id, Attrs: ends[id]})
	}
	for _, e := range g.Edges() {
		if !directed && e.From > e.To {
			continue
		}
		dg.Edges = append(dg.Edges, dotEdge{
			From:   e.From,
			To:     e.To,
			Label:  strconv.FormatFloat(e.Weight, 'f', -1, 64),
			OnPath: hops[[2]string{e.From, e.To}],
		})
	}

	var buf bytes.Buffer
	if err := dotTemplate.Execute(&buf, dg); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
