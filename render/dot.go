// Package render draws one recorded step of a run as a Graphviz diagram.
//
// ToDOT colors vertices and edges by the statuses the step carries; it is the
// only place status values meet colors. RenderSVG lays the DOT out with an
// embedded Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/dijkstra"
	"github.com/katalvlaran/stepwalk/playback"
	"github.com/katalvlaran/stepwalk/steps"
)

// Graph is the drawn graph.
type Graph struct {
	Vertices []core.Vertex
	Edges    []core.Edge
	Directed bool
}

// Options configures DOT output.
type Options struct {
	// Weights labels edges with their weight.
	Weights bool
	// Title is drawn above the graph when non-empty.
	Title string
}

var nodeFill = map[core.NodeStatus]string{
	core.NodeDefault:    "white",
	core.NodeFrontier:   "#f6c177",
	core.NodeProcessing: "#eb6f92",
	core.NodeVisited:    "#9ccfd8",
}

var edgeStyle = map[core.EdgeStatus]string{
	core.EdgeDefault:    `color="#908caa"`,
	core.EdgeQueued:     `color="#f6c177", penwidth=2`,
	core.EdgeProcessing: `color="#eb6f92", penwidth=2`,
	core.EdgeVisited:    `color="#31748f", penwidth=3`,
	core.EdgeUseless:    `color="#dddddd", style=dashed`,
}

// ToDOT converts g, colored by step s, to Graphviz DOT. Vertices show their
// best known distance when s carries one.
func ToDOT(g Graph, s steps.Step, opts Options) string {
	kind, arrow := "graph", "--"
	if g.Directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, v := range g.Vertices {
		st := playback.NodeStatusOf(s, v.ID)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", v.ID, nodeLabel(s, v.ID), nodeFill[st])
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := []string{edgeStyle[s.EdgeStatus(e.From, e.To)]}
		if opts.Weights {
			attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatInt(e.Weight, 10)))
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.From, arrow, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(s steps.Step, id string) string {
	d, ok := s.Shortest[id]
	if !ok {
		return id
	}
	if d == dijkstra.Infinity {
		return id + "\n∞"
	}

	return id + "\n" + strconv.FormatInt(d, 10)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
