package prim_kruskal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrParse wraps every syntax error reported by ParseGraph.
var ErrParse = errors.New("prim_kruskal: cannot parse graph")

// graphFile is the grammar root: a sequence of vertex/edge statements.
//
//	vertex E
//	edge A B 1
//	edge "New York" Boston 2.5
//
// Vertex IDs are identifiers, integers or quoted strings. Weights are
// non-negative integer or decimal literals. Go-style comments are ignored.
type graphFile struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Vertex *vertexStmt `parser:"  'vertex' @@"`
	Edge   *edgeStmt   `parser:"| 'edge' @@"`
}

type vertexStmt struct {
	ID string `parser:"@(Ident | String | Int)"`
}

type edgeStmt struct {
	From   string  `parser:"@(Ident | String | Int)"`
	To     string  `parser:"@(Ident | String | Int)"`
	Weight float64 `parser:"@(Float | Int)"`
}

var graphParser = participle.MustBuild[graphFile](
	participle.Unquote("String"),
)

// ParseGraph reads the text graph format from r. Every `edge` statement is
// added with Graph.AddEdge, so the result is symmetric by construction.
func ParseGraph(r io.Reader) (Graph, error) {
	doc, err := graphParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	g := Graph{}
	for _, st := range doc.Statements {
		switch {
		case st.Vertex != nil:
			g.AddVertex(st.Vertex.ID)
		case st.Edge != nil:
			g.AddEdge(st.Edge.From, st.Edge.To, st.Edge.Weight)
		}
	}

	return g, nil
}

// ParseGraphString is ParseGraph over a string.
func ParseGraphString(s string) (Graph, error) {
	return ParseGraph(strings.NewReader(s))
}
