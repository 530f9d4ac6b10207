// Package format reads graphs in the PACE .gr and .hgr formats and writes
// tree decompositions in the PACE .td format.
//
// .gr:
//
//	c optional comment
//	p tw <vertices> <edges>
//	<u> <v>
//
// .hgr uses the same problem line (kind "tw" or "htd") and one hyperedge per
// line as a list of one or more vertices. Vertices are numbered 1..n.
package format

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/treewidth/graph"
)

// Sentinel errors. Parse errors wrap them with the offending line.
var (
	ErrSyntax      = errors.New("format: syntax error")
	ErrProblemKind = errors.New("format: unsupported problem kind")
	ErrEdgeCount   = errors.New("format: edge count does not match problem line")
	ErrVertexRange = errors.New("format: vertex out of range")
	ErrEdgeArity   = errors.New("format: edge must have exactly two endpoints")
)

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c(?:[ \t][^\n]*)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type document struct {
	Problem *problem `parser:"EOL* @@"`
	Rows    []*row   `parser:"( @@ | EOL )*"`
}

type problem struct {
	Pos      lexer.Position
	Kind     string `parser:"\"p\" @Ident"`
	Vertices int    `parser:"@Int"`
	Edges    int    `parser:"@Int EOL"`
}

type row struct {
	Pos    lexer.Position
	Values []int `parser:"@Int+ EOL"`
}

var parseDocument = participle.MustBuild[document](
	participle.Lexer(graphLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseGr reads a .gr graph: simple edges only, duplicate edges allowed.
func ParseGr(r io.Reader) (*graph.Graph, error) {
	doc, err := parse(r)
	if err != nil {
		return nil, err
	}
	if doc.Problem.Kind != "tw" {
		return nil, errors.Wrapf(ErrProblemKind, "%q", doc.Problem.Kind)
	}
	return build(doc, 2, graph.NewGraph(graph.WithMultiEdges()))
}

// ParseHgr reads a .hgr hypergraph. Single-vertex hyperedges are kept.
func ParseHgr(r io.Reader) (*graph.Graph, error) {
	doc, err := parse(r)
	if err != nil {
		return nil, err
	}
	if k := doc.Problem.Kind; k != "tw" && k != "htd" {
		return nil, errors.Wrapf(ErrProblemKind, "%q", k)
	}
	return build(doc, 0, graph.NewGraph(graph.WithMultiEdges(), graph.WithLoops()))
}

func parse(r io.Reader) (*document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "format: read")
	}
	// Every row must end in EOL, including the last one.
	data = append(data, '\n')
	doc, err := parseDocument.ParseBytes("", data)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return doc, nil
}

// build fills g from doc. arity 0 accepts any edge size.
func build(doc *document, arity int, g *graph.Graph) (*graph.Graph, error) {
	n := doc.Problem.Vertices
	g.AddVertices(n)

	for _, row := range doc.Rows {
		if arity > 0 && len(row.Values) != arity {
			return nil, errors.Wrapf(ErrEdgeArity, "line %d", row.Pos.Line)
		}
		vs := make([]graph.Vertex, len(row.Values))
		for i, v := range row.Values {
			if v < 1 || v > n {
				return nil, errors.Wrapf(ErrVertexRange, "line %d: vertex %d not in 1..%d", row.Pos.Line, v, n)
			}
			vs[i] = graph.Vertex(v)
		}
		if _, err := g.AddEdge(vs...); err != nil {
			return nil, errors.Wrapf(err, "format: line %d", row.Pos.Line)
		}
	}

	if len(doc.Rows) != doc.Problem.Edges {
		return nil, errors.Wrapf(ErrEdgeCount, "declared %d, found %d", doc.Problem.Edges, len(doc.Rows))
	}
	return g, nil
}
