// Package graph holds the in-memory representation of a candidate semantic
// graph: one interpretation hypothesis of a question, expressed as relation
// edges between the implicit question entity and right-hand entities.
package graph

import (
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kiss2smiles/wdqa/internal/errors"
)

// EdgeType is the directional shape of a relation edge.
type EdgeType string

const (
	Direct     EdgeType = "direct"
	Reverse    EdgeType = "reverse"
	VStructure EdgeType = "v-structure"
)

// Edge is a single relation hypothesis. The right-hand entity is identified
// by exactly one of RightKBID or a Right token span; a nil HopUp means no
// abstraction hop, an empty-string HopUp means "any allowed hop relation".
type Edge struct {
	Type      EdgeType `json:"type,omitempty"`
	KBID      string   `json:"kbID,omitempty"`
	RightKBID string   `json:"rightkbID,omitempty"`
	Right     []int    `json:"right,omitempty"`
	HopUp     *string  `json:"hopUp,omitempty"`
	Argmax    string   `json:"argmax,omitempty"`
	Argmin    string   `json:"argmin,omitempty"`
}

// Extremal reports whether the edge requests extremal ordering.
func (e Edge) Extremal() bool {
	return e.Argmax != "" || e.Argmin != ""
}

// Graph is one candidate interpretation of a question. Edge order is
// significant for variable naming and clause order, not for semantics.
type Graph struct {
	Tokens  []string `json:"tokens"`
	EdgeSet []Edge   `json:"edgeSet"`
}

// RightLabel derives the literal label for an edge whose right-hand entity
// comes from a token span. Tokens are joined and title-cased to match the
// label form stored in the knowledge base. The Caser is constructed per
// call: a cases.Caser carries transform state and must not be shared
// between goroutines.
func (g *Graph) RightLabel(e Edge) string {
	words := lo.Map(e.Right, func(idx int, _ int) string {
		return g.Tokens[idx]
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Validate checks the structural invariants a graph must satisfy before
// compilation. A violation is a contract breach by the upstream candidate
// generator, reported with code ErrInvalidGraph.
func (g *Graph) Validate() error {
	if len(g.EdgeSet) == 0 {
		return invalid("graph has no edges", nil)
	}
	extremal := 0
	for i, e := range g.EdgeSet {
		switch e.Type {
		case "", Direct, Reverse, VStructure:
		default:
			return invalid("unknown edge type", failure.Context{
				"edge": fmt.Sprintf("%d", i),
				"type": string(e.Type),
			})
		}
		if e.RightKBID == "" && len(e.Right) == 0 {
			return invalid("edge resolves no right-hand entity", failure.Context{
				"edge": fmt.Sprintf("%d", i),
			})
		}
		if e.RightKBID != "" && len(e.Right) > 0 {
			return invalid("edge resolves its right-hand entity twice", failure.Context{
				"edge": fmt.Sprintf("%d", i),
			})
		}
		for _, idx := range e.Right {
			if idx < 0 || idx >= len(g.Tokens) {
				return invalid("right token span out of range", failure.Context{
					"edge":  fmt.Sprintf("%d", i),
					"index": fmt.Sprintf("%d", idx),
				})
			}
		}
		if e.Argmax != "" && e.Argmin != "" {
			return invalid("argmax and argmin are mutually exclusive", failure.Context{
				"edge": fmt.Sprintf("%d", i),
			})
		}
		if e.Extremal() {
			extremal++
			// The union-of-three shape has no addressable intermediate
			// node for the time restriction to attach to.
			if e.Type == "" {
				return invalid("extremal ordering requires a typed relation", failure.Context{
					"edge": fmt.Sprintf("%d", i),
				})
			}
		}
	}
	if extremal > 1 {
		return invalid("at most one edge may request extremal ordering", nil)
	}
	return nil
}

func invalid(msg string, ctx failure.Context) error {
	if ctx == nil {
		return failure.New(
			errors.ErrInvalidGraph,
			failure.Field(failure.Message(msg)),
		)
	}
	return failure.New(
		errors.ErrInvalidGraph,
		failure.Field(failure.Message(msg)),
		ctx,
	)
}
