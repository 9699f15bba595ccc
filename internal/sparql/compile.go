package sparql

import (
	"fmt"
	"strings"

	"github.com/kiss2smiles/wdqa/internal/graph"
)

// edgeFragment is the compiled form of one edge. Each block is rendered
// exactly once from resolved slot values; the assembler only concatenates,
// so no pattern text is ever rewritten after creation.
type edgeFragment struct {
	label    string   // entity-label block, empty when the right entity is bound
	values   string   // VALUES enumeration for an unbound abstraction hop
	relation string   // relation block
	freeVars []string // projection variables in registration order
	orderBy  string   // "DESC(?n0)" style term, empty without an extremal request
}

// compileEdge translates one edge into its fragment. The index namespaces
// every auxiliary variable and blank node so fragments from distinct edges
// never share a placeholder.
func compileEdge(g *graph.Graph, e graph.Edge, i int) edgeFragment {
	f := edgeFragment{}

	pred := fmt.Sprintf("?p%d", i)
	node := fmt.Sprintf("?m%d", i)

	// Relation identity: a bound kbID fills every relation slot; otherwise
	// the directional slots become free variables.
	relTerm := func(t graph.EdgeType) string {
		if e.KBID != "" {
			return "e:" + e.KBID
		}
		return relationVar(i, t)
	}
	if e.KBID == "" {
		if e.Type != "" {
			f.freeVars = append(f.freeVars, relationVar(i, e.Type))
		} else {
			f.freeVars = append(f.freeVars,
				relationVar(i, graph.Direct),
				relationVar(i, graph.Reverse),
				relationVar(i, graph.VStructure),
			)
		}
	}

	// Right-hand entity slot.
	right := "e:" + e.RightKBID
	if e.RightKBID == "" {
		right = entityVar(i)
	}

	// Abstraction hop wraps the right-hand slot before the shape template
	// is instantiated, so it composes with all shapes.
	rightSlot := right
	if e.HopUp != nil {
		if *e.HopUp != "" {
			base := strings.TrimSuffix(*e.HopUp, "v")
			rightSlot = fmt.Sprintf(hopBound, base, right)
		} else {
			rightSlot = fmt.Sprintf(hopAny, i, right)
			f.values = fmt.Sprintf(hopValues, i)
			f.freeVars = append(f.freeVars, hopValueVar(i))
		}
	}

	// Extremal ordering fills the restriction slot and yields the
	// order-by term. Validation guarantees the edge is typed here.
	restriction := ""
	if e.Extremal() {
		restriction = fmt.Sprintf(timeRestriction, node, i)
		dir := "DESC"
		if e.Argmin != "" {
			dir = "ASC"
		}
		f.orderBy = fmt.Sprintf("%s(?n%d)", dir, i)
	}

	switch e.Type {
	case graph.Direct:
		f.relation = fmt.Sprintf(relationDirect, pred, node, relTerm(graph.Direct), rightSlot, restriction)
	case graph.Reverse:
		f.relation = fmt.Sprintf(relationReverse, pred, node, relTerm(graph.Reverse), rightSlot, restriction)
	case graph.VStructure:
		f.relation = fmt.Sprintf(relationVStruct, pred, node, relTerm(graph.VStructure), rightSlot, restriction)
	default:
		f.relation = fmt.Sprintf(relationUnion, pred,
			relTerm(graph.Direct), relTerm(graph.Reverse), relTerm(graph.VStructure),
			rightSlot, i)
	}

	// A label-derived right entity prepends its lookup block and projects
	// the entity variable.
	if e.RightKBID == "" {
		f.label = fmt.Sprintf(entityLabel, right, g.RightLabel(e))
		f.freeVars = append(f.freeVars, entityVar(i))
	}

	return f
}

func relationVar(i int, t graph.EdgeType) string {
	return fmt.Sprintf("?r%d%s", i, shapeSuffix(t))
}

func entityVar(i int) string {
	return fmt.Sprintf("?e2%d", i)
}

func hopValueVar(i int) string {
	return fmt.Sprintf("?hopv%d", i)
}

func shapeSuffix(t graph.EdgeType) string {
	switch t {
	case graph.Direct:
		return "d"
	case graph.Reverse:
		return "r"
	case graph.VStructure:
		return "v"
	}
	return ""
}
