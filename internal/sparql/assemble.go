package sparql

import (
	"fmt"
	"strings"

	"github.com/kiss2smiles/wdqa/internal/graph"
)

// Assemble compiles a whole graph into one SPARQL query. The projection list
// is the concatenation of every edge's free variables in registration order;
// includeDenotation appends the shared question variable so its bindings are
// returned. Identical graphs assemble to byte-identical text.
func Assemble(g *graph.Graph, includeDenotation bool) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	var body strings.Builder
	var vars []string
	var orderTerms []string
	for i, e := range g.EdgeSet {
		f := compileEdge(g, e, i)
		body.WriteString(f.label)
		body.WriteString(f.values)
		body.WriteString(f.relation)
		vars = append(vars, f.freeVars...)
		if f.orderBy != "" {
			orderTerms = append(orderTerms, f.orderBy)
		}
	}
	if includeDenotation {
		vars = append(vars, questionVar)
	}
	projection := strings.Join(vars, " ")
	if projection == "" {
		// Fully bound graph compiled without the denotation variable.
		projection = "*"
	}

	query := prefixHeader + fmt.Sprintf(selectShell, projection, body.String())
	if len(orderTerms) > 0 {
		// An extremal query returns at most one row by construction.
		query += fmt.Sprintf("ORDER BY %s LIMIT 1\n", strings.Join(orderTerms, " "))
	} else {
		query += fmt.Sprintf("LIMIT %d\n", GlobalResultLimit)
	}
	return query, nil
}

// FreeVariables reproduces the projection set Assemble would emit for the
// graph, without doing any template work. Callers use it to tell which
// result columns carry relation identifiers and which carry entities.
func FreeVariables(g *graph.Graph, includeRelations, includeEntities, includeQuestion bool) []string {
	vars := []string{}
	for i, e := range g.EdgeSet {
		if includeRelations {
			if e.KBID == "" {
				if e.Type != "" {
					vars = append(vars, relationVar(i, e.Type))
				} else {
					vars = append(vars,
						relationVar(i, graph.Direct),
						relationVar(i, graph.Reverse),
						relationVar(i, graph.VStructure),
					)
				}
			}
			if e.HopUp != nil && *e.HopUp == "" {
				vars = append(vars, hopValueVar(i))
			}
		}
		if includeEntities && e.RightKBID == "" {
			vars = append(vars, entityVar(i))
		}
	}
	if includeQuestion {
		vars = append(vars, questionVar)
	}
	return vars
}
