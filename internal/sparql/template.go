// Package sparql compiles semantic graphs into SPARQL queries against the
// Wikidata named-graph layout (<http://wikidata.org/statements> for relation
// statements, <http://wikidata.org/terms> for labels).
package sparql

// The registry below holds every query fragment as a constant with indexed
// Sprintf slots. No function in this file performs substitution; fragments
// are instantiated exactly once per edge by the compiler, from fully
// resolved slot values.
const (
	// prefixHeader is emitted once at the top of every query.
	prefixHeader = "PREFIX e:<http://www.wikidata.org/entity/>\n" +
		"PREFIX rdfs:<http://www.w3.org/2000/01/rdf-schema#>\n" +
		"PREFIX skos:<http://www.w3.org/2004/02/skos/core#>\n"

	// selectShell wraps the concatenated edge fragments.
	// Slots: projection list, body.
	selectShell = "SELECT DISTINCT %s WHERE\n{\n%s}\n"

	// Directional relation fragments. Slots: 1 predicate variable,
	// 2 intermediate node, 3 relation term, 4 right-hand term,
	// 5 restriction (may be empty).
	relationDirect  = "{GRAPH <http://wikidata.org/statements> { ?e1 %[1]s %[2]s . %[2]s %[3]s %[4]s . %[5]s}}\n"
	relationReverse = "{GRAPH <http://wikidata.org/statements> { %[4]s %[1]s %[2]s . %[2]s %[3]s ?e1 . %[5]s}}\n"
	relationVStruct = "{GRAPH <http://wikidata.org/statements> { %[2]s %[1]s %[4]s . %[2]s %[3]s ?e1 . %[5]s}}\n"

	// relationUnion covers all three shapes for an edge without a type.
	// Slots: 1 predicate variable, 2 direct relation term, 3 reverse
	// relation term, 4 v-structure relation term, 5 right-hand term,
	// 6 edge index.
	relationUnion = "{\n" +
		"{GRAPH <http://wikidata.org/statements> { ?e1 %[1]s [ %[2]s %[5]s ] }}\n" +
		"UNION\n" +
		"{GRAPH <http://wikidata.org/statements> { %[5]s %[1]s [ %[3]s ?e1 ] }}\n" +
		"UNION\n" +
		"{GRAPH <http://wikidata.org/statements> { _:m%[6]d %[1]s %[5]s . _:m%[6]d %[4]s ?e1 . }}\n" +
		"}\n"

	// entityLabel resolves a label-derived right-hand entity, matching the
	// literal against both label predicates and excluding disambiguation
	// pages. Slots: 1 entity variable, 2 label literal.
	entityLabel = "{\n" +
		"{GRAPH <http://wikidata.org/terms> { %[1]s rdfs:label \"%[2]s\"@en }}\n" +
		"UNION\n" +
		"{GRAPH <http://wikidata.org/terms> { %[1]s skos:altLabel \"%[2]s\"@en }}\n" +
		"}\n" +
		"FILTER NOT EXISTS { GRAPH <http://wikidata.org/statements> { %[1]s e:P31v e:Q4167410 } }\n"

	// Abstraction-hop wrappers around the right-hand term. hopBound binds
	// the statement/value relation pair derived from a hop identifier
	// (slots: 1 bare property id, 2 inner right-hand term); hopAny leaves
	// both free (slots: 1 edge index, 2 inner right-hand term) and is
	// paired with hopValues restricting the value relation to the allowed
	// abstraction relations (slot: edge index).
	hopBound  = "[ e:%[1]ss [ e:%[1]sv %[2]s ] ]"
	hopAny    = "[ ?hops%[1]d [ ?hopv%[1]d %[2]s ] ]"
	hopValues = "VALUES ?hopv%[1]d { e:P31v e:P131v e:P279v e:P361v }\n"

	// timeRestriction attaches a point-in-time qualifier to the
	// intermediate node for extremal ordering. Slots: 1 intermediate node,
	// 2 edge index. The order-by term is DESC(?n<i>) or ASC(?n<i>).
	timeRestriction = "%[1]s ?a%[2]d [ e:P585q ?n%[2]d ] . "
)

// questionVar is the denotation variable shared by every edge; it is the one
// placeholder deliberately left unsuffixed so edges join on it.
const questionVar = "?e1"

// GlobalResultLimit caps every non-extremal query.
const GlobalResultLimit = 1000
