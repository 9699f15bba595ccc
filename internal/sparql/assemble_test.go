package sparql

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiss2smiles/wdqa/internal/graph"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestAssemble_ReverseBoundArgmax(t *testing.T) {
	g := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Reverse, KBID: "P35v", RightKBID: "Q155", Argmax: "time"},
	}}

	query, err := Assemble(g, true)
	require.NoError(t, err)
	newGoldie(t).Assert(t, "reverse_bound_argmax", []byte(query))
}

func TestAssemble_LabelUnionEdge(t *testing.T) {
	g := &graph.Graph{
		Tokens:  []string{"missouri"},
		EdgeSet: []graph.Edge{{Right: []int{0}}},
	}

	query, err := Assemble(g, true)
	require.NoError(t, err)
	newGoldie(t).Assert(t, "label_union_edge", []byte(query))
}

func TestAssemble_DirectHopAny(t *testing.T) {
	g := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Direct, RightKBID: "Q30", HopUp: lo.ToPtr("")},
	}}

	query, err := Assemble(g, true)
	require.NoError(t, err)
	newGoldie(t).Assert(t, "direct_hop_any", []byte(query))
}

func TestAssemble_Deterministic(t *testing.T) {
	g := &graph.Graph{
		Tokens: []string{"who", "rules", "belgium"},
		EdgeSet: []graph.Edge{
			{Right: []int{2}},
			{Type: graph.Direct, KBID: "P17v", RightKBID: "Q31"},
		},
	}

	first, err := Assemble(g, true)
	require.NoError(t, err)
	second, err := Assemble(g, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssemble_ConcurrentUse(t *testing.T) {
	g := &graph.Graph{
		Tokens:  []string{"where", "is", "missouri"},
		EdgeSet: []graph.Edge{{Right: []int{2}}},
	}
	expected, err := Assemble(g, true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				query, err := Assemble(g, true)
				assert.NoError(t, err)
				assert.Equal(t, expected, query)
			}
		}()
	}
	wg.Wait()
}

func TestAssemble_BoundHop(t *testing.T) {
	g := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.VStructure, KBID: "P47v", RightKBID: "Q96", HopUp: lo.ToPtr("P131v")},
	}}

	query, err := Assemble(g, true)
	require.NoError(t, err)
	assert.Contains(t, query, "[ e:P131s [ e:P131v e:Q96 ] ]")
	assert.NotContains(t, query, "VALUES")
	assert.NotContains(t, query, "?hopv0")
}

func TestAssemble_ShapeCoverage(t *testing.T) {
	typed := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Direct, KBID: "P17v", RightKBID: "Q155"},
	}}
	query, err := Assemble(typed, true)
	require.NoError(t, err)
	assert.Equal(t, 0, strings.Count(query, "UNION"))
	assert.Equal(t, 1, strings.Count(query, "GRAPH <http://wikidata.org/statements>"))

	untyped := &graph.Graph{EdgeSet: []graph.Edge{
		{KBID: "P17v", RightKBID: "Q155"},
	}}
	query, err = Assemble(untyped, true)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(query, "UNION"))
	assert.Equal(t, 3, strings.Count(query, "GRAPH <http://wikidata.org/statements>"))
}

func TestAssemble_ExtremalClause(t *testing.T) {
	argmax := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Reverse, KBID: "P35v", RightKBID: "Q155", Argmax: "time"},
	}}
	query, err := Assemble(argmax, true)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "ORDER BY DESC(?n0) LIMIT 1\n"))

	argmin := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Reverse, KBID: "P35v", RightKBID: "Q155", Argmin: "time"},
	}}
	query, err = Assemble(argmin, true)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "ORDER BY ASC(?n0) LIMIT 1\n"))

	plain := &graph.Graph{EdgeSet: []graph.Edge{
		{Type: graph.Reverse, KBID: "P35v", RightKBID: "Q155"},
	}}
	query, err = Assemble(plain, true)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "LIMIT 1000\n"))
	assert.NotContains(t, query, "ORDER BY")
}

// placeholderPattern matches every variable and blank-node label emitted
// into a query.
var placeholderPattern = regexp.MustCompile(`\?[A-Za-z]\w*|_:m\d+`)

func TestAssemble_CrossEdgePlaceholderUniqueness(t *testing.T) {
	g := &graph.Graph{
		Tokens: []string{"missouri", "kansas"},
		EdgeSet: []graph.Edge{
			{Right: []int{0}},
			{Type: graph.Direct, Right: []int{1}},
		},
	}

	query, err := Assemble(g, true)
	require.NoError(t, err)

	found := lo.Uniq(placeholderPattern.FindAllString(query, -1))
	expected := []string{
		// edge 0 (untyped, label-derived)
		"?e20", "?p0", "?r0d", "?r0r", "?r0v", "_:m0",
		// edge 1 (direct, label-derived)
		"?e21", "?p1", "?m1", "?r1d",
		// shared question variable
		"?e1",
	}
	assert.ElementsMatch(t, expected, found)
}

func TestFreeVariables_MatchesProjection(t *testing.T) {
	g := &graph.Graph{
		Tokens: []string{"missouri"},
		EdgeSet: []graph.Edge{
			{Right: []int{0}},
			{Type: graph.Direct, RightKBID: "Q30", HopUp: lo.ToPtr("")},
			{Type: graph.Reverse, KBID: "P35v", RightKBID: "Q155"},
		},
	}

	query, err := Assemble(g, true)
	require.NoError(t, err)

	start := strings.Index(query, "SELECT DISTINCT ") + len("SELECT DISTINCT ")
	end := strings.Index(query, " WHERE")
	projected := strings.Fields(query[start:end])

	assert.Equal(t, FreeVariables(g, true, true, true), projected)
}

func TestFreeVariables_Flags(t *testing.T) {
	g := &graph.Graph{
		Tokens: []string{"missouri"},
		EdgeSet: []graph.Edge{
			{Right: []int{0}},
		},
	}

	assert.Equal(t,
		[]string{"?r0d", "?r0r", "?r0v", "?e20", "?e1"},
		FreeVariables(g, true, true, true))
	assert.Equal(t,
		[]string{"?e20"},
		FreeVariables(g, false, true, false))
	assert.Equal(t,
		[]string{"?r0d", "?r0r", "?r0v"},
		FreeVariables(g, true, false, false))
	assert.Equal(t,
		[]string{"?e1"},
		FreeVariables(g, false, false, true))
}

func TestAssemble_InvalidGraph(t *testing.T) {
	_, err := Assemble(&graph.Graph{}, true)
	assert.Error(t, err)

	_, err = Assemble(&graph.Graph{EdgeSet: []graph.Edge{
		{RightKBID: "Q155", Argmax: "time"},
	}}, true)
	assert.Error(t, err)
}
