// Package qa runs the full answer pipeline for one candidate graph:
// compile to SPARQL, execute, decode the bindings, canonicalize.
package qa

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/kiss2smiles/wdqa/internal/graph"
	"github.com/kiss2smiles/wdqa/internal/sparql"
	"github.com/kiss2smiles/wdqa/internal/wikidata"
)

// Transport executes a compiled query against the knowledge base.
type Transport interface {
	Select(ctx context.Context, query string) ([]map[string]wikidata.Cell, error)
}

// Result is the outcome of answering one graph. Failed marks a backend
// fault, so callers can tell "no answer found" from "store unreachable"
// even though both carry an empty answer list.
type Result struct {
	Answers []string `json:"answers"`
	Failed  bool     `json:"-"`
}

// Answerer holds the pipeline's collaborators explicitly; there is no
// ambient client or alias-table state.
type Answerer struct {
	transport Transport
	labels    wikidata.LabelMap
	logger    *slog.Logger
}

func NewAnswerer(transport Transport, labels wikidata.LabelMap, logger *slog.Logger) *Answerer {
	return &Answerer{
		transport: transport,
		labels:    labels,
		logger:    logger,
	}
}

// Denotations compiles the graph with the denotation variable projected,
// executes it, and decodes the surviving binding rows. Transport faults are
// returned as errors; an invalid graph fails before any network round trip.
func (a *Answerer) Denotations(ctx context.Context, g *graph.Graph) ([]map[string]string, error) {
	query, err := sparql.Assemble(g, true)
	if err != nil {
		return nil, err
	}
	rows, err := a.transport.Select(ctx, query)
	if err != nil {
		return nil, err
	}
	return wikidata.DecodeBindings(rows), nil
}

// Answer resolves the graph's denotation and maps each entity identifier to
// its canonical answer strings. A backend fault degrades to an empty,
// Failed-flagged result; only a contract violation (invalid graph) is an
// error.
func (a *Answerer) Answer(ctx context.Context, g *graph.Graph) (*Result, error) {
	query, err := sparql.Assemble(g, true)
	if err != nil {
		return nil, err
	}
	rows, err := a.transport.Select(ctx, query)
	if err != nil {
		a.logger.WarnContext(ctx, "knowledge base query failed", "error", err)
		return &Result{Answers: []string{}, Failed: true}, nil
	}
	ids := lo.FilterMap(wikidata.DecodeBindings(rows), func(row map[string]string, _ int) (string, bool) {
		id, ok := row["e1"]
		return id, ok
	})
	answers := a.labels.Canonicalize(ids)
	if answers == nil {
		answers = []string{}
	}
	return &Result{Answers: answers}, nil
}
