package wikidata

import (
	"bufio"
	"os"
	"strings"

	"github.com/samber/lo"
)

// LabelMap maps a knowledge-base identifier to its known aliases.
type LabelMap map[string][]string

// LoadEntityMap reads a two-column tab-separated file (identifier, alias)
// into a multimap. A missing or unreadable file is a degraded mode, not a
// fatal one: callers log the error and continue with an empty map.
func LoadEntityMap(path string) (LabelMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels := LabelMap{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "\t", 2)
		if len(parts) != 2 {
			continue
		}
		id, alias := parts[0], parts[1]
		labels[id] = append(labels[id], alias)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

// Canonicalize fans each identifier out into its lower-cased aliases. An
// identifier with no alias falls back to its lower-cased self, so the output
// length may differ from the input length.
func (m LabelMap) Canonicalize(ids []string) []string {
	return lo.FlatMap(ids, func(id string, _ int) []string {
		aliases, ok := m[id]
		if !ok {
			return []string{strings.ToLower(id)}
		}
		return lo.Map(aliases, func(alias string, _ int) string {
			return strings.ToLower(alias)
		})
	})
}
