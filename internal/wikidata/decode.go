package wikidata

import (
	"strings"

	"github.com/samber/lo"
)

// EntityPrefix is the namespace every knowledge-base entity reference
// carries on the wire.
const EntityPrefix = "http://www.wikidata.org/entity/"

// DecodeBindings keeps only rows whose every cell is an entity reference and
// strips the namespace, leaving bare identifiers. Rows with literal-only or
// mixed values are incomplete and dropped.
func DecodeBindings(rows []map[string]Cell) []map[string]string {
	complete := lo.Filter(rows, func(row map[string]Cell, _ int) bool {
		for _, cell := range row {
			if !strings.HasPrefix(cell.Value, EntityPrefix) {
				return false
			}
		}
		return true
	})
	return lo.Map(complete, func(row map[string]Cell, _ int) map[string]string {
		decoded := make(map[string]string, len(row))
		for name, cell := range row {
			decoded[name] = strings.TrimPrefix(cell.Value, EntityPrefix)
		}
		return decoded
	})
}
