// Package catalog indexes operation definitions for group selection and id lookup.
package catalog

import "github.com/mamadbah2/agrocalc/internal/domain/models"

// Index groups operations by main group and resolves them by id. It is built once
// per catalog snapshot and never updated in place.
type Index struct {
	groups  []string
	byGroup map[string][]models.OperationDefinition
	byID    map[string]models.OperationDefinition
}

// NewIndex builds an index over ops, preserving their order inside each group.
func NewIndex(ops []models.OperationDefinition) *Index {
	idx := &Index{
		byGroup: make(map[string][]models.OperationDefinition),
		byID:    make(map[string]models.OperationDefinition, len(ops)),
	}

	for _, op := range ops {
		if _, seen := idx.byGroup[op.MainGroup]; !seen {
			idx.groups = append(idx.groups, op.MainGroup)
		}
		idx.byGroup[op.MainGroup] = append(idx.byGroup[op.MainGroup], op)
		idx.byID[op.ID] = op
	}

	return idx
}

// Groups returns the main groups in first-seen order.
func (i *Index) Groups() []string {
	out := make([]string, len(i.groups))
	copy(out, i.groups)
	return out
}

// ByGroup returns the operations of a main group in catalog order.
func (i *Index) ByGroup(group string) []models.OperationDefinition {
	ops := i.byGroup[group]
	out := make([]models.OperationDefinition, len(ops))
	copy(out, ops)
	return out
}

// Lookup resolves an operation id.
func (i *Index) Lookup(id string) (models.OperationDefinition, bool) {
	op, ok := i.byID[id]
	return op, ok
}

// Len reports how many distinct operation ids are indexed.
func (i *Index) Len() int {
	return len(i.byID)
}
