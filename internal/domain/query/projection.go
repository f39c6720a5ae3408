package query

import (
	"encoding/json"
	"slices"

	"natours/internal/errors"
)

// alwaysIncluded survives every include list.
const alwaysIncluded = "id"

// Selects reports whether field is part of the projection.
func (p Projection) Selects(field string) bool {
	if len(p.Include) > 0 {
		return field == alwaysIncluded || slices.Contains(p.Include, field)
	}

	return !slices.Contains(p.Exclude, field)
}

// Apply reduces a serialized document to the projected keys.
func (p Projection) Apply(doc map[string]any) map[string]any {
	if len(p.Include) == 0 && len(p.Exclude) == 0 {
		return doc
	}
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if p.Selects(key) {
			out[key] = value
		}
	}

	return out
}

// Project serializes docs and keeps only the projected keys of each.
func Project[T any](p Projection, docs []T) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "marshal document")
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, errors.Wrap(err, "unmarshal document")
		}
		out = append(out, p.Apply(fields))
	}

	return out, nil
}
