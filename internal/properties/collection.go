package properties

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	Bucket = "properties"
	Key    = "properties.json"
)

var ErrUnknownAction = errors.New("unknown action")

// Collection is the full ordered list of properties, persisted as one JSON
// array. Every write replaces the whole document (last writer wins).
type Collection []Property

// Decode parses the stored document. A missing or empty object is an empty
// collection, not an error.
func Decode(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse properties document: %w", err)
	}
	return c, nil
}

// Encode renders the document the way it is stored: a pretty-printed JSON
// array with two-space indentation.
func (c Collection) Encode() ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return json.MarshalIndent(c, "", "  ")
}

// Apply returns the collection after one mutation. Order is preserved.
//   - add appends the record as-is, no duplicate or id check
//   - edit replaces every record whose coerced id matches; no match leaves
//     the collection unchanged
//   - delete removes every record whose coerced id matches
func (c Collection) Apply(action string, p Property) (Collection, error) {
	switch action {
	case "add":
		return append(c, p), nil
	case "edit":
		id := p.ID()
		out := make(Collection, len(c))
		for i, existing := range c {
			if existing.ID() == id {
				out[i] = p
			} else {
				out[i] = existing
			}
		}
		return out, nil
	case "delete":
		id := p.ID()
		out := make(Collection, 0, len(c))
		for _, existing := range c {
			if existing.ID() != id {
				out = append(out, existing)
			}
		}
		return out, nil
	default:
		return nil, ErrUnknownAction
	}
}
