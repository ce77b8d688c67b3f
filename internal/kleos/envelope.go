package kleos

import "encoding/json"

// Envelope is the outer shape of every Kleos response body.
type Envelope struct {
	Result json.RawMessage `json:"result"`
}

// Shape identifies which of the known list layouts a result payload used.
type Shape string

const (
	ShapeItems Shape = "items" // {"result":{"items":[...]}}
	ShapeData  Shape = "data"  // {"result":{"data":[...]}}
	ShapeArray Shape = "array" // {"result":[...]}
	ShapeNone  Shape = "none"
)

// UnwrapItems extracts the item array from a result payload. The remote API
// is inconsistent about list shapes, so the fallback order is fixed:
// result.items, then result.data, then a bare array. Anything else yields
// an empty list rather than an error, matching how list consumers treat a
// shape they do not recognize.
func UnwrapItems(result json.RawMessage) ([]json.RawMessage, Shape) {
	if len(result) == 0 || string(result) == "null" {
		return nil, ShapeNone
	}

	var wrapped struct {
		Items []json.RawMessage `json:"items"`
		Data  []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(result, &wrapped); err == nil {
		if wrapped.Items != nil {
			return wrapped.Items, ShapeItems
		}
		if wrapped.Data != nil {
			return wrapped.Data, ShapeData
		}
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(result, &bare); err == nil {
		return bare, ShapeArray
	}

	return nil, ShapeNone
}
