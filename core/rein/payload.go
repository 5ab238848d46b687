package rein

import (
	"bytes"
	"encoding/json"
	"strings"

	"rein-stock/core/utils"
)

// RawObject is a JSON object whose fields are decoded lazily.
// The ERP is inconsistent about key names and value types (Id/intId/id,
// numbers as strings), so every normalized field is read through a fixed
// priority list of source keys.
type RawObject map[string]json.RawMessage

// ProductPage is one decoded page of the product listing endpoint.
type ProductPage struct {
	// Page is the 1-based page number that was requested.
	Page int
	// Items holds the raw product objects in payload order.
	Items []RawObject
	// Count is the number of entries in the payload's item list, including
	// any that could not be decoded as objects.
	Count int
	// TotalItems is the total reported by the API, or 0 when absent.
	TotalItems int
}

type listEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// decodePage reads a listing body. data may be an object holding items or a
// bare item list. Pagination fields are optional and never fail the page.
func decodePage(page int, body []byte) (*ProductPage, error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	var data RawObject
	if err := json.Unmarshal(env.Data, &items); err != nil {
		items = nil
		if err := json.Unmarshal(env.Data, &data); err == nil {
			items = data.Raw("items")
		}
	}

	out := &ProductPage{
		Page:  page,
		Items: make([]RawObject, 0, len(items)),
		Count: len(items),
	}
	for _, raw := range items {
		var obj RawObject
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		out.Items = append(out.Items, obj)
	}

	if pag := data.Object("paginacao"); pag != nil {
		out.TotalItems = pag.Int("totalItems", "total")
	}
	if out.TotalItems == 0 {
		out.TotalItems = data.Int("total")
	}

	return out, nil
}

// value returns the first key that is present and not null.
func (o RawObject) value(keys ...string) (any, bool) {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok || isNull(raw) {
			continue
		}
		return decodeScalar(raw), true
	}
	return nil, false
}

// String returns the first non-empty textual value among keys.
// Numbers are rendered as they appear in the payload.
func (o RawObject) String(keys ...string) string {
	for _, k := range keys {
		v, ok := o.value(k)
		if !ok {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		if s := utils.ToString(v); s != "" {
			return s
		}
	}
	return ""
}

// Int returns the first non-zero numeric value among keys.
// Missing or non-numeric values count as zero.
func (o RawObject) Int(keys ...string) int {
	for _, k := range keys {
		v, ok := o.value(k)
		if !ok {
			continue
		}
		if n := utils.ToInt(v); n != 0 {
			return n
		}
	}
	return 0
}

// Object decodes key as a nested object, or nil when it is anything else.
func (o RawObject) Object(key string) RawObject {
	var obj RawObject
	if err := json.Unmarshal(o[key], &obj); err != nil {
		return nil
	}
	return obj
}

// Objects decodes key as an array of objects, skipping anything else.
func (o RawObject) Objects(key string) []RawObject {
	var items []json.RawMessage
	if err := json.Unmarshal(o[key], &items); err != nil {
		return nil
	}

	out := make([]RawObject, 0, len(items))
	for _, raw := range items {
		var obj RawObject
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// Raw returns the elements of the array at key without decoding them.
func (o RawObject) Raw(key string) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(o[key], &items); err != nil {
		return nil
	}
	return items
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func decodeScalar(raw json.RawMessage) any {
	if isNull(raw) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return v
}
