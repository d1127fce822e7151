package dataset

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// member is one key/value pair of a JSON object, in document order.
type member struct {
	Key   string
	Value json.RawMessage
}

// object is a decoded JSON object that remembers key order.
type object []member

// decodeObject returns the members of raw in document order, or false if
// raw is not a JSON object.
func decodeObject(raw json.RawMessage) (object, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}

	var obj object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return obj, false
		}
		key, ok := tok.(string)
		if !ok {
			return obj, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return obj, false
		}
		obj = append(obj, member{Key: key, Value: value})
	}
	return obj, true
}

// get returns the last value stored under key, matching JSON semantics
// for duplicate keys.
func (o object) get(key string) (json.RawMessage, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// decodeArray returns the elements of raw, or nil if raw is not an array.
func decodeArray(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// asString returns raw as a string, or "" for anything else.
func asString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// asInt returns raw as an integer count. Numbers are truncated toward
// zero, numeric strings are accepted, everything else is 0.
func asInt(raw json.RawMessage) int64 {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0
	}

	var text string
	switch n := v.(type) {
	case json.Number:
		text = n.String()
	case string:
		text = strings.TrimSpace(n)
	default:
		return 0
	}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

// wrappedValue unwraps the `{"value": x}` envelope used by every scalar
// field of an area record.
func wrappedValue(o object, key string) (json.RawMessage, bool) {
	raw, ok := o.get(key)
	if !ok {
		return nil, false
	}
	inner, ok := decodeObject(raw)
	if !ok {
		return nil, false
	}
	return inner.get("value")
}
