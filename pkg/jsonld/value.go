// Package jsonld classifies schema.org structured data embedded in web
// pages: root versus nested type usage, authorship, publication dates, and
// live-blog update cadence. All analyses are pure functions over parsed
// blocks and hold no state between pages.
package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind discriminates the variant stored in a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is one key/value pair of a JSON object, in document order.
type Member struct {
	Key   string
	Value *Value
}

// Value is one parsed JSON value. Objects keep their members in document
// order, which the classifier depends on for deterministic first-occurrence
// deduplication. Values are immutable once parsed.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	members []Member
	items   []*Value
}

// Kind reports the variant held by v. A nil Value reads as null, so callers
// can chain Get without guarding every step.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// IsArray reports whether v is a JSON array.
func (v *Value) IsArray() bool { return v.Kind() == KindArray }

// IsString reports whether v is a JSON string.
func (v *Value) IsString() bool { return v.Kind() == KindString }

// Str returns the string value, or "" for any other kind.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}
	return v.str
}

// Num returns the numeric value, or 0 for any other kind.
func (v *Value) Num() float64 {
	if v == nil {
		return 0
	}
	return v.num
}

// Bool returns the boolean value, or false for any other kind.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	return v.boolean
}

// Members returns the object members in document order, or nil when v is
// not an object.
func (v *Value) Members() []Member {
	if v == nil {
		return nil
	}
	return v.members
}

// Items returns the array elements in order, or nil when v is not an array.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	return v.items
}

// Get returns the value of the named member, or nil when v is not an object
// or the key is absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Parse decodes one JSON document into a Value, preserving object member
// order. Content after the end of the document is an error.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := next(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

// ParseBlocks parses each fragment independently. Fragments that fail to
// parse are reported as indexed messages and do not stop the rest of the
// batch.
func ParseBlocks(fragments []string) ([]*Value, []string) {
	blocks := make([]*Value, 0, len(fragments))
	var failures []string
	for i, fragment := range fragments {
		v, err := Parse([]byte(fragment))
		if err != nil {
			failures = append(failures, fmt.Sprintf("block %d: %v", i+1, err))
			continue
		}
		blocks = append(blocks, v)
	}
	return blocks, failures
}

func next(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &Value{kind: KindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := next(dec)
				if err != nil {
					return nil, err
				}
				obj.members = append(obj.members, Member{Key: key, Value: val})
			}
			// Consume the closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Value{kind: KindArray}
			for dec.More() {
				item, err := next(dec)
				if err != nil {
					return nil, err
				}
				arr.items = append(arr.items, item)
			}
			// Consume the closing bracket
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return &Value{kind: KindString, str: t}, nil
	case json.Number:
		// ParseFloat keeps out-of-range literals as +/-Inf instead of
		// failing the whole block.
		f, _ := strconv.ParseFloat(t.String(), 64)
		return &Value{kind: KindNumber, num: f}, nil
	case bool:
		return &Value{kind: KindBool, boolean: t}, nil
	case nil:
		return &Value{kind: KindNull}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
