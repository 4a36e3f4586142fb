package models

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindList
)

// Value is one raw field as it arrived from the store: absent, a string, a
// number or a list. Normalizers switch on Kind and fall back to a default
// for anything they cannot use.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	List []Value
}

// Absent is the zero Value.
var Absent = Value{}

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

func List(items ...Value) Value { return Value{Kind: KindList, List: items} }

// ValueOf converts a decoded JSON/CSV/DB value into a Value. nil, NaN and
// unsupported types (objects) become Absent.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Absent
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return String(cast.ToString(t))
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, ValueOf(item))
		}
		return List(items...)
	case []string:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, String(item))
		}
		return List(items...)
	case []float64:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, Number(item))
		}
		return List(items...)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return Absent
	}
	return Number(f)
}

// IsAbsent reports whether the field carries nothing usable. Blank strings
// count as absent.
func (v Value) IsAbsent() bool {
	switch v.Kind {
	case KindAbsent:
		return true
	case KindString:
		return strings.TrimSpace(v.Str) == ""
	}
	return false
}

// Text renders the value as a string: strings verbatim, numbers without
// exponent, lists joined with ", ", absent as "".
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return cast.ToString(v.Num)
	case KindList:
		parts := make([]string, 0, len(v.List))
		for _, item := range v.List {
			parts = append(parts, item.Text())
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// Any converts back to a plain Go value, the inverse of ValueOf.
func (v Value) Any() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindList:
		out := make([]any, 0, len(v.List))
		for _, item := range v.List {
			out = append(out, item.Any())
		}
		return out
	}
	return nil
}
