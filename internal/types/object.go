// internal/types/object.go
package types

import (
	"fmt"
	"strconv"
)

// ObjectID identifies a canvas object for the lifetime of an editing session.
// The zero value means "no object". IDs are never reused.
type ObjectID uint64

// Handle is an opaque reference into the canvas' object set.
type Handle uint64

// Property names a mutable visual property of a text label.
type Property int

const (
	FontFamily Property = iota
	FontSize
	FontWeight
	FontStyle
	Underline
	Left
	Top
)

var propertyNames = [...]string{
	FontFamily: "fontFamily",
	FontSize:   "fontSize",
	FontWeight: "fontWeight",
	FontStyle:  "fontStyle",
	Underline:  "underline",
	Left:       "left",
	Top:        "top",
}

// Properties lists every known property in declaration order.
func Properties() []Property {
	return []Property{FontFamily, FontSize, FontWeight, FontStyle, Underline, Left, Top}
}

func (p Property) String() string {
	if p.Valid() {
		return propertyNames[p]
	}
	return "Property(" + strconv.Itoa(int(p)) + ")"
}

// Valid reports whether p is one of the known properties.
func (p Property) Valid() bool {
	return p >= FontFamily && p <= Top
}

// Kind returns the value kind the property holds.
func (p Property) Kind() ValueKind {
	switch p {
	case FontSize, Left, Top:
		return KindNumber
	case Underline:
		return KindBool
	case FontFamily, FontWeight, FontStyle:
		return KindString
	}
	return KindInvalid
}

// ParseProperty maps a property name such as "fontSize" back to its Property.
func ParseProperty(name string) (Property, error) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", name)
}

// ValueKind is the type tag carried by a Value.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindString
	KindNumber
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	}
	return "invalid"
}

// Value is a statically tagged property value.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	flag bool
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps n.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind returns the value's type tag. The zero Value has KindInvalid.
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string { return v.str }

// Number returns the numeric payload, or 0 for other kinds.
func (v Value) Number() float64 { return v.num }

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool { return v.flag }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	}
	return true
}

// Fits reports whether the value has the kind p expects.
func (v Value) Fits(p Property) bool {
	return v.kind != KindInvalid && v.kind == p.Kind()
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return "<invalid>"
}
