package core

import "strconv"

// Value identifies an option. It is either text or a number, never both.
type Value struct {
	text    string
	number  float64
	numeric bool
}

func Text(s string) Value {
	return Value{text: s}
}

func Number(n float64) Value {
	return Value{number: n, numeric: true}
}

// Key renders the value as a stable string, suitable for list keys and
// hit-region IDs.
func (v Value) Key() string {
	if v.numeric {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

func (v Value) String() string { return v.Key() }

// Option is an immutable selectable item. Two options are the same option
// when they compare equal with ==.
type Option struct {
	Label string
	Value Value
}
