package types

import (
	"sort"
	"strings"
)

// NotFound is the sentinel reported by scalar fields when no strategy succeeds
const NotFound = "Not found"

// Kind distinguishes the variants a Value can hold
type Kind int

const (
	// KindNone marks a field whose extractor faulted
	KindNone Kind = iota
	// KindText is a plain string value (possibly NotFound)
	KindText
	// KindList is an ordered list of strings (possibly empty)
	KindList
)

// Value is the extracted value for one field
type Value struct {
	Kind  Kind
	Text  string
	Items []string
}

// Result maps field name to extracted value
type Result map[string]Value

// Text creates a scalar value
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NotFoundText creates the scalar not-found sentinel value
func NotFoundText() Value {
	return Text(NotFound)
}

// TextOrNotFound returns the sentinel when s is blank
func TextOrNotFound(s string) Value {
	if strings.TrimSpace(s) == "" {
		return NotFoundText()
	}
	return Text(s)
}

// List creates a list value preserving the given order
func List(items []string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{Kind: KindList, Items: out}
}

// SortedSet creates a list value from items, deduplicated and sorted
func SortedSet(items []string) Value {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return Value{Kind: KindList, Items: out}
}

// None creates the value recorded for a faulted extractor
func None() Value {
	return Value{Kind: KindNone}
}

// IsNone reports whether the extractor for this value faulted
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// Found reports whether the value carries real content
func (v Value) Found() bool {
	switch v.Kind {
	case KindText:
		return v.Text != "" && v.Text != NotFound
	case KindList:
		return len(v.Items) > 0
	default:
		return false
	}
}

// Len returns the number of list items, or 1 for a found scalar
func (v Value) Len() int {
	switch v.Kind {
	case KindList:
		return len(v.Items)
	case KindText:
		if v.Found() {
			return 1
		}
	}
	return 0
}

// Join renders the value as a single string, joining list items with sep
func (v Value) Join(sep string) string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindList:
		return strings.Join(v.Items, sep)
	default:
		return ""
	}
}

// String renders the value for display
func (v Value) String() string {
	if v.Kind == KindList && len(v.Items) == 0 {
		return NotFound
	}
	if v.Kind == KindNone {
		return "<none>"
	}
	return v.Join(", ")
}

// Fields returns the field names of the result in sorted order
func (r Result) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
