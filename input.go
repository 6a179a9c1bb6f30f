package peg

import (
	"reflect"
)

// Indexer can be implemented by custom input collections to be parsed positionally.
type Indexer interface {
	Len() int
	Index(i int) any
}

// Attributer can be implemented by custom objects to expose named attributes to Get.
type Attributer interface {
	Attr(name string) (any, bool)
}

// Input is a value being parsed.
//
// Indexable values (strings, slices, arrays, Sequence results and Indexer implementations) are
// parsed positionally. Strings are indexed by rune. Any other value is a single object that can
// be inspected with This, Get, TypeOf and At.
type Input struct {
	value any
	elems Indexer
}

// NewInput adapts v for parsing.
func NewInput(v any) Input {
	if in, ok := v.(Input); ok {
		return in
	}
	return Input{value: v, elems: indexerOf(v)}
}

func indexerOf(v any) Indexer {
	switch v := v.(type) {
	case nil:
		return nil
	case Indexer:
		return v
	case string:
		return runes([]rune(v))
	case []rune:
		return runes(v)
	case Sequence:
		return results(v.Items)
	case Labelled:
		return indexerOf(v.Result)
	case Result:
		return indexerOf(v.Unpack())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectIndexer{rv}
	}
	return nil
}

// Value returns the value being parsed, as passed to NewInput.
func (in Input) Value() any { return in.value }

// Object returns the plain value being parsed, unpacking it if it is a Result.
func (in Input) Object() any { return unpack(in.value) }

// Len returns the number of elements in the input, or false if it is not indexable.
func (in Input) Len() (int, bool) {
	if in.elems == nil {
		return 0, false
	}
	return in.elems.Len(), true
}

// Index returns the element at i, or false if there is none.
func (in Input) Index(i int) (any, bool) {
	if in.elems == nil || i < 0 || i >= in.elems.Len() {
		return nil, false
	}
	return in.elems.Index(i), true
}

// Attr returns the named attribute of the value being parsed.
//
// Attributes are exported struct fields (through pointers), string keyed map entries, or
// whatever an Attributer exposes.
func (in Input) Attr(name string) (any, bool) {
	return attr(in.value, name)
}

func attr(v any, name string) (any, bool) {
	if a, ok := v.(Attributer); ok {
		return a.Attr(name)
	}
	v = unpack(v)
	if a, ok := v.(Attributer); ok {
		return a.Attr(name)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			return nil, false
		}
		value, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return value.Interface(), true

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	}
	return nil, false
}

func unpack(v any) any {
	if r, ok := v.(Result); ok {
		return r.Unpack()
	}
	return v
}

type runes []rune

func (r runes) Len() int        { return len(r) }
func (r runes) Index(i int) any { return r[i] }

type results []Result

func (r results) Len() int        { return len(r) }
func (r results) Index(i int) any { return r[i] }

type reflectIndexer struct {
	v reflect.Value
}

func (r reflectIndexer) Len() int        { return r.v.Len() }
func (r reflectIndexer) Index(i int) any { return r.v.Index(i).Interface() }
