package marshaler

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/zuhlke/go-yamldoc/ast"
)

// Marshaler is the interface implemented by types that build their own
// document node.
type Marshaler interface {
	MarshalDocument() (ast.Node, error)
}

// Error reports a failure to convert a value of Type into a node.
type Error struct {
	Type reflect.Type
	Err  error
}

func (e *Error) Error() string {
	if e.Type == nil {
		return "yamldoc: cannot marshal value: " + e.Err.Error()
	}
	return "yamldoc: cannot marshal value of type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

// Marshal converts a Go value into a document node.
//
// Strings, booleans and numbers become scalars, slices and arrays become
// sequences, string-keyed maps become maps with sorted keys and structs
// become maps in field declaration order. Nil pointers, interfaces, slices
// and maps become the scalar "null".
func Marshal(v any) (ast.Node, error) {
	m := &marshaler{seen: map[uintptr]bool{}}
	return m.marshal(reflect.ValueOf(v))
}

type marshaler struct {
	// seen holds the pointers on the current descent path.
	seen map[uintptr]bool
}

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func null() ast.Node {
	return ast.NewScalar("null")
}

func (m *marshaler) custom(v reflect.Value) (ast.Node, bool, error) {
	if v.Type().Implements(marshalerType) && v.CanInterface() {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return null(), true, nil
		}
		n, err := v.Interface().(Marshaler).MarshalDocument()
		if err != nil {
			return nil, true, &Error{Type: v.Type(), Err: err}
		}
		// The node may still be held by the implementation.
		n = ast.Clone(n)
		if n == nil {
			return null(), true, nil
		}
		return n, true, nil
	}
	if v.Kind() != reflect.Pointer && reflect.PointerTo(v.Type()).Implements(marshalerType) {
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return m.custom(pv)
	}
	return nil, false, nil
}

// enter records a reference value on the descent path and reports a cycle
// if it is already there.
func (m *marshaler) enter(v reflect.Value) (func(), error) {
	if v.IsNil() {
		return func() {}, nil
	}
	ptr := v.Pointer()
	if m.seen[ptr] {
		return nil, &Error{Type: v.Type(), Err: fmt.Errorf("encountered a cycle via %s", v.Type())}
	}
	m.seen[ptr] = true
	return func() { delete(m.seen, ptr) }, nil
}

func (m *marshaler) marshal(v reflect.Value) (ast.Node, error) {
	if !v.IsValid() {
		return null(), nil
	}

	if n, ok, err := m.custom(v); ok {
		return n, err
	}

	// Follow pointers and interfaces to find the concrete value.
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return null(), nil
		}
		if v.Kind() == reflect.Pointer {
			leave, err := m.enter(v)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		v = v.Elem()
		if n, ok, err := m.custom(v); ok {
			return n, err
		}
	}

	switch v.Kind() {
	case reflect.String:
		return ast.NewScalar(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.NewScalar(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.NewScalar(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32:
		return ast.NewScalar(strconv.FormatFloat(v.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return ast.NewScalar(strconv.FormatFloat(v.Float(), 'g', -1, 64)), nil
	case reflect.Bool:
		return ast.NewScalar(strconv.FormatBool(v.Bool())), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice {
			if v.IsNil() {
				return null(), nil
			}
			leave, err := m.enter(v)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		seq := &ast.Sequence{Items: make([]*ast.Item, 0, v.Len())}
		for i := 0; i < v.Len(); i++ {
			n, err := m.marshal(v.Index(i))
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, ast.Elem(n))
		}
		return seq, nil
	case reflect.Map:
		if v.IsNil() {
			return null(), nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, &Error{Type: v.Type(), Err: fmt.Errorf("map key type must be a string, got %s", v.Type().Key())}
		}
		leave, err := m.enter(v)
		if err != nil {
			return nil, err
		}
		defer leave()

		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		out := &ast.Map{Entries: make([]*ast.Entry, 0, len(keys))}
		for _, key := range keys {
			n, err := m.marshal(v.MapIndex(key))
			if err != nil {
				return nil, err
			}
			out.Entries = append(out.Entries, ast.Pair(key.String(), n))
		}
		return out, nil
	case reflect.Struct:
		fields := cachedFields(v.Type())
		out := &ast.Map{Entries: make([]*ast.Entry, 0, len(fields))}
		for _, f := range fields {
			fv := v.Field(f.idx)
			if f.omitEmpty && isEmptyValue(fv) {
				continue
			}
			n, err := m.marshal(fv)
			if err != nil {
				return nil, err
			}
			e := ast.Pair(f.name, n)
			if f.comment != "" {
				e.WithComment(f.comment)
			}
			out.Entries = append(out.Entries, e)
		}
		return out, nil
	default:
		// nil can be a valid value for some kinds (e.g. chan, func)
		if v.IsZero() {
			return null(), nil
		}
		return nil, &Error{Type: v.Type(), Err: fmt.Errorf("unsupported type")}
	}
}
