package selstore

import (
	"reflect"
	"strings"
)

// FindIndex returns the index of the first item for which fn returns
// true, or -1.
func (s *Store[T]) FindIndex(fn func(T) bool) int {
	for i, item := range s.items.Get() {
		if fn(item) {
			return i
		}
	}
	return -1
}

// FindIndexBy returns the index of the first item whose property name
// is defined and equal to value, or -1 if there is none.
//
// For struct items the property is the exported field called name, or
// the field whose json or yaml tag is name. For map items it is the
// entry keyed by name. Properties holding nil, and values that cannot
// be compared, never match.
func (s *Store[T]) FindIndexBy(name string, value any) int {
	return s.FindIndex(func(item T) bool {
		prop, ok := property(item, name)
		if !ok {
			return false
		}
		return strictEqual(prop, value)
	})
}

func property(item any, name string) (any, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	var fv reflect.Value
	switch rv.Kind() {
	case reflect.Struct:
		fv = structField(rv, name)
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		fv = rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
	}

	if !fv.IsValid() || !fv.CanInterface() {
		return nil, false
	}
	v := fv.Interface()
	if v == nil {
		return nil, false
	}
	return v, true
}

func structField(rv reflect.Value, name string) reflect.Value {
	rt := rv.Type()
	if sf, ok := rt.FieldByName(name); ok {
		// promoted through a nil embedded pointer: not defined
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}
		}
		return f
	}

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		for _, key := range []string{"json", "yaml"} {
			tag, _, _ := strings.Cut(sf.Tag.Get(key), ",")
			if tag == name {
				return rv.Field(i)
			}
		}
	}
	return reflect.Value{}
}

func strictEqual(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
