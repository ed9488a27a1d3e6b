package selstore

import (
	"reflect"

	"github.com/pkg/errors"
)

// isObject reports whether v is a non-nil structured object: a map, or
// a pointer to a struct or map. The returned kind describes v for
// error messages.
func isObject(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return "nil", false
	case reflect.Map:
		if rv.IsNil() {
			return "nil map", false
		}
		return "", true
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil pointer", false
		}
		switch ek := rv.Elem().Kind(); ek {
		case reflect.Struct, reflect.Map:
			return "", true
		default:
			return "pointer to " + ek.String(), false
		}
	default:
		return rv.Kind().String(), false
	}
}

// validateItems checks every item and returns a private copy of items.
func validateItems[T any](items []T) ([]T, error) {
	for i, item := range items {
		if kind, ok := isObject(item); !ok {
			return nil, errors.Wrapf(ErrInvalidItems, "item %d is a %s", i, kind)
		}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, nil
}

func validateSelected(selected []int, size int) ([]int, error) {
	for i, idx := range selected {
		if idx < 0 || idx >= size {
			return nil, errors.Wrapf(ErrInvalidSelected, "index %d (at position %d) is out of range [0, %d)", idx, i, size)
		}
	}
	out := make([]int, len(selected))
	copy(out, selected)
	return out, nil
}

// sameItem reports whether a and b are the same object. Items are
// compared by reference, never by content.
func sameItem(a, b any) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	default:
		return false
	}
}
