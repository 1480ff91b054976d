// Package typeinfo answers layout questions about element types that the
// container packages need at construction time.
package typeinfo

import "reflect"

// HasPointers reports whether values of type T contain pointers the garbage
// collector must be able to see. Slots holding pointer-free types can be
// dropped without zeroing, and only pointer-free types may live in memory
// the runtime does not scan (e.g. mmap-backed blocks).
func HasPointers[T any]() bool {
	return typeHasPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		if t.Len() == 0 {
			return false
		}
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, strings, slices, maps, channels, funcs, interfaces and
		// unsafe pointers all carry references.
		return true
	}
}
