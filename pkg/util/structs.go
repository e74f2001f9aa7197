package util

import "reflect"

// IsNil reports whether v is nil or a typed nil of a nillable kind
// (pointer, interface, map, slice, channel, func). Zero values of
// other kinds are never nil.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	}
	return false
}
