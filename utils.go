package pkgerrors

import "reflect"

// isNil reports whether err is nil or an interface holding a nil
// pointer (or other nil-able value), such as a (*Error)(nil) returned
// through the error interface. Walking a chain stops at either.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
