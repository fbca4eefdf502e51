package when

import (
	"math"
	"reflect"
)

// Eval is the dynamically typed form of When. condition, onTrue and onFalse may each
// be a plain value or a niladic single-result func. Conditions are coerced with Truthy.
func Eval(condition any, onTrue any, onFalse any) any {
	if Truthy(Resolve(condition)) {
		return Resolve(onTrue)
	}
	return Resolve(onFalse)
}

type resolver interface {
	resolveAny() any
}

// Resolve calls v if it is a non-nil func with no parameters and exactly one result.
// A Value is resolved with its own Resolve. Any other value, including funcs of other
// shapes, is returned unchanged.
func Resolve(v any) any {
	switch f := v.(type) {
	case nil:
		return nil
	case resolver:
		return f.resolveAny()
	case func() any:
		if f != nil {
			return f()
		}
		return v
	case func() bool:
		if f != nil {
			return f()
		}
		return v
	}

	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Func || value.IsNil() {
		return v
	}
	t := value.Type()
	if t.NumIn() != 0 || t.IsVariadic() || t.NumOut() != 1 {
		return v
	}
	return value.Call(nil)[0].Interface()
}

// Truthy reports whether v counts as true. Falsy values are nil, typed nils, false,
// numeric zero, NaN and the empty string. Everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Bool:
		return value.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := value.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		c := value.Complex()
		return c != 0 && !math.IsNaN(real(c)) && !math.IsNaN(imag(c))
	case reflect.String:
		return value.Len() > 0
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return !value.IsNil()
	default:
		return true
	}
}
