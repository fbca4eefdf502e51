package when

// Value holds either a plain value or a niladic supplier of one.
// The zero Value resolves to the zero value of T.
type Value[T any] struct {
	value  T
	supply func() T
}

func Func[T any](supply func() T) Value[T] {
	return Value[T]{supply: supply}
}

func Val[T any](value T) Value[T] {
	return Value[T]{value: value}
}

// Lazy reports whether resolving v invokes a supplier.
func (v Value[T]) Lazy() bool {
	return v.supply != nil
}

// Resolve invokes the supplier if there is one, otherwise returns the plain value.
func (v Value[T]) Resolve() T {
	if v.supply != nil {
		return v.supply()
	}
	return v.value
}

func (v Value[T]) resolveAny() any {
	return v.Resolve()
}
