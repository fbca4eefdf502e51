package when

// Branch is the result of When. Exactly one of its two sides is set.
type Branch[T any, U any] struct {
	isTrue  bool
	onTrue  T
	onFalse U
}

func (b Branch[T, U]) False() (U, bool) {
	return b.onFalse, !b.isTrue
}

// Get returns whichever side fired.
func (b Branch[T, U]) Get() any {
	if b.isTrue {
		return b.onTrue
	}
	return b.onFalse
}

func (b Branch[T, U]) IsTrue() bool {
	return b.isTrue
}

func (b Branch[T, U]) True() (T, bool) {
	return b.onTrue, b.isTrue
}

// Choose is When for branches of the same type.
func Choose[T any](condition Value[bool], onTrue Value[T], onFalse Value[T]) T {
	if condition.Resolve() {
		return onTrue.Resolve()
	}
	return onFalse.Resolve()
}

// When resolves condition, then resolves and returns only the branch it selects.
// The other branch is never resolved. Panics raised by suppliers are not recovered.
func When[T any, U any](condition Value[bool], onTrue Value[T], onFalse Value[U]) Branch[T, U] {
	if condition.Resolve() {
		return Branch[T, U]{isTrue: true, onTrue: onTrue.Resolve()}
	}
	return Branch[T, U]{onFalse: onFalse.Resolve()}
}
