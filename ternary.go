package when

func Ternary[T any](condition bool, truthy T, falsy T) T {
	if condition {
		return truthy
	}
	return falsy
}

func TernaryFunc[T any](condition bool, truthy func() T, falsy func() T) T {
	return Choose(Val(condition), Func(truthy), Func(falsy))
}
