package when

// ChooseErr is Choose for suppliers that can fail. Errors are returned as-is.
// A condition error short-circuits before either branch runs.
// A nil condition selects onFalse. A nil selected branch returns the zero T and a nil error.
func ChooseErr[T any](condition func() (bool, error), onTrue func() (T, error), onFalse func() (T, error)) (T, error) {
	var zero T
	ok := false
	if condition != nil {
		var err error
		if ok, err = condition(); err != nil {
			return zero, err
		}
	}
	supply := Ternary(ok, onTrue, onFalse)
	if supply == nil {
		return zero, nil
	}
	return supply()
}
