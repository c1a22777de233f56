package assertion

import "reflect"

// Panics checks that fn panics with a value of dynamic type E.
// Three outcomes are distinguished: fn panics with an E
// (success, empty message), fn panics with any other value
// (failure, the message names the actual type and payload),
// and fn returns normally (failure, the message states that no
// panic occurred). The blockExpr argument is the source text
// of the checked block, used only for diagnostics.
func Panics[E any](blockExpr string, fn func()) (res Result) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if _, ok := rec.(E); ok {
			res = Pass()
			return
		}
		res = Failf(
			"ASSERT_PANICS - Expected a panic of type '%s' "+
				"from the following code:\n  %s\nbut a "+
				"different value was raised: %T(%v)",
			typeName[E](), blockExpr, rec, rec,
		)
	}()

	fn()

	return Failf(
		"ASSERT_PANICS - Expected a panic of type '%s' from "+
			"the following code:\n  %s\nbut no panic occurred",
		typeName[E](), blockExpr,
	)
}

// typeName renders the name of a type parameter, including
// interface types that have no concrete value to inspect.
func typeName[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	return t.String()
}
