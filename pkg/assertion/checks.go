package assertion

import (
	"cmp"
	"fmt"
)

// True checks that value is true. The expr argument is the
// source text of the checked expression, used only for the
// diagnostic message.
func True(expr string, value bool) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_TRUE - Expected the following to be "+
				"true:\n  '%s': %v",
			expr, value,
		),
		Passed: value,
	}
}

// False checks that value is false.
func False(expr string, value bool) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_FALSE - Expected the following to be "+
				"false:\n  '%s': %v",
			expr, value,
		),
		Passed: !value,
	}
}

// Eq checks that expected and actual are equal.
func Eq[T comparable](
	expectedExpr, actualExpr string,
	expected, actual T,
) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_EQ - Expected the following to be "+
				"equal:\n  '%s': %v\n  '%s': %v",
			expectedExpr, expected, actualExpr, actual,
		),
		Passed: expected == actual,
	}
}

// Ne checks that expected and actual are not equal.
func Ne[T comparable](
	expectedExpr, actualExpr string,
	expected, actual T,
) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_NE - Expected the following to be "+
				"not equal:\n  '%s': %v\n  '%s': %v",
			expectedExpr, expected, actualExpr, actual,
		),
		Passed: expected != actual,
	}
}

// Gt checks that a is greater than b.
func Gt[T cmp.Ordered](aExpr, bExpr string, a, b T) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_GT - Expected the following 'a' to be "+
				"greater than 'b':\n  a: '%s': %v\n  b: '%s': %v",
			aExpr, a, bExpr, b,
		),
		Passed: a > b,
	}
}

// Ge checks that a is greater than or equal to b.
func Ge[T cmp.Ordered](aExpr, bExpr string, a, b T) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_GE - Expected the following 'a' to be "+
				"greater than or equal to 'b':\n  a: '%s': %v"+
				"\n  b: '%s': %v",
			aExpr, a, bExpr, b,
		),
		Passed: a >= b,
	}
}

// Lt checks that a is less than b.
func Lt[T cmp.Ordered](aExpr, bExpr string, a, b T) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_LT - Expected the following 'a' to be "+
				"less than 'b':\n  a: '%s': %v\n  b: '%s': %v",
			aExpr, a, bExpr, b,
		),
		Passed: a < b,
	}
}

// Le checks that a is less than or equal to b.
func Le[T cmp.Ordered](aExpr, bExpr string, a, b T) Result {
	return Result{
		Message: fmt.Sprintf(
			"ASSERT_LE - Expected the following 'a' to be "+
				"less than or equal to 'b':\n  a: '%s': %v"+
				"\n  b: '%s': %v",
			aExpr, a, bExpr, b,
		),
		Passed: a <= b,
	}
}
