package money

import "errors"

var (
	// ErrOverflow indicates that a construction or an arithmetic operation
	// would exceed the capacity of the chosen storage width.
	ErrOverflow = errors.New("amount overflow")

	// ErrUnderflow indicates that a subtraction would produce a negative
	// amount. Underpaying a cost is not an underflow; it is a valid outcome
	// represented in the returned [Change].
	ErrUnderflow = errors.New("amount underflow")

	// ErrConsumed indicates a use of [Money] after it has been transferred
	// into a consuming operation.
	ErrConsumed = errors.New("money already consumed")

	// ErrUnsupportedSubunit indicates an amount expressed in a granularity
	// finer than the currency's precision licenses.
	ErrUnsupportedSubunit = errors.New("unsupported subunit")

	// ErrInvalidAmount indicates input that cannot denote a non-negative
	// monetary quantity.
	ErrInvalidAmount = errors.New("invalid amount")
)
