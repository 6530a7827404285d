package money

import "fmt"

// Money type represents funds actually held: an owned, non-duplicable
// [Amount]. Creating Money is the only way funds enter the system.
//
// Money is move-only. Passing it to [Money.Combine], [Pay], or
// [Cost.PayWith] consumes it, and any later use of the consumed value
// fails with [ErrConsumed]. No operation can produce two live Money values
// backed by the same funds. Go cannot reject such reuse at compile time,
// so consumption is tracked at run time in the value itself, which is why
// Money is handled through a pointer.
//
// A *Money must be owned by exactly one goroutine at a time; ownership
// transfer is the only sharing mechanism.
type Money[C Currency, V Unsigned] struct {
	amount Amount[C, V]
	spent  bool
}

// NewMoney returns money holding the given count of the currency's
// smallest units.
//
// NewMoney returns an error if the count does not fit the storage width V.
func NewMoney[C Currency, V Unsigned](subunits uint64) (*Money[C, V], error) {
	a, err := NewAmount[C, V](subunits)
	if err != nil {
		return nil, fmt.Errorf("creating money: %w", err)
	}
	return &Money[C, V]{amount: a}, nil
}

// MustNewMoney is like [NewMoney] but panics if the money cannot be
// constructed. It simplifies initialization in tests and examples.
func MustNewMoney[C Currency, V Unsigned](subunits uint64) *Money[C, V] {
	m, err := NewMoney[C, V](subunits)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v) failed: %v", subunits, err))
	}
	return m
}

// MoneyFromMainUnits returns money holding n main units of the currency,
// scaled to smallest units by the currency's precision factor.
func MoneyFromMainUnits[C Currency, V Unsigned](n uint64) (*Money[C, V], error) {
	a, err := FromMainUnits[C, V](n)
	if err != nil {
		return nil, fmt.Errorf("creating money: %w", err)
	}
	return &Money[C, V]{amount: a}, nil
}

// Amount returns the held quantity without consuming the money.
//
// Amount returns [ErrConsumed] if the money has already been spent.
func (m *Money[C, V]) Amount() (Amount[C, V], error) {
	if m.spent {
		return Amount[C, V]{}, fmt.Errorf("reading amount: %w", ErrConsumed)
	}
	return m.amount, nil
}

// IsSpent reports whether the money has been consumed by [Money.Combine],
// [Pay], or [Cost.PayWith].
func (m *Money[C, V]) IsSpent() bool {
	return m.spent
}

// Equal reports whether m and other hold the same amount. Comparing is a
// borrow; it does not consume either operand.
//
// Equal returns [ErrConsumed] if either operand has been spent.
func (m *Money[C, V]) Equal(other *Money[C, V]) (bool, error) {
	if m.spent || other.spent {
		return false, fmt.Errorf("comparing [%v] and [%v]: %w", m, other, ErrConsumed)
	}
	return m.amount == other.amount, nil
}

// Combine consumes both m and other and returns one money value holding
// their summed amount.
//
// Combine returns an error if:
//   - either operand is already consumed, or both are the same value
//     ([ErrConsumed]); the live operand, if any, is left intact;
//   - the sum exceeds the capacity of the storage width V ([ErrOverflow]).
//     In that case both operands remain consumed and no result is produced:
//     an overflowing combination destroys the attempt rather than silently
//     succeeding partially.
func (m *Money[C, V]) Combine(other *Money[C, V]) (*Money[C, V], error) {
	if m == other {
		return nil, fmt.Errorf("combining money with itself: %w", ErrConsumed)
	}
	if m.spent || other.spent {
		return nil, fmt.Errorf("combining [%v] and [%v]: %w", m, other, ErrConsumed)
	}
	m.spent, other.spent = true, true

	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return nil, fmt.Errorf("combining: %w", err)
	}
	return &Money[C, V]{amount: sum}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the money, e.g. "USD 10.14", or "USD (consumed)" once
// the money has been spent.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m *Money[C, V]) String() string {
	if m.spent {
		return currOf[C]().Code() + " (consumed)"
	}
	return m.amount.String()
}

// Pay applies money m to the given cost and returns the change.
// It consumes m; see [Cost.PayWith] for the payment algorithm.
//
// Pay is the function form of what would naturally be a Money method:
// a Go method cannot introduce the cost's role as an extra type parameter.
func Pay[C Currency, R Role, V Unsigned](m *Money[C, V], cost Cost[C, R, V]) (Change[C, R, V], error) {
	return cost.PayWith(m)
}
