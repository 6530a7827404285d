package money

import "fmt"

// Role is the constraint satisfied by cost role tags.
//
// A role tag is a zero-size struct distinguishing kinds of costs that are
// otherwise shaped alike: a [Price] and a [Shipping] cost of equal currency
// and amount are still distinct types and cannot be substituted for one
// another. Callers declare further roles the same way:
//
//	type Handling struct{}
//
//	func (Handling) RoleName() string { return "handling" }
type Role interface {
	// RoleName returns the human-readable name of the role, such as "price".
	RoleName() string
}

// Price is the role of the cost of goods themselves.
type Price struct{}

// RoleName returns "price".
func (Price) RoleName() string { return "price" }

// Shipping is the role of a delivery cost.
type Shipping struct{}

// RoleName returns "shipping".
func (Shipping) RoleName() string { return "shipping" }

// Cost type represents an obligation of a given currency and role: an
// amount still to be paid. Its zero value is a settled cost of zero units.
//
// Unlike [Money], a Cost is a pure value: copyable, comparable with ==
// against costs of the same currency, role, and width, and not consumed by
// inspection. After a payment, only the cost returned in [Change.LeftToPay]
// reflects the remaining obligation.
type Cost[C Currency, R Role, V Unsigned] struct {
	amount Amount[C, V]
}

// NewCost returns a cost of the given role holding the given count of the
// currency's smallest units.
//
// NewCost returns an error if the count does not fit the storage width V.
func NewCost[C Currency, R Role, V Unsigned](subunits uint64) (Cost[C, R, V], error) {
	a, err := NewAmount[C, V](subunits)
	if err != nil {
		return Cost[C, R, V]{}, fmt.Errorf("creating %s cost: %w", roleOf[R]().RoleName(), err)
	}
	return Cost[C, R, V]{amount: a}, nil
}

// MustNewCost is like [NewCost] but panics if the cost cannot be
// constructed. It simplifies initialization in tests and examples.
func MustNewCost[C Currency, R Role, V Unsigned](subunits uint64) Cost[C, R, V] {
	c, err := NewCost[C, R, V](subunits)
	if err != nil {
		panic(fmt.Sprintf("NewCost(%v) failed: %v", subunits, err))
	}
	return c
}

// CostFromMainUnits returns a cost of the given role holding n main units
// of the currency, scaled to smallest units by the currency's precision
// factor.
func CostFromMainUnits[C Currency, R Role, V Unsigned](n uint64) (Cost[C, R, V], error) {
	a, err := FromMainUnits[C, V](n)
	if err != nil {
		return Cost[C, R, V]{}, fmt.Errorf("creating %s cost: %w", roleOf[R]().RoleName(), err)
	}
	return Cost[C, R, V]{amount: a}, nil
}

// NewPrice returns a [Price] cost holding the given count of the currency's
// smallest units.
func NewPrice[C Currency, V Unsigned](subunits uint64) (Cost[C, Price, V], error) {
	return NewCost[C, Price, V](subunits)
}

// NewShipping returns a [Shipping] cost holding the given count of the
// currency's smallest units.
func NewShipping[C Currency, V Unsigned](subunits uint64) (Cost[C, Shipping, V], error) {
	return NewCost[C, Shipping, V](subunits)
}

// Amount returns the amount still owed.
func (c Cost[C, R, V]) Amount() Amount[C, V] {
	return c.amount
}

// Role returns the role tag of the cost.
func (c Cost[C, R, V]) Role() R {
	return roleOf[R]()
}

// IsSettled returns:
//
//	true  if nothing is owed
//	false otherwise
func (c Cost[C, R, V]) IsSettled() bool {
	return c.amount.IsZero()
}

// PayWith applies the given money to the cost and returns the change.
// It consumes m: the money's full amount either reduces the obligation or
// comes back in [Change.MoneyBack], exact to the smallest unit.
//
// If the money covers the cost, the change carries a settled cost and,
// when the tender exceeded the obligation, the excess as new money.
// If the money falls short, all of it is applied: the change carries no
// money back and a cost reduced to exactly the shortfall. Underpayment is
// a valid outcome, not an error.
//
// PayWith returns [ErrConsumed], leaving the cost payable, if m has
// already been spent.
func (c Cost[C, R, V]) PayWith(m *Money[C, V]) (Change[C, R, V], error) {
	if m.spent {
		return Change[C, R, V]{}, fmt.Errorf("paying [%v]: %w", c, ErrConsumed)
	}
	m.spent = true

	owed, paid := c.amount, m.amount
	if paid.Cmp(owed) >= 0 {
		back, _ := paid.Sub(owed) // paid >= owed, cannot underflow
		ch := Change[C, R, V]{}
		if !back.IsZero() {
			ch.moneyBack = &Money[C, V]{amount: back}
		}
		return ch, nil
	}

	left, _ := owed.Sub(paid) // owed > paid, cannot underflow
	return Change[C, R, V]{leftToPay: Cost[C, R, V]{amount: left}}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the cost, e.g. "USD 10.00 (price)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Cost[C, R, V]) String() string {
	return c.amount.String() + " (" + roleOf[R]().RoleName() + ")"
}

// Change type represents the result of a payment: the money returned, if
// any, plus whatever remains unpaid. It holds the only live values carried
// forward by a payment; the consumed money and the original cost are dead
// once the change exists.
//
// The change is exact: money back plus the portion applied to the cost
// equals the tendered amount, and the remaining cost plus the portion
// covered equals the original obligation.
type Change[C Currency, R Role, V Unsigned] struct {
	moneyBack *Money[C, V]
	leftToPay Cost[C, R, V]
}

// MoneyBack returns the money left over after the payment, and whether
// there was any. There is none when the tender was at or below the
// obligation.
func (ch Change[C, R, V]) MoneyBack() (*Money[C, V], bool) {
	if ch.moneyBack == nil {
		return nil, false
	}
	return ch.moneyBack, true
}

// LeftToPay returns the remaining obligation; it is settled when the
// payment covered the cost.
func (ch Change[C, R, V]) LeftToPay() Cost[C, R, V] {
	return ch.leftToPay
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (ch Change[C, R, V]) String() string {
	if ch.moneyBack == nil {
		return "no money back, " + ch.leftToPay.String() + " left to pay"
	}
	return ch.moneyBack.String() + " back, " + ch.leftToPay.String() + " left to pay"
}

// roleOf returns the zero value of a role tag, which is the only value a
// tag has.
func roleOf[R Role]() R {
	var r R
	return r
}
