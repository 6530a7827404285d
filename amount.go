package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Unsigned is the set of storage widths an [Amount] can be backed by.
// The caller picks a width large enough for its domain: uint16 may do for
// shipping fees, while national-debt-scale sums need uint64.
type Unsigned = constraints.Unsigned

// Amount type represents a non-negative quantity of a currency's smallest
// unit: cents for [USD], baisa for [OMR], whole yen for [JPY].
// Its zero value corresponds to zero units of currency C.
//
// Amount is a pure value: it is copyable, comparable with == against
// amounts of the same currency and width, and none of its operations
// mutate the receiver. All arithmetic is overflow- and underflow-checked.
type Amount[C Currency, V Unsigned] struct {
	value V // count of smallest units
}

// NewAmount returns an amount holding the given count of the currency's
// smallest units.
//
// NewAmount returns an error if the count does not fit the storage width V.
// There is no way to construct a negative amount.
func NewAmount[C Currency, V Unsigned](subunits uint64) (Amount[C, V], error) {
	v, ok := narrow[V](subunits)
	if !ok {
		return Amount[C, V]{}, fmt.Errorf("converting %d %s subunits: %w", subunits, currOf[C]().Code(), ErrOverflow)
	}
	return Amount[C, V]{value: v}, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be
// constructed. It simplifies safe initialization of global variables
// holding amounts.
func MustNewAmount[C Currency, V Unsigned](subunits uint64) Amount[C, V] {
	a, err := NewAmount[C, V](subunits)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v) failed: %v", subunits, err))
	}
	return a
}

// FromMainUnits returns an amount equal to n main units of the currency,
// scaled to smallest units by the currency's precision factor.
//
// FromMainUnits returns an error if the scaled count overflows uint64 or
// does not fit the storage width V.
func FromMainUnits[C Currency, V Unsigned](n uint64) (Amount[C, V], error) {
	f := currOf[C]().Precision().Factor()
	if n > math.MaxUint64/f {
		return Amount[C, V]{}, fmt.Errorf("scaling %d %s main units: %w", n, currOf[C]().Code(), ErrOverflow)
	}
	return NewAmount[C, V](n * f)
}

// FromCents returns an amount holding the given count of cents.
// It exists only for currencies whose precision is [Cent]; for any other
// currency the call does not compile.
func FromCents[C CentCurrency, V Unsigned](cents uint64) (Amount[C, V], error) {
	return NewAmount[C, V](cents)
}

// FromMills returns an amount holding the given count of mills.
// It exists only for currencies whose precision is [Mill]; for any other
// currency the call does not compile.
func FromMills[C MillCurrency, V Unsigned](mills uint64) (Amount[C, V], error) {
	return NewAmount[C, V](mills)
}

// ParseAmount converts a decimal string, such as "10.14", to an amount in
// the currency's smallest units. The conversion is exact: no rounding takes
// place at any point.
//
// ParseAmount returns an error if:
//   - the string is not a valid decimal number;
//   - the number is negative ([ErrInvalidAmount]);
//   - the number has more fractional digits than the currency's precision
//     licenses ([ErrUnsupportedSubunit]), e.g. "1.5" for [JPY];
//   - the scaled count does not fit the storage width V ([ErrOverflow]).
func ParseAmount[C Currency, V Unsigned](s string) (Amount[C, V], error) {
	c := currOf[C]()

	d, err := decimal.Parse(s)
	if err != nil {
		return Amount[C, V]{}, fmt.Errorf("parsing %s amount %q: %w", c.Code(), s, err)
	}
	if d.IsNeg() {
		return Amount[C, V]{}, fmt.Errorf("parsing %s amount %q: negative: %w", c.Code(), s, ErrInvalidAmount)
	}
	if d.MinScale() > c.Precision().Scale() {
		return Amount[C, V]{}, fmt.Errorf("parsing %s amount %q: %v precision: %w", c.Code(), s, c.Precision(), ErrUnsupportedSubunit)
	}

	whole, frac, ok := d.Int64(c.Precision().Scale())
	if !ok {
		return Amount[C, V]{}, fmt.Errorf("parsing %s amount %q: %w", c.Code(), s, ErrOverflow)
	}
	f := c.Precision().Factor()
	if uint64(whole) > (math.MaxUint64-uint64(frac))/f {
		return Amount[C, V]{}, fmt.Errorf("parsing %s amount %q: %w", c.Code(), s, ErrOverflow)
	}
	return NewAmount[C, V](uint64(whole)*f + uint64(frac))
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// amounts.
func MustParseAmount[C Currency, V Unsigned](s string) Amount[C, V] {
	a, err := ParseAmount[C, V](s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// Subunits returns the count of the currency's smallest units held by the
// amount.
func (a Amount[C, V]) Subunits() V {
	return a.value
}

// Curr returns the currency tag of the amount.
func (a Amount[C, V]) Curr() C {
	return currOf[C]()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount[C, V]) IsZero() bool {
	return a.value == 0
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts of different currencies or different storage widths are not
// comparable; such a comparison does not compile.
func (a Amount[C, V]) Cmp(b Amount[C, V]) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the sum exceeds the capacity of the storage
// width V. The result never wraps around.
func (a Amount[C, V]) Add(b Amount[C, V]) (Amount[C, V], error) {
	sum := a.value + b.value
	if sum < a.value {
		return Amount[C, V]{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrOverflow)
	}
	return Amount[C, V]{value: sum}, nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if a < b. The result is never negative.
func (a Amount[C, V]) Sub(b Amount[C, V]) (Amount[C, V], error) {
	if a.value < b.value {
		return Amount[C, V]{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrUnderflow)
	}
	return Amount[C, V]{value: a.value - b.value}, nil
}

// Mul returns the product of amount a and factor e.
//
// Mul returns an error if the product exceeds the capacity of the storage
// width V.
func (a Amount[C, V]) Mul(e V) (Amount[C, V], error) {
	if a.value == 0 || e == 0 {
		return Amount[C, V]{}, nil
	}
	prod := a.value * e
	if prod/e != a.value {
		return Amount[C, V]{}, fmt.Errorf("computing [%v * %v]: %w", a, e, ErrOverflow)
	}
	return Amount[C, V]{value: prod}, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified
// number of parts, the remainder is distributed, one subunit each, among
// the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount[C, V]) Split(parts int) ([]Amount[C, V], error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %d parts: %w: number of parts must be positive", a, parts, ErrInvalidAmount)
	}
	quo := uint64(a.value) / uint64(parts)
	rem := uint64(a.value) % uint64(parts)

	res := make([]Amount[C, V], parts)
	for i := range res {
		u := quo
		if uint64(i) < rem {
			u++
		}
		// u never exceeds a.value, so it fits V.
		res[i] = Amount[C, V]{value: V(u)}
	}
	return res, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, e.g. "USD 10.14", "JPY 5", "OMR 1.000".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount[C, V]) String() string {
	c := currOf[C]()

	var buf [32]byte
	pos := len(buf) - 1
	coef := uint64(a.value)
	scale := c.Precision().Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Delimiter
	buf[pos] = ' '
	pos--

	// Currency
	code := c.Code()
	for i := len(code) - 1; i >= 0; i-- {
		buf[pos] = code[i]
		pos--
	}

	return string(buf[pos+1:])
}

// narrow converts a uint64 count to the storage width V, reporting whether
// the value survives the conversion unchanged.
func narrow[V Unsigned](u uint64) (V, bool) {
	v := V(u)
	if uint64(v) != u {
		return 0, false
	}
	return v, true
}
