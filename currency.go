package money

// Precision type enumerates the subunit granularity of a currency.
// The currently supported granularities follow [ISO 4217] minor units:
//   - [Main] for currencies without minor units, such as the Japanese Yen;
//   - [Cent] for currencies whose minor unit is 1/100 of the main unit,
//     such as the US Dollar;
//   - [Mill] for currencies whose minor unit is 1/1000 of the main unit,
//     such as the Omani Rial.
//
// A currency has exactly one precision for its entire lifetime; it is fixed
// by the precision marker the currency type embeds.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Precision uint8

const (
	Main Precision = iota
	Cent
	Mill
)

// Scale returns the number of digits after the decimal point required for
// representing the minor unit: 0, 2, or 3.
func (p Precision) Scale() int {
	switch p {
	case Cent:
		return 2
	case Mill:
		return 3
	default:
		return 0
	}
}

// Factor returns the number of smallest units in one main unit: 1, 100,
// or 1000.
func (p Precision) Factor() uint64 {
	switch p {
	case Cent:
		return 100
	case Mill:
		return 1000
	default:
		return 1
	}
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Precision value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Precision) String() string {
	switch p {
	case Cent:
		return "cent"
	case Mill:
		return "mill"
	default:
		return "main"
	}
}

// Currency is the constraint satisfied by currency tag types.
//
// A currency tag is a zero-size struct declared by the caller; it embeds one
// of the precision markers ([MainUnits], [CentUnits], [MillUnits]) and
// implements Code. The tag carries no data at run time: it exists so that
// the type system keeps amounts of different currencies apart. Two tags are
// the same currency if and only if they are the same Go type.
//
// See [USD], [JPY], and [OMR] for predeclared examples.
type Currency interface {
	// Code returns the symbolic code of the currency, such as "EUR".
	Code() string

	// Precision returns the subunit granularity of the currency.
	// It is provided by the embedded precision marker.
	Precision() Precision
}

// CentCurrency is the subset of currencies whose precision licenses a cent
// constructor. It is satisfiable only by embedding [CentUnits].
type CentCurrency interface {
	Currency
	centSubunits()
}

// MillCurrency is the subset of currencies whose precision licenses a mill
// constructor. It is satisfiable only by embedding [MillUnits].
type MillCurrency interface {
	Currency
	millSubunits()
}

// MainUnits marks a currency without minor units.
// Only main-unit construction is licensed for such a currency.
type MainUnits struct{}

// Precision returns [Main].
func (MainUnits) Precision() Precision { return Main }

// CentUnits marks a currency whose smallest unit is 1/100 of the main unit.
type CentUnits struct{}

// Precision returns [Cent].
func (CentUnits) Precision() Precision { return Cent }

func (CentUnits) centSubunits() {}

// MillUnits marks a currency whose smallest unit is 1/1000 of the main unit.
type MillUnits struct{}

// Precision returns [Mill].
func (MillUnits) Precision() Precision { return Mill }

func (MillUnits) millSubunits() {}

// currOf returns the zero value of a currency tag, which is the only value
// a tag has.
func currOf[C Currency]() C {
	var c C
	return c
}
