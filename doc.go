/*
Package money implements strongly-typed monetary values: currency-tagged
amounts with checked unsigned arithmetic, move-only funds, typed costs,
and an exact payment algorithm.

# Representation

The package is built from four generic types. An [Amount] is a non-negative
integer count of a currency's smallest unit, parameterized by a currency tag
and by the unsigned storage width the caller chooses. [Money] wraps an Amount
and represents funds actually held; it is consumed (spent) by the operations
that transfer it. A [Cost] is an obligation, tagged additionally by a [Role]
such as [Price] or [Shipping], so that two costs of equal currency and value
are still distinct types. A [Change] is the result of a payment: the money
returned, if any, plus whatever remains unpaid.

# Currencies

A currency is declared as a zero-size struct type that embeds one of the
precision markers ([MainUnits], [CentUnits], [MillUnits]) and names its code:

	type CAD struct{ money.CentUnits }

	func (CAD) Code() string { return "CAD" }

Because every operation is parameterized by the currency type, amounts in
different currencies cannot be mixed: there is no operation that accepts both
a CAD value and a USD value, and such code does not compile. The precision
marker decides which constructors exist for the currency. A currency without
subunits embeds [MainUnits] and does not get [FromCents] or [FromMills];
calling them for it is a compile error, not a run-time one.

# Ownership

Money is not duplicable. Passing a *Money to [Money.Combine], [Pay], or
[Cost.PayWith] consumes it; any later use of the same value fails with
[ErrConsumed]. Go has no move semantics, so consumption is tracked at run
time, but the discipline is the same: exactly one live owner per unit of
funds, which also makes data races on a given Money structurally impossible
as long as each value stays on one goroutine.

# Arithmetic

All arithmetic is exact and checked. Storage is unsigned, so negative amounts
are unrepresentable; subtraction below zero fails with [ErrUnderflow] and any
construction or combination exceeding the storage width fails with
[ErrOverflow], never wrapping silently. The payment algorithm accounts for
every subunit tendered: it either reduces the cost or comes back as change.

# Errors

All failures are local, recoverable conditions returned to the caller as
wrapped sentinel errors; the package never terminates the host program
(the Must* constructors panic by request, for static initialization).
*/
package money
