package money

// A starter set of ISO 4217 currency tags covering all three precisions.
// Callers are expected to declare further currencies the same way.

// USD is the US Dollar; its minor unit is the cent.
type USD struct{ CentUnits }

// Code returns "USD".
func (USD) Code() string { return "USD" }

// EUR is the Euro; its minor unit is the cent.
type EUR struct{ CentUnits }

// Code returns "EUR".
func (EUR) Code() string { return "EUR" }

// SEK is the Swedish Krona; its minor unit is the öre, 1/100 of a krona.
type SEK struct{ CentUnits }

// Code returns "SEK".
func (SEK) Code() string { return "SEK" }

// JPY is the Japanese Yen; it has no minor unit.
type JPY struct{ MainUnits }

// Code returns "JPY".
func (JPY) Code() string { return "JPY" }

// OMR is the Omani Rial; its minor unit is the baisa, 1/1000 of a rial.
type OMR struct{ MillUnits }

// Code returns "OMR".
func (OMR) Code() string { return "OMR" }

// BHD is the Bahraini Dinar; its minor unit is the fils, 1/1000 of a dinar.
type BHD struct{ MillUnits }

// Code returns "BHD".
func (BHD) Code() string { return "BHD" }
