package model

// SymbolPosition says where the currency symbol goes relative to the amount.
type SymbolPosition string

const (
	SymbolLeft       SymbolPosition = "left"
	SymbolLeftSpace  SymbolPosition = "left_space"
	SymbolRight      SymbolPosition = "right"
	SymbolRightSpace SymbolPosition = "right_space"
)

// CurrencySettings mirrors the storefront's price formatting options.
//
// @Description Currency formatting settings
type CurrencySettings struct {
	Symbol            string         `json:"symbol" example:"zł"`
	Position          SymbolPosition `json:"position" example:"right_space"`
	DecimalSeparator  string         `json:"decimal_separator" example:","`
	ThousandSeparator string         `json:"thousand_separator" example:" "`
	Decimals          int            `json:"decimals" example:"2"`
} // @name CurrencySettings

// DefaultCurrency is used whenever no currency settings are supplied.
func DefaultCurrency() CurrencySettings {
	return CurrencySettings{
		Symbol:            "zł",
		Position:          SymbolRightSpace,
		DecimalSeparator:  ",",
		ThousandSeparator: " ",
		Decimals:          2,
	}
}

// IsZero reports whether no setting was provided at all.
func (c CurrencySettings) IsZero() bool {
	return c == CurrencySettings{}
}
