package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
)

// PriceDisplay is the product page price block.
//
// @Description Formatted product price block
type PriceDisplay struct {
	// Primary is the main price line, e.g. "47,96 zł/m²" or "12,50 zł/piece".
	Primary string `json:"primary" example:"47,96 zł/m²"`
	// PerPackage is the package price line, set for area products.
	PerPackage string `json:"per_package,omitempty" example:"119,90 zł/package"`
	// PiecesInPackage is set for area products with a known piece count.
	PiecesInPackage string `json:"pieces_in_package,omitempty" example:"8 pcs. in package"`
	// UnitPrice is the numeric price per square meter, per piece or per package.
	UnitPrice string `json:"unit_price" example:"47.96"`
	// Availability is the stock line, empty when stock is not tracked.
	Availability string `json:"availability,omitempty" example:"1000+ in stock"`
} // @name PriceDisplay

// PriceDisplayer builds price blocks for one locale and currency.
type PriceDisplayer struct {
	translator     *i18n.Translator
	locale         string
	currency       model.CurrencySettings
	stockThreshold int
}

// NewPriceDisplayer creates a displayer. Stock above stockThreshold is shown
// as "<threshold>+ in stock"; a non-positive threshold disables the cap.
func NewPriceDisplayer(t *i18n.Translator, locale string, currency model.CurrencySettings, stockThreshold int) *PriceDisplayer {
	if t == nil {
		t = i18n.GetTranslator()
	}
	return &PriceDisplayer{
		translator:     t,
		locale:         locale,
		currency:       currency,
		stockThreshold: stockThreshold,
	}
}

// Display renders the price block for product.
func (d *PriceDisplayer) Display(product model.ProductConfiguration) PriceDisplay {
	product = product.Normalize()
	price := decimal.NewFromFloat(product.PricePerUnit)
	out := PriceDisplay{Availability: d.Availability(product.StockOnHand)}

	switch {
	case product.Mode == model.ModeArea && product.UnitsPerPackage > 0:
		perUnit := price.Div(decimal.NewFromFloat(product.UnitsPerPackage))
		unitPrice, _ := perUnit.Round(int32(d.decimals())).Float64()

		out.UnitPrice = perUnit.StringFixed(int32(d.decimals()))
		out.Primary = FormatCurrency(unitPrice, d.currency) + "/" + d.t(i18n.UnitKeyArea)
		out.PerPackage = FormatCurrency(product.PricePerUnit, d.currency) + "/" + d.t(i18n.LabelKeyPerPackage)
		if product.PiecesPerPackage > 0 {
			out.PiecesInPackage = strconv.Itoa(product.PiecesPerPackage) + " " + d.t(i18n.LabelKeyPcsInPackage)
		}
	case product.Mode == model.ModeLength && product.UnitsPerPackage > 0:
		out.UnitPrice = price.StringFixed(int32(d.decimals()))
		out.Primary = FormatCurrency(product.PricePerUnit, d.currency) + "/" + d.t(i18n.LabelKeyPerPiece)
	default:
		out.UnitPrice = price.StringFixed(int32(d.decimals()))
		out.Primary = FormatCurrency(product.PricePerUnit, d.currency)
	}

	return out
}

// Availability renders the stock line: "" for untracked stock, the capped
// "<threshold>+ in stock" above the threshold, otherwise "<n> in stock".
func (d *PriceDisplayer) Availability(stock *int) string {
	if stock == nil {
		return ""
	}
	inStock := d.t(i18n.LabelKeyInStock)
	if d.stockThreshold > 0 && *stock > d.stockThreshold {
		return strconv.Itoa(d.stockThreshold) + "+ " + inStock
	}
	if *stock < 0 {
		return "0 " + inStock
	}
	return strconv.Itoa(*stock) + " " + inStock
}

func (d *PriceDisplayer) t(key string) string {
	return d.translator.Translate(key, d.locale)
}

func (d *PriceDisplayer) decimals() int {
	places := d.currency.Decimals
	if d.currency.IsZero() {
		places = model.DefaultCurrency().Decimals
	}
	if places < 0 {
		return 0
	}
	return places
}
