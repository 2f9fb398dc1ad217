package service

import (
	"html"
	"strconv"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
)

// Labels is the localized string table used by the summary.
type Labels struct {
	AtLeast string `json:"at_least"`
	WeHave  string `json:"we_have"`
	Of      string `json:"of"`
	InStock string `json:"in_stock"`
	// Units maps a mode to its measurement unit label.
	Units map[model.Mode]string `json:"units"`
}

// LabelsFor loads the summary labels for locale from the translator.
func LabelsFor(t *i18n.Translator, locale string) Labels {
	return Labels{
		AtLeast: t.Translate(i18n.LabelKeyAtLeast, locale),
		WeHave:  t.Translate(i18n.LabelKeyWeHave, locale),
		Of:      t.Translate(i18n.LabelKeyOf, locale),
		InStock: t.Translate(i18n.LabelKeyInStock, locale),
		Units: map[model.Mode]string{
			model.ModeArea:   t.Translate(i18n.UnitKeyArea, locale),
			model.ModeLength: t.Translate(i18n.UnitKeyLength, locale),
			model.ModeMosaic: t.Translate(i18n.UnitKeyMosaic, locale),
		},
	}
}

// DefaultLabels returns the labels of the default locale.
func DefaultLabels() Labels {
	return LabelsFor(i18n.GetTranslator(), i18n.DefaultLocale)
}

// SummaryFormatter turns calculator output into the total, quantity and price strings.
type SummaryFormatter struct {
	labels   Labels
	currency model.CurrencySettings
}

// NewSummaryFormatter creates a formatter. An empty label table falls back to
// the default locale and zero-value currency settings to the default currency.
func NewSummaryFormatter(labels Labels, currency model.CurrencySettings) *SummaryFormatter {
	if labels.Units == nil {
		labels = DefaultLabels()
	}
	return &SummaryFormatter{labels: labels, currency: currency}
}

// Labels returns the formatter's label table.
func (f *SummaryFormatter) Labels() Labels { return f.labels }

// Total renders the coverage of packages, multiplied by multiplier, in the
// unit of mode. It is "-" when there are no packages.
func (f *SummaryFormatter) Total(mode model.Mode, packages int, unitsPerPackage, multiplier float64) string {
	if packages <= 0 {
		return "-"
	}
	return FormatMeasurement(Round2(float64(packages)*unitsPerPackage*multiplier), f.labels.Units[mode])
}

// Price renders the order value of purchasable packages.
func (f *SummaryFormatter) Price(purchasable int, pricePerUnit float64) string {
	if purchasable <= 0 || pricePerUnit <= 0 {
		return "-"
	}
	return FormatCurrency(pricePerUnit*float64(purchasable), f.currency)
}

// Quantity renders the quantity line. When purchasable exceeds packages a
// secondary "at least" note is added; when it falls short the main value
// becomes the "we have N of M in stock" variant.
//
// The shortfall branch compares against the clamped order quantity, not
// against stock on hand, so it also fires when a maximum order bound applies.
func (f *SummaryFormatter) Quantity(packages, purchasable int) model.Summary {
	if packages <= 0 {
		return model.Summary{Quantity: "-", QuantityHTML: "-"}
	}

	needed := strconv.Itoa(packages)
	have := strconv.Itoa(purchasable)

	switch {
	case purchasable > packages:
		note := f.labels.AtLeast + " " + have
		return model.Summary{
			Quantity:     needed,
			QuantityNote: note,
			QuantityHTML: needed + `<br><span class="walp-quantity-note">` + html.EscapeString(note) + `</span>`,
		}
	case purchasable < packages:
		return model.Summary{
			Quantity: f.labels.WeHave + " " + have + " " + f.labels.Of + " " + needed + " " + f.labels.InStock,
			QuantityHTML: html.EscapeString(f.labels.WeHave) + ` <span class="walp-shortfall">` + have + `</span> ` +
				html.EscapeString(f.labels.Of) + " " + needed + " " + html.EscapeString(f.labels.InStock),
			Shortfall: true,
		}
	default:
		return model.Summary{Quantity: needed, QuantityHTML: needed}
	}
}

// Summarize assembles the full summary. coverage is the package count whose
// coverage is shown as the total; it differs from packages only in mosaic mode.
func (f *SummaryFormatter) Summarize(mode model.Mode, coverage, packages, purchasable int, unitsPerPackage, multiplier, pricePerUnit float64) model.Summary {
	s := f.Quantity(packages, purchasable)
	s.Total = f.Total(mode, coverage, unitsPerPackage, multiplier)
	s.Price = f.Price(purchasable, pricePerUnit)
	return s
}
