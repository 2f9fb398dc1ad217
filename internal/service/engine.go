package service

import (
	"math"
	"slices"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// MarginOptions is the safety margin menu offered to the shopper.
//
// @Description Margin menu
type MarginOptions struct {
	Options []int `json:"options" example:"0,5,10"`
	Default int   `json:"default" example:"10"`
} // @name MarginOptions

// DefaultMarginOptions returns the 0/5/10 menu with 10% preselected.
func DefaultMarginOptions() MarginOptions {
	return MarginOptions{Options: []int{0, 5, 10}, Default: 10}
}

// Resolve returns percent when it is on the menu, otherwise the default.
func (m MarginOptions) Resolve(percent int) int {
	if len(m.Options) == 0 {
		if percent < 0 {
			return 0
		}
		return percent
	}
	if slices.Contains(m.Options, percent) {
		return percent
	}
	return m.Default
}

// Reconciler is the calculator state machine as seen by its callers.
type Reconciler interface {
	Init() model.CalculationResult
	Apply(state model.CalculationState, event model.Event) model.CalculationResult
	Product() model.ProductConfiguration
	Margins() MarginOptions
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFormatter sets the summary formatter.
func WithFormatter(f *SummaryFormatter) EngineOption {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

// WithMargins sets the margin menu.
func WithMargins(m MarginOptions) EngineOption {
	return func(e *Engine) {
		e.margins = m
	}
}

// Engine reconciles dimensions, measurement and package count for one product.
// Every event recomputes the whole state from the edited field and the
// product configuration; nothing is remembered between calls.
type Engine struct {
	product   model.ProductConfiguration
	calc      *Calculator
	formatter *SummaryFormatter
	margins   MarginOptions
}

// NewEngine creates an engine for product.
func NewEngine(product model.ProductConfiguration, opts ...EngineOption) *Engine {
	e := &Engine{
		product: product,
		calc:    NewCalculator(product),
		margins: DefaultMarginOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.formatter == nil {
		e.formatter = NewSummaryFormatter(DefaultLabels(), model.CurrencySettings{})
	}
	return e
}

// Product returns the configuration the engine was built with.
func (e *Engine) Product() model.ProductConfiguration { return e.product }

// Margins returns the margin menu.
func (e *Engine) Margins() MarginOptions { return e.margins }

// Calculator exposes the conversion calculator.
func (e *Engine) Calculator() *Calculator { return e.calc }

// Init returns the page-load state: the minimum order with the default margin.
func (e *Engine) Init() model.CalculationResult {
	state := model.CalculationState{MarginPercent: e.margins.Default}
	return e.Apply(state, model.PackagesChanged(float64(e.calc.MinOrderQty())))
}

// Apply processes one field edit and returns the recomputed state and summary.
func (e *Engine) Apply(state model.CalculationState, event model.Event) model.CalculationResult {
	if e.product.Inert() {
		return model.CalculationResult{
			State:      state,
			Summary:    model.EmptySummary(),
			Submission: model.Submission{Mode: e.product.Mode},
			Inert:      true,
		}
	}

	event.Value, event.Length, event.Width = finite(event.Value), finite(event.Length), finite(event.Width)
	state.Length, state.Width = finite(state.Length), finite(state.Width)
	state.Measurement, state.MosaicQty = finite(state.Measurement), finite(state.MosaicQty)

	state.MarginPercent = e.margins.Resolve(state.MarginPercent)
	if event.Trigger == model.TriggerMarginChanged {
		state.MarginPercent = e.margins.Resolve(int(event.Value))
	}

	switch e.product.Mode {
	case model.ModeArea:
		return e.applyArea(state, event)
	case model.ModeLength:
		return e.applyLength(state, event)
	default:
		return e.applyMosaic(state, event)
	}
}

func (e *Engine) applyArea(s model.CalculationState, ev model.Event) model.CalculationResult {
	switch ev.Trigger {
	case model.TriggerDimensions:
		s.Length, s.Width = ev.Length, ev.Width
		return e.areaFromDimensions(s)
	case model.TriggerMarginChanged:
		return e.areaFromDimensions(s)
	case model.TriggerMeasurement:
		s.Measurement = ev.Value
		if s.Measurement <= 0 {
			return e.empty(s)
		}
		s.Packages = e.packagesOrMin(s.Measurement)
		return e.finish(s)
	case model.TriggerPackages:
		return e.finish(e.fromPackages(s, ev.Value))
	}
	return e.finish(s)
}

func (e *Engine) areaFromDimensions(s model.CalculationState) model.CalculationResult {
	if s.Length <= 0 || s.Width <= 0 || math.IsInf(s.Length*s.Width*MarginMultiplier(s.MarginPercent), 0) {
		return e.empty(s)
	}
	area := e.calc.AreaFromDimensions(s.Length, s.Width, s.MarginPercent)
	s.Packages = e.packagesOrMin(area)
	if area <= 0 {
		area = e.calc.MeasurementFromPackages(float64(s.Packages))
	}
	s.Measurement = area
	return e.finish(s)
}

func (e *Engine) applyLength(s model.CalculationState, ev model.Event) model.CalculationResult {
	switch ev.Trigger {
	case model.TriggerDimensions:
		s.Length = ev.Length
	case model.TriggerMeasurement:
		s.Length = ev.Value
	case model.TriggerPackages:
		s = e.fromPackages(s, ev.Value)
		s.Length = s.Measurement
		return e.finish(s)
	case model.TriggerMarginChanged:
	default:
		return e.finish(s)
	}

	s.Measurement = s.Length
	if s.Measurement <= 0 {
		return e.empty(s)
	}
	s.Packages = e.packagesOrMin(s.Measurement)
	return e.finish(s)
}

func (e *Engine) applyMosaic(s model.CalculationState, ev model.Event) model.CalculationResult {
	switch ev.Trigger {
	case model.TriggerMosaicQty:
		return e.mosaicFromQty(s, ev.Value)
	case model.TriggerMosaicMeasurement, model.TriggerMeasurement:
		return e.mosaicFromMeasurement(s, ev.Value)
	case model.TriggerDimensions:
		s.Length, s.Width = ev.Length, ev.Width
		if s.Length <= 0 || s.Width <= 0 || math.IsInf(s.Length*s.Width, 0) {
			return e.empty(s)
		}
		return e.mosaicFromMeasurement(s, Round2(s.Length*s.Width))
	case model.TriggerPackages:
		s = e.fromPackages(s, ev.Value)
		s.MosaicQty = float64(s.Packages)
		s.Measurement = e.calc.MosaicMeasurementFromQty(s.MosaicQty)
		return e.mosaicFinish(s, s.Packages)
	case model.TriggerMarginChanged:
		qty := s.MosaicQty
		if qty <= 0 {
			qty = float64(e.calc.MinOrderQty())
		}
		return e.mosaicFinish(s, int(math.Ceil(math.Min(qty, maxPackages))))
	}
	return e.mosaicFinish(s, int(math.Ceil(math.Min(math.Max(s.MosaicQty, 0), maxPackages))))
}

func (e *Engine) mosaicFromQty(s model.CalculationState, qty float64) model.CalculationResult {
	if qty <= 0 {
		qty = float64(e.calc.MinOrderQty())
	}
	s.MosaicQty = math.Min(qty, maxPackages)
	s.Measurement = e.calc.MosaicMeasurementFromQty(s.MosaicQty)
	return e.mosaicFinish(s, int(math.Ceil(s.MosaicQty)))
}

func (e *Engine) mosaicFromMeasurement(s model.CalculationState, measurement float64) model.CalculationResult {
	minQty := e.calc.MinOrderQty()
	s.Measurement = measurement
	qty := minQty
	if measurement <= 0 {
		s.Measurement = e.calc.MosaicMeasurementFromQty(float64(minQty))
	} else if q := e.calc.MosaicQtyFromMeasurement(measurement); q > 0 {
		qty = q
	}
	s.MosaicQty = float64(qty)
	return e.mosaicFinish(s, qty)
}

// mosaicFinish applies the margin to the coverage of base pieces, re-divides
// it into whole pieces and renders the total from base with the margin.
func (e *Engine) mosaicFinish(s model.CalculationState, base int) model.CalculationResult {
	upp := e.calc.UnitsPerPackage()
	multiplier := MarginMultiplier(s.MarginPercent)

	final := e.calc.PackagesFromMeasurement(float64(base) * upp * multiplier)
	if final <= 0 {
		final = e.calc.MinOrderQty()
	}
	s.Packages = final
	s.PurchasableQty = e.calc.ClampOrderQty(final)

	summary := e.formatter.Summarize(model.ModeMosaic, base, s.Packages, s.PurchasableQty, upp, multiplier, e.product.PricePerUnit)
	return e.result(s, summary)
}

// fromPackages treats v as a typed package count: truncated to a whole
// number, replaced by the minimum order when not positive.
func (e *Engine) fromPackages(s model.CalculationState, v float64) model.CalculationState {
	n := e.calc.MinOrderQty()
	if v >= 1 {
		n = int(math.Trunc(math.Min(v, maxPackages)))
	}
	s.Packages = n
	s.Measurement = e.calc.MeasurementFromPackages(float64(n))
	return s
}

// finite maps NaN and infinities to 0 so they take the empty-input path.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func (e *Engine) packagesOrMin(measurement float64) int {
	if n := e.calc.PackagesFromMeasurement(measurement); n > 0 {
		return n
	}
	return e.calc.MinOrderQty()
}

func (e *Engine) finish(s model.CalculationState) model.CalculationResult {
	s.PurchasableQty = e.calc.ClampOrderQty(s.Packages)
	summary := e.formatter.Summarize(e.product.Mode, s.Packages, s.Packages, s.PurchasableQty,
		e.calc.UnitsPerPackage(), 1, e.product.PricePerUnit)
	return e.result(s, summary)
}

// empty renders the minimum order for blank or non-positive input. The
// measurement is cleared so the total shows a dash.
func (e *Engine) empty(s model.CalculationState) model.CalculationResult {
	minQty := e.calc.MinOrderQty()
	s.Packages = minQty
	s.PurchasableQty = minQty
	s.Measurement = 0

	summary := e.formatter.Quantity(minQty, minQty)
	summary.Total = "-"
	summary.Price = e.formatter.Price(minQty, e.product.PricePerUnit)
	return e.result(s, summary)
}

func (e *Engine) result(s model.CalculationState, summary model.Summary) model.CalculationResult {
	return model.CalculationResult{
		State:   s,
		Summary: summary,
		Submission: model.Submission{
			Quantity:        s.PurchasableQty,
			Mode:            e.product.Mode,
			UnitsPerPackage: e.product.UnitsPerPackage,
			Price:           e.product.PricePerUnit,
		},
		ExceedsStock: e.product.ExceedsStock(s.PurchasableQty),
	}
}
