package service

import (
	"errors"
	"maps"
	"strconv"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// Form field names. Inputs fire engine events; outputs are written back.
const (
	FieldLength            = "length"
	FieldWidth             = "width"
	FieldMargin            = "margin"
	FieldMeasurement       = "measurement"
	FieldPackages          = "packages"
	FieldMosaicQty         = "mosaic_qty"
	FieldMosaicMeasurement = "mosaic_measurement"

	FieldConfirmedQty = "confirmed_qty"
	FieldTotal        = "total"
	FieldQuantity     = "quantity"
	FieldQuantityHTML = "quantity_html"
	FieldPrice        = "price"
)

// Direction is a stepper button direction.
type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

var (
	// ErrUnknownField is returned for a field the form does not bind.
	ErrUnknownField = errors.New("unknown calculator field")
	// ErrInvalidDirection is returned for a stepper direction other than increment or decrement.
	ErrInvalidDirection = errors.New("invalid stepper direction")
	// ErrNotSteppable is returned when a stepper targets a field without one.
	ErrNotSteppable = errors.New("field has no stepper")
)

// Form binds named text fields to the engine. It owns the calculation state;
// the fields are only its textual projection.
type Form struct {
	engine Reconciler
	fields map[string]string
	state  model.CalculationState
	result model.CalculationResult
}

// NewForm creates a form and runs the page-load calculation.
func NewForm(engine Reconciler) *Form {
	f := &Form{engine: engine, fields: make(map[string]string)}
	f.commit(engine.Init(), "")
	return f
}

// RestoreForm rebuilds a form from previously rendered field values without
// firing any event. An empty field set behaves like NewForm.
func RestoreForm(engine Reconciler, fields map[string]string) *Form {
	if len(fields) == 0 {
		return NewForm(engine)
	}
	f := &Form{engine: engine, fields: maps.Clone(fields)}
	f.state = model.CalculationState{
		Length:         f.number(FieldLength),
		Width:          f.number(FieldWidth),
		MarginPercent:  engine.Margins().Resolve(int(f.number(FieldMargin))),
		Measurement:    f.number(FieldMeasurement),
		Packages:       int(f.number(FieldPackages)),
		PurchasableQty: int(f.number(FieldConfirmedQty)),
		MosaicQty:      f.number(FieldMosaicQty),
	}
	if _, ok := fields[FieldMargin]; !ok {
		f.state.MarginPercent = engine.Margins().Default
	}
	f.result = model.CalculationResult{State: f.state}
	return f
}

// Input stores text as the value of field and fires the matching event.
func (f *Form) Input(field, text string) (model.CalculationResult, error) {
	if !isInputField(field) {
		return model.CalculationResult{}, ErrUnknownField
	}
	f.fields[field] = text

	var ev model.Event
	switch field {
	case FieldLength, FieldWidth:
		ev = model.DimensionsChanged(f.number(FieldLength), f.number(FieldWidth))
	case FieldMargin:
		ev = model.MarginChanged(int(f.number(FieldMargin)))
	case FieldMeasurement:
		ev = model.MeasurementChanged(f.number(FieldMeasurement))
	case FieldPackages:
		ev = model.PackagesChanged(f.number(FieldPackages))
	case FieldMosaicQty:
		ev = model.MosaicQtyChanged(f.number(FieldMosaicQty))
	case FieldMosaicMeasurement:
		ev = model.MosaicMeasurementChanged(f.number(FieldMosaicMeasurement))
	}

	f.commit(f.engine.Apply(f.state, ev), field)
	return f.result, nil
}

// Step increments or decrements field by its step size and re-fires Input.
// Count and dimension fields step by 1, measurement fields by the units per
// package. A decrement never goes below the field minimum.
func (f *Form) Step(field string, dir Direction) (model.CalculationResult, error) {
	if !isInputField(field) {
		return model.CalculationResult{}, ErrUnknownField
	}
	if field == FieldMargin {
		return model.CalculationResult{}, ErrNotSteppable
	}

	step := f.stepSize(field)
	current := f.number(field)
	var next float64
	switch dir {
	case Increment:
		next = Round2(current + step)
	case Decrement:
		next = Round2(current - step)
		if floor := f.fieldMin(field); next < floor {
			next = floor
		}
	default:
		return model.CalculationResult{}, ErrInvalidDirection
	}

	return f.Input(field, formatFieldNumber(next))
}

// Value returns the current text of field.
func (f *Form) Value(field string) string {
	return f.fields[field]
}

// Fields returns a copy of all field values.
func (f *Form) Fields() map[string]string {
	return maps.Clone(f.fields)
}

// State returns the engine state behind the fields.
func (f *Form) State() model.CalculationState {
	return f.state
}

// Result returns the output of the most recent event.
func (f *Form) Result() model.CalculationResult {
	return f.result
}

// Submission returns the add-to-cart fields for the confirmed quantity.
func (f *Form) Submission() model.Submission {
	return f.result.Submission
}

// commit stores the engine output and writes it back into every field except
// the one being edited.
func (f *Form) commit(result model.CalculationResult, edited string) {
	f.result = result
	f.state = result.State
	if result.Inert {
		f.fields[FieldTotal] = result.Summary.Total
		f.fields[FieldQuantity] = result.Summary.Quantity
		f.fields[FieldQuantityHTML] = result.Summary.QuantityHTML
		f.fields[FieldPrice] = result.Summary.Price
		return
	}

	write := func(field, value string) {
		if field != edited {
			f.fields[field] = value
		}
	}

	mode := f.engine.Product().Mode
	write(FieldMargin, strconv.Itoa(f.state.MarginPercent))
	write(FieldMeasurement, formatFieldNumber(f.state.Measurement))
	write(FieldPackages, strconv.Itoa(f.state.Packages))
	if mode == model.ModeLength {
		write(FieldLength, formatFieldNumber(f.state.Length))
	}
	if mode == model.ModeMosaic {
		write(FieldMosaicQty, formatFieldNumber(f.state.MosaicQty))
		write(FieldMosaicMeasurement, formatFieldNumber(f.state.Measurement))
	}

	f.fields[FieldConfirmedQty] = strconv.Itoa(f.state.PurchasableQty)
	f.fields[FieldTotal] = result.Summary.Total
	f.fields[FieldQuantity] = result.Summary.Quantity
	f.fields[FieldQuantityHTML] = result.Summary.QuantityHTML
	f.fields[FieldPrice] = result.Summary.Price
}

func (f *Form) number(field string) float64 {
	return ParseLocaleNumber(f.fields[field], 0)
}

func (f *Form) stepSize(field string) float64 {
	switch field {
	case FieldMeasurement, FieldMosaicMeasurement:
		if upp := f.engine.Product().UnitsPerPackage; upp > 0 {
			return upp
		}
	}
	return 1
}

func (f *Form) fieldMin(field string) float64 {
	switch field {
	case FieldPackages, FieldMosaicQty:
		minQty, _ := f.engine.Product().OrderBounds()
		return float64(minQty)
	}
	return 0
}

func isInputField(field string) bool {
	switch field {
	case FieldLength, FieldWidth, FieldMargin, FieldMeasurement,
		FieldPackages, FieldMosaicQty, FieldMosaicMeasurement:
		return true
	}
	return false
}

// formatFieldNumber renders a field value; zero renders as an empty field.
func formatFieldNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}
