package model

// Trigger names the logical field whose edit caused a recompute.
type Trigger string

const (
	TriggerDimensions        Trigger = "dimensions"
	TriggerMeasurement       Trigger = "measurement"
	TriggerPackages          Trigger = "packages"
	TriggerMarginChanged     Trigger = "marginChanged"
	TriggerMosaicQty         Trigger = "mosaicQty"
	TriggerMosaicMeasurement Trigger = "mosaicMeasurement"
)

// Valid reports whether t is one of the known triggers.
func (t Trigger) Valid() bool {
	switch t {
	case TriggerDimensions, TriggerMeasurement, TriggerPackages,
		TriggerMarginChanged, TriggerMosaicQty, TriggerMosaicMeasurement:
		return true
	}
	return false
}

// Event is one discrete field edit dispatched into the engine.
// Value carries the edited scalar; Length and Width are only read for
// TriggerDimensions.
//
// @Description A single calculator field edit
type Event struct {
	Trigger Trigger `json:"trigger" binding:"required" example:"dimensions" enums:"dimensions,measurement,packages,marginChanged,mosaicQty,mosaicMeasurement"`
	Value   float64 `json:"value,omitempty" example:"0"`
	Length  float64 `json:"length,omitempty" example:"5"`
	Width   float64 `json:"width,omitempty" example:"2"`
} // @name CalculationEvent

// DimensionsChanged builds the event fired when the length or width input changes.
func DimensionsChanged(length, width float64) Event {
	return Event{Trigger: TriggerDimensions, Length: length, Width: width}
}

// MeasurementChanged builds the event fired when the total measurement is edited.
func MeasurementChanged(value float64) Event {
	return Event{Trigger: TriggerMeasurement, Value: value}
}

// PackagesChanged builds the event fired when the package count is edited.
func PackagesChanged(value float64) Event {
	return Event{Trigger: TriggerPackages, Value: value}
}

// MarginChanged builds the event fired when a margin is picked from the menu.
func MarginChanged(percent int) Event {
	return Event{Trigger: TriggerMarginChanged, Value: float64(percent)}
}

// MosaicQtyChanged builds the event fired when the mosaic piece count is edited.
func MosaicQtyChanged(value float64) Event {
	return Event{Trigger: TriggerMosaicQty, Value: value}
}

// MosaicMeasurementChanged builds the event fired when the mosaic coverage is edited.
func MosaicMeasurementChanged(value float64) Event {
	return Event{Trigger: TriggerMosaicMeasurement, Value: value}
}

// CalculationState is the per-visit calculator state. Packages is the single
// source of truth for the quantity added to the cart.
//
// @Description Calculator state carried between edits
type CalculationState struct {
	Length         float64 `json:"length" example:"5"`
	Width          float64 `json:"width" example:"2"`
	MarginPercent  int     `json:"margin_percent" example:"10"`
	Measurement    float64 `json:"measurement" example:"11"`
	Packages       int     `json:"packages" example:"5"`
	PurchasableQty int     `json:"purchasable_qty" example:"5"`
	MosaicQty      float64 `json:"mosaic_qty,omitempty" example:"0"`
} // @name CalculationState

// Summary holds the three user-facing strings rendered below the calculator.
//
// @Description Rendered calculator summary
type Summary struct {
	Total        string `json:"total" example:"12.50 m²"`
	Quantity     string `json:"quantity" example:"5"`
	QuantityNote string `json:"quantity_note,omitempty" example:""`
	QuantityHTML string `json:"quantity_html" example:"5"`
	Price        string `json:"price" example:"599,50 zł"`
	// Shortfall is set when the purchasable quantity is below the computed need.
	Shortfall bool `json:"shortfall"`
} // @name CalculationSummary

// EmptySummary is rendered while the calculator is inert.
func EmptySummary() Summary {
	return Summary{Total: "-", Quantity: "-", QuantityHTML: "-", Price: "-"}
}

// Submission is the set of opaque fields posted with add-to-cart.
//
// @Description Add-to-cart fields
type Submission struct {
	Quantity        int     `json:"quantity" example:"5"`
	Mode            Mode    `json:"mode" example:"area"`
	UnitsPerPackage float64 `json:"units_per_package" example:"2.5"`
	Price           float64 `json:"price" example:"119.9"`
} // @name Submission

// CalculationResult is the engine output for one event.
//
// @Description Result of one calculator event
type CalculationResult struct {
	State      CalculationState `json:"state"`
	Summary    Summary          `json:"summary"`
	Submission Submission       `json:"submission"`
	// Inert is true when the product does not use the calculator.
	Inert bool `json:"inert"`
	// ExceedsStock reports genuine depletion against tracked stock on hand.
	ExceedsStock bool `json:"exceeds_stock"`
} // @name CalculationResult
