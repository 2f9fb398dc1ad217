package service

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
)

func areaProduct() model.ProductConfiguration {
	return model.ProductConfiguration{
		ProductID:       "oak-8mm",
		Mode:            model.ModeArea,
		UnitsPerPackage: 2.5,
		PricePerUnit:    10,
		MinOrderQty:     1,
	}
}

func TestMarginOptions_Resolve(t *testing.T) {
	m := DefaultMarginOptions()

	assert.Equal(t, 0, m.Resolve(0))
	assert.Equal(t, 5, m.Resolve(5))
	assert.Equal(t, 10, m.Resolve(7))
	assert.Equal(t, 10, m.Resolve(-5))
	assert.Equal(t, 15, MarginOptions{}.Resolve(15))
	assert.Equal(t, 0, MarginOptions{}.Resolve(-1))
}

func TestEngine_Inert(t *testing.T) {
	tests := []struct {
		name    string
		product model.ProductConfiguration
	}{
		{name: "zero units per package", product: model.ProductConfiguration{Mode: model.ModeArea, PricePerUnit: 10}},
		{name: "negative units per package", product: model.ProductConfiguration{Mode: model.ModeLength, UnitsPerPackage: -2}},
		{name: "standard product", product: model.ProductConfiguration{Mode: model.ModeStandard, UnitsPerPackage: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.product)
			state := model.CalculationState{Length: 3, Packages: 2}

			result := e.Apply(state, model.DimensionsChanged(5, 2))

			assert.True(t, result.Inert)
			assert.Equal(t, state, result.State)
			assert.Equal(t, model.EmptySummary(), result.Summary)
		})
	}
}

func TestEngine_Init(t *testing.T) {
	result := NewEngine(areaProduct()).Init()

	assert.Equal(t, 1, result.State.Packages)
	assert.Equal(t, 1, result.State.PurchasableQty)
	assert.Equal(t, 2.5, result.State.Measurement)
	assert.Equal(t, 10, result.State.MarginPercent)
	assert.Equal(t, "2.50 m²", result.Summary.Total)
	assert.Equal(t, "1", result.Summary.Quantity)
	assert.Equal(t, "10,00 zł", result.Summary.Price)
}

func TestEngine_Area(t *testing.T) {
	tests := []struct {
		name     string
		product  func() model.ProductConfiguration
		state    model.CalculationState
		event    model.Event
		validate func(*testing.T, model.CalculationResult)
	}{
		{
			name:    "dimensions exact fit",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.DimensionsChanged(5, 2),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 11.0, r.State.Measurement)
				assert.Equal(t, 5, r.State.Packages)
				assert.Equal(t, 5, r.State.PurchasableQty)
				assert.Equal(t, "12.50 m²", r.Summary.Total)
				assert.Equal(t, "5", r.Summary.Quantity)
				assert.Equal(t, "50,00 zł", r.Summary.Price)
				assert.Equal(t, model.Submission{Quantity: 5, Mode: model.ModeArea, UnitsPerPackage: 2.5, Price: 10}, r.Submission)
			},
		},
		{
			name:    "empty dimensions fall back to minimum order",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10, Measurement: 11, Packages: 5},
			event:   model.DimensionsChanged(0, 2),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 1, r.State.PurchasableQty)
				assert.Equal(t, 0.0, r.State.Measurement)
				assert.Equal(t, "-", r.Summary.Total)
				assert.Equal(t, "1", r.Summary.Quantity)
				assert.Equal(t, "10,00 zł", r.Summary.Price)
			},
		},
		{
			name:    "tiny dimensions use minimum order coverage",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 0},
			event:   model.DimensionsChanged(0.01, 0.01),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 2.5, r.State.Measurement)
			},
		},
		{
			name:    "measurement edited directly keeps margin out",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.MeasurementChanged(11),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 11.0, r.State.Measurement)
				assert.Equal(t, 5, r.State.Packages)
			},
		},
		{
			name:    "non-positive measurement is empty input",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.MeasurementChanged(-1),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, "-", r.Summary.Total)
			},
		},
		{
			name:    "packages truncated to whole number",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.PackagesChanged(3.7),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 3, r.State.Packages)
				assert.Equal(t, 7.5, r.State.Measurement)
				assert.Equal(t, "7.50 m²", r.Summary.Total)
			},
		},
		{
			name:    "zero packages default to minimum order",
			product: areaProduct,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.PackagesChanged(0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 2.5, r.State.Measurement)
			},
		},
		{
			name: "shortfall against maximum order",
			product: func() model.ProductConfiguration {
				p := areaProduct()
				p.MaxOrderQty = 3
				return p
			},
			state: model.CalculationState{MarginPercent: 10},
			event: model.PackagesChanged(5),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 5, r.State.Packages)
				assert.Equal(t, 3, r.State.PurchasableQty)
				assert.Equal(t, "we have 3 of 5 in stock", r.Summary.Quantity)
				assert.True(t, r.Summary.Shortfall)
				assert.Equal(t, "30,00 zł", r.Summary.Price)
				assert.Equal(t, 3, r.Submission.Quantity)
			},
		},
		{
			name: "minimum order above need",
			product: func() model.ProductConfiguration {
				p := areaProduct()
				p.MinOrderQty = 10
				return p
			},
			state: model.CalculationState{MarginPercent: 10},
			event: model.PackagesChanged(3),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 3, r.State.Packages)
				assert.Equal(t, 10, r.State.PurchasableQty)
				assert.Equal(t, "3", r.Summary.Quantity)
				assert.Equal(t, "at least: 10", r.Summary.QuantityNote)
			},
		},
		{
			name:    "margin change recomputes from stored dimensions",
			product: areaProduct,
			state:   model.CalculationState{Length: 5, Width: 2, MarginPercent: 10, Measurement: 11, Packages: 5},
			event:   model.MarginChanged(0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 0, r.State.MarginPercent)
				assert.Equal(t, 10.0, r.State.Measurement)
				assert.Equal(t, 4, r.State.Packages)
			},
		},
		{
			name:    "margin outside the menu falls back to default",
			product: areaProduct,
			state:   model.CalculationState{Length: 5, Width: 2, MarginPercent: 0},
			event:   model.MarginChanged(7),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 10, r.State.MarginPercent)
				assert.Equal(t, 11.0, r.State.Measurement)
			},
		},
		{
			name: "tracked stock exceeded is flagged separately",
			product: func() model.ProductConfiguration {
				p := areaProduct()
				stock := 2
				p.StockOnHand = &stock
				return p
			},
			state: model.CalculationState{MarginPercent: 10},
			event: model.PackagesChanged(5),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 5, r.State.PurchasableQty)
				assert.False(t, r.Summary.Shortfall)
				assert.True(t, r.ExceedsStock)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewEngine(tt.product()).Apply(tt.state, tt.event))
		})
	}
}

func TestEngine_Length(t *testing.T) {
	product := model.ProductConfiguration{Mode: model.ModeLength, UnitsPerPackage: 2, PricePerUnit: 25, MinOrderQty: 1}
	e := NewEngine(product)

	tests := []struct {
		name     string
		event    model.Event
		validate func(*testing.T, model.CalculationResult)
	}{
		{
			name:  "length stands in as measurement",
			event: model.DimensionsChanged(7, 0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 7.0, r.State.Measurement)
				assert.Equal(t, 4, r.State.Packages)
				assert.Equal(t, "8.00 m", r.Summary.Total)
				assert.Equal(t, "100,00 zł", r.Summary.Price)
			},
		},
		{
			name:  "total length edited directly",
			event: model.MeasurementChanged(3),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 3.0, r.State.Length)
				assert.Equal(t, 2, r.State.Packages)
			},
		},
		{
			name:  "empty length",
			event: model.DimensionsChanged(0, 0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 0.0, r.State.Measurement)
				assert.Equal(t, "-", r.Summary.Total)
				assert.Equal(t, "25,00 zł", r.Summary.Price)
			},
		},
		{
			name:  "packages write back the length",
			event: model.PackagesChanged(3),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 6.0, r.State.Measurement)
				assert.Equal(t, 6.0, r.State.Length)
				assert.Equal(t, "6.00 m", r.Summary.Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, e.Apply(model.CalculationState{MarginPercent: 10}, tt.event))
		})
	}
}

func TestEngine_Mosaic(t *testing.T) {
	product := model.ProductConfiguration{Mode: model.ModeMosaic, UnitsPerPackage: 1.2, PricePerUnit: 8, MinOrderQty: 1}
	e := NewEngine(product)

	tests := []struct {
		name     string
		state    model.CalculationState
		event    model.Event
		validate func(*testing.T, model.CalculationResult)
	}{
		{
			name:  "quantity with margin",
			state: model.CalculationState{MarginPercent: 10},
			event: model.MosaicQtyChanged(4),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 4.0, r.State.MosaicQty)
				assert.Equal(t, 4.8, r.State.Measurement)
				assert.Equal(t, 5, r.State.Packages)
				assert.Equal(t, "5.28 m²", r.Summary.Total)
				assert.Equal(t, "40,00 zł", r.Summary.Price)
			},
		},
		{
			name:  "zero quantity resets to minimum order",
			state: model.CalculationState{MarginPercent: 10},
			event: model.MosaicQtyChanged(0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1.0, r.State.MosaicQty)
				assert.Equal(t, 1.2, r.State.Measurement)
				assert.Equal(t, 2, r.State.Packages)
				assert.Equal(t, "1.32 m²", r.Summary.Total)
			},
		},
		{
			name:  "measurement without margin",
			state: model.CalculationState{MarginPercent: 0},
			event: model.MosaicMeasurementChanged(5),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 5.0, r.State.MosaicQty)
				assert.Equal(t, 5.0, r.State.Measurement)
				assert.Equal(t, 5, r.State.Packages)
				assert.Equal(t, "6.00 m²", r.Summary.Total)
			},
		},
		{
			name:  "empty measurement resets to minimum order",
			state: model.CalculationState{MarginPercent: 0},
			event: model.MosaicMeasurementChanged(0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1.0, r.State.MosaicQty)
				assert.Equal(t, 1.2, r.State.Measurement)
				assert.Equal(t, 1, r.State.Packages)
			},
		},
		{
			name:  "margin change only refreshes totals",
			state: model.CalculationState{MarginPercent: 0, MosaicQty: 4, Measurement: 4.8, Packages: 4},
			event: model.MarginChanged(10),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 4.0, r.State.MosaicQty)
				assert.Equal(t, 4.8, r.State.Measurement)
				assert.Equal(t, 10, r.State.MarginPercent)
				assert.Equal(t, "5.28 m²", r.Summary.Total)
				assert.Equal(t, 5, r.State.Packages)
			},
		},
		{
			name:  "final count keeps the two-decimal tie-break",
			state: model.CalculationState{MarginPercent: 10},
			event: model.MosaicQtyChanged(10),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 10.0, r.State.MosaicQty)
				assert.Equal(t, 11, r.State.Packages)
				assert.Equal(t, "13.20 m²", r.Summary.Total)
			},
		},
		{
			name:  "packages set the stored quantity",
			state: model.CalculationState{MarginPercent: 0},
			event: model.PackagesChanged(3),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 3.0, r.State.MosaicQty)
				assert.Equal(t, 3, r.State.Packages)
				assert.Equal(t, "3.60 m²", r.Summary.Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, e.Apply(tt.state, tt.event))
		})
	}
}

func TestEngine_LocalizedSummary(t *testing.T) {
	p := areaProduct()
	p.MaxOrderQty = 3
	e := NewEngine(p, WithFormatter(NewSummaryFormatter(LabelsFor(i18n.GetTranslator(), "pl"), model.CurrencySettings{})))

	result := e.Apply(model.CalculationState{MarginPercent: 10}, model.PackagesChanged(5))

	assert.Equal(t, "mamy 3 z 5 na stanie", result.Summary.Quantity)
}

func TestEngine_PackagesHandlerIsFixedPoint(t *testing.T) {
	e := NewEngine(areaProduct())
	first := e.Apply(model.CalculationState{MarginPercent: 10}, model.PackagesChanged(7))
	second := e.Apply(first.State, model.MeasurementChanged(first.State.Measurement))

	assert.Equal(t, first.State.Packages, second.State.Packages)
	assert.Equal(t, first.State.Measurement, second.State.Measurement)
}

func TestEngine_LargeAndNonFiniteInputs(t *testing.T) {
	mosaic := model.ProductConfiguration{Mode: model.ModeMosaic, UnitsPerPackage: 1.2, PricePerUnit: 8, MinOrderQty: 1}

	tests := []struct {
		name     string
		product  model.ProductConfiguration
		state    model.CalculationState
		event    model.Event
		validate func(*testing.T, model.CalculationResult)
	}{
		{
			name:    "typed package count is capped",
			product: areaProduct(),
			event:   model.PackagesChanged(1e12),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, maxPackages, r.State.Packages)
				assert.Equal(t, maxPackages, r.State.PurchasableQty)
				assert.Equal(t, 5368709117.5, r.State.Measurement)
			},
		},
		{
			name:    "typed mosaic quantity is capped",
			product: mosaic,
			state:   model.CalculationState{MarginPercent: 10},
			event:   model.MosaicQtyChanged(1e12),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, float64(maxPackages), r.State.MosaicQty)
				assert.Equal(t, maxPackages, r.State.Packages)
			},
		},
		{
			name:    "huge dimensions never fall back to the minimum order",
			product: areaProduct(),
			event:   model.DimensionsChanged(1e10, 1e10),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1e20, r.State.Measurement)
				assert.Equal(t, maxPackages, r.State.Packages)
				assert.Equal(t, maxPackages, r.State.PurchasableQty)
			},
		},
		{
			name:    "huge measurement is capped",
			product: areaProduct(),
			event:   model.MeasurementChanged(1e20),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, maxPackages, r.State.Packages)
			},
		},
		{
			name:    "infinite measurement is empty input",
			product: areaProduct(),
			event:   model.MeasurementChanged(math.Inf(1)),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 0.0, r.State.Measurement)
				assert.Equal(t, "-", r.Summary.Total)
			},
		},
		{
			name:    "NaN length is empty input",
			product: model.ProductConfiguration{Mode: model.ModeLength, UnitsPerPackage: 2, MinOrderQty: 1},
			event:   model.DimensionsChanged(math.NaN(), 0),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, "-", r.Summary.Total)
			},
		},
		{
			name:    "overflowing area is empty input",
			product: areaProduct(),
			event:   model.DimensionsChanged(1e200, 1e200),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
				assert.Equal(t, 0.0, r.State.Measurement)
			},
		},
		{
			name:    "overflowing mosaic dimensions are empty input",
			product: mosaic,
			event:   model.DimensionsChanged(1e200, 1e200),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, 1, r.State.Packages)
			},
		},
		{
			name:    "huge stored mosaic quantity on margin change",
			product: mosaic,
			state:   model.CalculationState{MosaicQty: 1e300},
			event:   model.MarginChanged(10),
			validate: func(t *testing.T, r model.CalculationResult) {
				assert.Equal(t, maxPackages, r.State.Packages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewEngine(tt.product).Apply(tt.state, tt.event)
			tt.validate(t, result)

			_, err := json.Marshal(result)
			require.NoError(t, err)
		})
	}
}
