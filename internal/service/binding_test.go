package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

func TestNewForm_InitialLoad(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	assert.Equal(t, "1", f.Value(FieldPackages))
	assert.Equal(t, "2.5", f.Value(FieldMeasurement))
	assert.Equal(t, "1", f.Value(FieldConfirmedQty))
	assert.Equal(t, "10", f.Value(FieldMargin))
	assert.Equal(t, "2.50 m²", f.Value(FieldTotal))
	assert.Equal(t, "10,00 zł", f.Value(FieldPrice))
}

func TestForm_InputDimensions(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	_, err := f.Input(FieldLength, "5")
	require.NoError(t, err)
	assert.Equal(t, "1", f.Value(FieldPackages))
	assert.Equal(t, "", f.Value(FieldMeasurement))
	assert.Equal(t, "-", f.Value(FieldTotal))

	result, err := f.Input(FieldWidth, "2")
	require.NoError(t, err)
	assert.Equal(t, 5, result.State.Packages)
	assert.Equal(t, "11", f.Value(FieldMeasurement))
	assert.Equal(t, "5", f.Value(FieldPackages))
	assert.Equal(t, "5", f.Value(FieldConfirmedQty))
	assert.Equal(t, "12.50 m²", f.Value(FieldTotal))
	assert.Equal(t, "5", f.Value(FieldLength))
	assert.Equal(t, "2", f.Value(FieldWidth))
}

func TestForm_InputDecimalComma(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	_, err := f.Input(FieldLength, "4")
	require.NoError(t, err)
	_, err = f.Input(FieldWidth, "2,5")
	require.NoError(t, err)

	assert.Equal(t, "5", f.Value(FieldPackages))
	assert.Equal(t, "2,5", f.Value(FieldWidth))
}

func TestForm_InputKeepsEditedFieldText(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	_, err := f.Input(FieldMeasurement, "11,")
	require.NoError(t, err)

	assert.Equal(t, "11,", f.Value(FieldMeasurement))
	assert.Equal(t, "5", f.Value(FieldPackages))
}

func TestForm_Step(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		dir      Direction
		validate func(*testing.T, *Form)
	}{
		{
			name:  "increment packages by one",
			field: FieldPackages,
			dir:   Increment,
			validate: func(t *testing.T, f *Form) {
				assert.Equal(t, "2", f.Value(FieldPackages))
				assert.Equal(t, "5", f.Value(FieldMeasurement))
				assert.Equal(t, "2", f.Value(FieldConfirmedQty))
			},
		},
		{
			name:  "decrement packages clamps at minimum",
			field: FieldPackages,
			dir:   Decrement,
			validate: func(t *testing.T, f *Form) {
				assert.Equal(t, "1", f.Value(FieldPackages))
				assert.Equal(t, "2.5", f.Value(FieldMeasurement))
			},
		},
		{
			name:  "increment measurement by units per package",
			field: FieldMeasurement,
			dir:   Increment,
			validate: func(t *testing.T, f *Form) {
				assert.Equal(t, "5", f.Value(FieldMeasurement))
				assert.Equal(t, "2", f.Value(FieldPackages))
			},
		},
		{
			name:  "decrement length clamps at zero",
			field: FieldLength,
			dir:   Decrement,
			validate: func(t *testing.T, f *Form) {
				assert.Equal(t, "", f.Value(FieldLength))
				assert.Equal(t, "1", f.Value(FieldPackages))
				assert.Equal(t, "-", f.Value(FieldTotal))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(NewEngine(areaProduct()))
			_, err := f.Step(tt.field, tt.dir)
			require.NoError(t, err)
			tt.validate(t, f)
		})
	}
}

func TestForm_Errors(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	_, err := f.Input("colour", "red")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = f.Step(FieldPackages, "sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = f.Step(FieldMargin, Increment)
	assert.ErrorIs(t, err, ErrNotSteppable)

	_, err = f.Step(FieldTotal, Increment)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestForm_InertProduct(t *testing.T) {
	f := NewForm(NewEngine(model.ProductConfiguration{Mode: model.ModeStandard, PricePerUnit: 10}))

	result, err := f.Input(FieldLength, "5")
	require.NoError(t, err)
	assert.True(t, result.Inert)
	assert.Equal(t, "-", f.Value(FieldTotal))
	assert.Equal(t, "-", f.Value(FieldPrice))
	assert.Empty(t, f.Value(FieldPackages))
}

func TestRestoreForm(t *testing.T) {
	e := NewEngine(areaProduct())
	f := RestoreForm(e, map[string]string{
		FieldLength:       "5",
		FieldWidth:        "2",
		FieldMargin:       "10",
		FieldMeasurement:  "11",
		FieldPackages:     "5",
		FieldConfirmedQty: "5",
	})

	assert.Equal(t, 5, f.State().Packages)
	assert.Equal(t, 10, f.State().MarginPercent)

	_, err := f.Input(FieldMargin, "0")
	require.NoError(t, err)
	assert.Equal(t, "10", f.Value(FieldMeasurement))
	assert.Equal(t, "4", f.Value(FieldPackages))
	assert.Equal(t, 4, f.Submission().Quantity)
}

func TestRestoreForm_EmptyFieldsRunsInitialLoad(t *testing.T) {
	f := RestoreForm(NewEngine(areaProduct()), nil)
	assert.Equal(t, "1", f.Value(FieldPackages))
}

func TestForm_LengthMirrorsMeasurement(t *testing.T) {
	e := NewEngine(model.ProductConfiguration{Mode: model.ModeLength, UnitsPerPackage: 2, PricePerUnit: 25})
	f := NewForm(e)

	assert.Equal(t, "2", f.Value(FieldLength))

	_, err := f.Step(FieldPackages, Increment)
	require.NoError(t, err)
	assert.Equal(t, "4", f.Value(FieldLength))
	assert.Equal(t, "4", f.Value(FieldMeasurement))
	assert.Equal(t, "4.00 m", f.Value(FieldTotal))
}

func TestForm_MosaicFields(t *testing.T) {
	e := NewEngine(model.ProductConfiguration{Mode: model.ModeMosaic, UnitsPerPackage: 1.2, PricePerUnit: 8})
	f := NewForm(e)

	_, err := f.Input(FieldMosaicQty, "4")
	require.NoError(t, err)
	assert.Equal(t, "4.8", f.Value(FieldMosaicMeasurement))
	assert.Equal(t, "5", f.Value(FieldPackages))

	_, err = f.Input(FieldMargin, "0")
	require.NoError(t, err)
	assert.Equal(t, "4", f.Value(FieldMosaicQty))
	assert.Equal(t, "4", f.Value(FieldPackages))
	assert.Equal(t, "4.80 m²", f.Value(FieldTotal))
}

func TestForm_HugeMeasurementIsCapped(t *testing.T) {
	f := NewForm(NewEngine(areaProduct()))

	result, err := f.Input(FieldMeasurement, "1e20")
	require.NoError(t, err)
	assert.Equal(t, maxPackages, result.State.Packages)
	assert.Equal(t, strconv.Itoa(maxPackages), f.Value(FieldConfirmedQty))
}
