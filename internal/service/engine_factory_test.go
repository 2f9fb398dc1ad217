package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
)

func TestMarginOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.CalculatorConfig
		expected MarginOptions
	}{
		{
			name:     "empty menu uses the default",
			cfg:      config.CalculatorConfig{},
			expected: DefaultMarginOptions(),
		},
		{
			name:     "configured menu",
			cfg:      config.CalculatorConfig{MarginOptions: []int{0, 15}, DefaultMargin: 15},
			expected: MarginOptions{Options: []int{0, 15}, Default: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarginOptionsFromConfig(tt.cfg))
		})
	}
}

func TestEngineFactory_Build(t *testing.T) {
	factory := NewEngineFactory(nil, model.DefaultCurrency(), MarginOptions{Options: []int{0, 20}, Default: 20})
	product := model.ProductConfiguration{Mode: model.ModeLength, UnitsPerPackage: 2, PricePerUnit: 25, MinOrderQty: 1}

	tests := []struct {
		name          string
		locale        string
		expectedTotal string
	}{
		{name: "english", locale: "en", expectedTotal: "6.00 m"},
		{name: "polish uses running meters", locale: "pl", expectedTotal: "6.00 mb"},
		{name: "unsupported locale falls back", locale: "de", expectedTotal: "6.00 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := factory.Build(product, tt.locale)
			result := engine.Apply(model.CalculationState{}, model.PackagesChanged(3))
			assert.Equal(t, tt.expectedTotal, result.Summary.Total)
			assert.Equal(t, "75,00 zł", result.Summary.Price)
		})
	}
}

func TestEngineFactory_Accessors(t *testing.T) {
	margins := MarginOptions{Options: []int{0, 5}, Default: 5}
	factory := NewEngineFactory(nil, model.DefaultCurrency(), margins)

	require.NotNil(t, factory.Translator())
	assert.Equal(t, margins, factory.Margins())
	assert.Equal(t, model.DefaultCurrency(), factory.Currency())
	assert.Equal(t, "co najmniej:", factory.Labels("pl").AtLeast)

	engine := factory.Build(model.ProductConfiguration{Mode: model.ModeArea, UnitsPerPackage: 2.5, MinOrderQty: 1}, i18n.DefaultLocale)
	assert.Equal(t, 5, engine.Init().State.MarginPercent)
}
