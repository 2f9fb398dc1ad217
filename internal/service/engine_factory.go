package service

import (
	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
)

// MarginOptionsFromConfig builds the margin menu from the calculator settings.
func MarginOptionsFromConfig(cfg config.CalculatorConfig) MarginOptions {
	if len(cfg.MarginOptions) == 0 {
		return DefaultMarginOptions()
	}
	return MarginOptions{Options: cfg.MarginOptions, Default: cfg.DefaultMargin}
}

// EngineFactory builds engines that share the store's currency and margin
// settings. Labels are chosen per call so one factory serves every locale.
type EngineFactory struct {
	translator *i18n.Translator
	currency   model.CurrencySettings
	margins    MarginOptions
}

// NewEngineFactory creates a factory. A nil translator uses the shared one.
func NewEngineFactory(t *i18n.Translator, currency model.CurrencySettings, margins MarginOptions) *EngineFactory {
	if t == nil {
		t = i18n.GetTranslator()
	}
	return &EngineFactory{translator: t, currency: currency, margins: margins}
}

// Build returns an engine for product rendering its summary in locale.
func (f *EngineFactory) Build(product model.ProductConfiguration, locale string) *Engine {
	formatter := NewSummaryFormatter(f.Labels(locale), f.currency)
	return NewEngine(product, WithFormatter(formatter), WithMargins(f.margins))
}

// Labels returns the summary label table for locale.
func (f *EngineFactory) Labels(locale string) Labels {
	return LabelsFor(f.translator, locale)
}

// Margins returns the configured margin menu.
func (f *EngineFactory) Margins() MarginOptions { return f.margins }

// Currency returns the configured currency settings.
func (f *EngineFactory) Currency() model.CurrencySettings { return f.currency }

// Translator returns the translator labels are loaded from.
func (f *EngineFactory) Translator() *i18n.Translator { return f.translator }
