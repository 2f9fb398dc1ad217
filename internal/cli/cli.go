// Package cli implements walpctl, a terminal front-end for the quantity
// calculator that drives the field-binding form without the HTTP service.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/service"
)

// productFlags holds the product configuration given on the command line.
type productFlags struct {
	mode   string
	units  float64
	price  float64
	stock  int
	min    int
	max    int
	pieces int
}

func defaultProductFlags() productFlags {
	return productFlags{mode: string(model.ModeArea), units: 1, stock: -1, min: 1}
}

// register binds the product flags to fs, using d for the defaults.
func (p *productFlags) register(fs *pflag.FlagSet, d productFlags) {
	fs.StringVar(&p.mode, "mode", d.mode, "measurement mode: standard|length|area|mosaic")
	fs.Float64Var(&p.units, "units", d.units, "units (m² or m) per package")
	fs.Float64Var(&p.price, "price", d.price, "price per package")
	fs.IntVar(&p.stock, "stock", d.stock, "packages in stock (-1 means untracked)")
	fs.IntVar(&p.min, "min", d.min, "minimum order quantity")
	fs.IntVar(&p.max, "max", d.max, "maximum order quantity (0 means none)")
	fs.IntVar(&p.pieces, "pieces", d.pieces, "pieces per package")
}

// product returns the normalized configuration with storefront order bounds.
func (p *productFlags) product() model.ProductConfiguration {
	product := model.ProductConfiguration{
		ProductID:        "cli",
		Mode:             model.Mode(p.mode),
		UnitsPerPackage:  p.units,
		PricePerUnit:     p.price,
		MinOrderQty:      p.min,
		MaxOrderQty:      p.max,
		PiecesPerPackage: p.pieces,
	}
	if p.stock >= 0 {
		stock := p.stock
		product.StockOnHand = &stock
	}
	return product.WithOrderDefaults().WithStockBounds()
}

type options struct {
	product   productFlags
	locale    string
	verbosity int
	engines   *service.EngineFactory
}

func (o *options) newForm() *service.Form {
	return service.NewForm(o.engines.Build(o.product.product(), o.locale))
}

// NewRootCmd creates the walpctl root command. Currency and margin settings
// come from the same environment variables as the HTTP service.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{
		engines: service.NewEngineFactory(nil, cfg.Currency.Settings(), service.MarginOptionsFromConfig(cfg.Calculator)),
	}

	cmd := &cobra.Command{
		Use:           "walpctl",
		Short:         "Area and length quantity calculator",
		Long:          "Converts room dimensions or a target length into package counts and prices.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.product.register(cmd.PersistentFlags(), defaultProductFlags())
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", cfg.Calculator.DefaultLocale, "label language: en|pl|pt")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.Init(levelFor(opts.verbosity), true)
	}

	cmd.AddCommand(newCalcCmd(opts), newShellCmd(opts))
	return cmd
}

func levelFor(verbosity int) string {
	switch {
	case verbosity >= 2:
		return "debug"
	case verbosity == 1:
		return "info"
	default:
		return "warn"
	}
}

// calcInputs are the one-shot field edits, applied in declaration order.
type calcInputs struct {
	margin      string
	length      string
	width       string
	measurement string
	packages    string
	mosaicQty   string
	asJSON      bool
}

func newCalcCmd(opts *options) *cobra.Command {
	var in calcInputs
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run one calculation and print the summary",
		Example: "  walpctl calc --mode area --units 2.5 --price 119.9 --length 5 --width 2 --margin 10\n" +
			"  walpctl calc --mode length --units 2.4 --measurement 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := opts.newForm()
			flags := cmd.Flags()

			edits := []struct {
				flag, field, value string
			}{
				{"margin", service.FieldMargin, in.margin},
				{"length", service.FieldLength, in.length},
				{"width", service.FieldWidth, in.width},
				{"measurement", service.FieldMeasurement, in.measurement},
				{"packages", service.FieldPackages, in.packages},
				{"mosaic-qty", service.FieldMosaicQty, in.mosaicQty},
			}
			for _, e := range edits {
				if !flags.Changed(e.flag) {
					continue
				}
				if _, err := form.Input(e.field, e.value); err != nil {
					return fmt.Errorf("%s: %w", e.flag, err)
				}
			}

			if in.asJSON {
				return writeJSON(cmd.OutOrStdout(), form.Result())
			}
			printResult(cmd.OutOrStdout(), form)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&in.margin, "margin", "", "waste margin percent")
	fs.StringVar(&in.length, "length", "", "room length")
	fs.StringVar(&in.width, "width", "", "room width")
	fs.StringVar(&in.measurement, "measurement", "", "target area or length")
	fs.StringVar(&in.packages, "packages", "", "package count")
	fs.StringVar(&in.mosaicQty, "mosaic-qty", "", "mosaic piece count")
	fs.BoolVar(&in.asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, form *service.Form) {
	result := form.Result()
	if result.Inert {
		fmt.Fprintln(w, "calculator inactive for this product")
		return
	}
	state := result.State
	fmt.Fprintf(w, "packages:    %d\n", state.Packages)
	fmt.Fprintf(w, "purchasable: %d\n", state.PurchasableQty)
	fmt.Fprintf(w, "total:       %s\n", result.Summary.Total)
	fmt.Fprintf(w, "quantity:    %s\n", result.Summary.Quantity)
	if result.Summary.QuantityNote != "" {
		fmt.Fprintf(w, "             %s\n", result.Summary.QuantityNote)
	}
	fmt.Fprintf(w, "price:       %s\n", result.Summary.Price)
}
