// Package model defines the core domain entities for the area/length service.
package model

import (
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mode selects how a product is measured and sold.
type Mode string

const (
	// ModeStandard products are sold by discrete units; the calculator stays inert.
	ModeStandard Mode = "standard"
	// ModeLength products are sold by running length (e.g. skirting boards).
	ModeLength Mode = "length"
	// ModeArea products are sold by covered area (e.g. floor panels).
	ModeArea Mode = "area"
	// ModeMosaic products are sold by piece count with fixed coverage per piece.
	ModeMosaic Mode = "mosaic"
)

// ParseMode maps a stored or submitted mode to a known Mode.
// Unknown values are treated as ModeStandard.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLength, ModeArea, ModeMosaic:
		return m
	default:
		return ModeStandard
	}
}

// Measured reports whether the mode uses the quantity calculator.
func (m Mode) Measured() bool {
	return m == ModeLength || m == ModeArea || m == ModeMosaic
}

// ProductConfiguration is the catalog metadata the calculator works from.
// It is loaded once per product page and never mutated by the engine.
//
// @Description Measurement configuration of a product
type ProductConfiguration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID string             `bson:"product_id" json:"product_id" example:"sku-oak-8mm"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty" example:"Oak panel 8mm"`
	Mode      Mode               `bson:"mode" json:"mode" example:"area" enums:"standard,length,area,mosaic"`
	// UnitsPerPackage is the number of meters (square or running) in one package.
	UnitsPerPackage float64 `bson:"units_per_package" json:"units_per_package" example:"2.5"`
	// PricePerUnit is the price of a single package.
	PricePerUnit float64 `bson:"price_per_unit" json:"price_per_unit" example:"119.9"`
	// StockOnHand is nil when stock is not tracked.
	StockOnHand      *int `bson:"stock_on_hand,omitempty" json:"stock_on_hand,omitempty" example:"40"`
	MinOrderQty      int  `bson:"min_order_qty" json:"min_order_qty" example:"1"`
	MaxOrderQty      int  `bson:"max_order_qty,omitempty" json:"max_order_qty,omitempty" example:"0"`
	PiecesPerPackage int  `bson:"pieces_per_package,omitempty" json:"pieces_per_package,omitempty" example:"8"`

	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
} // @name ProductConfiguration

// Normalize applies the catalog save rules: units per package are stored as
// an absolute value on top of WithOrderDefaults.
func (p ProductConfiguration) Normalize() ProductConfiguration {
	p = p.WithOrderDefaults()
	p.UnitsPerPackage = math.Abs(p.UnitsPerPackage)
	return p
}

// WithOrderDefaults sanitises the mode, defaults the minimum order to 1 and
// drops a maximum below the minimum. Units per package are left as given, so
// a non-positive value keeps the calculator inert.
func (p ProductConfiguration) WithOrderDefaults() ProductConfiguration {
	p.Mode = ParseMode(string(p.Mode))
	if p.PricePerUnit < 0 {
		p.PricePerUnit = 0
	}
	if p.MinOrderQty < 1 {
		p.MinOrderQty = 1
	}
	if p.MaxOrderQty < p.MinOrderQty {
		p.MaxOrderQty = 0
	}
	if p.PiecesPerPackage < 0 {
		p.PiecesPerPackage = 0
	}
	if p.StockOnHand != nil && *p.StockOnHand < 0 {
		zero := 0
		p.StockOnHand = &zero
	}
	return p
}

// Inert reports whether the calculator must ignore every event for this product.
func (p ProductConfiguration) Inert() bool {
	return !p.Mode.Measured() || p.UnitsPerPackage <= 0
}

// OrderBounds returns the configured [min, max] order quantity. A max of 0
// means the order is unbounded above.
func (p ProductConfiguration) OrderBounds() (minQty, maxQty int) {
	minQty = p.MinOrderQty
	if minQty < 1 {
		minQty = 1
	}
	maxQty = p.MaxOrderQty
	if maxQty > 0 && maxQty < minQty {
		maxQty = 0
	}
	return minQty, maxQty
}

// WithStockBounds returns a copy whose MaxOrderQty follows the storefront
// quantity widget: without an explicit maximum, tracked stock becomes the max.
func (p ProductConfiguration) WithStockBounds() ProductConfiguration {
	minQty, maxQty := p.OrderBounds()
	if maxQty == 0 && p.StockOnHand != nil && *p.StockOnHand >= minQty {
		p.MaxOrderQty = *p.StockOnHand
	}
	return p
}

// ExceedsStock reports whether qty packages cannot be served from tracked stock.
func (p ProductConfiguration) ExceedsStock(qty int) bool {
	return p.StockOnHand != nil && qty > *p.StockOnHand
}
