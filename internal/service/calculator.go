package service

import (
	"math"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// maxPackages caps every package and piece count the calculator produces.
const maxPackages = math.MaxInt32

// Calculator converts between dimensions, a derived measurement and a package
// count for one product. All methods are pure.
type Calculator struct {
	unitsPerPackage float64
	minOrderQty     int
	maxOrderQty     int
}

// NewCalculator builds a calculator from the product's conversion and order bounds.
func NewCalculator(product model.ProductConfiguration) *Calculator {
	minQty, maxQty := product.OrderBounds()
	return &Calculator{
		unitsPerPackage: product.UnitsPerPackage,
		minOrderQty:     minQty,
		maxOrderQty:     maxQty,
	}
}

// UnitsPerPackage returns the meters contained in one package.
func (c *Calculator) UnitsPerPackage() float64 { return c.unitsPerPackage }

// MinOrderQty returns the lower order bound.
func (c *Calculator) MinOrderQty() int { return c.minOrderQty }

// MarginMultiplier converts a margin percentage into a multiplier (10 -> 1.1).
func MarginMultiplier(percent int) float64 {
	return 1 + float64(percent)/100
}

// AreaFromDimensions returns the margin-inflated area, or 0 for a missing
// dimension or an area too large to represent.
func (c *Calculator) AreaFromDimensions(length, width float64, marginPercent int) float64 {
	if length <= 0 || width <= 0 {
		return 0
	}
	area := Round2(length * width * MarginMultiplier(marginPercent))
	if math.IsInf(area, 0) {
		return 0
	}
	return area
}

// PackagesFromMeasurement returns how many packages cover total. The ratio is
// rounded to two decimals before the ceiling so 2.000000001 counts as 2.
// Ratios beyond maxPackages are capped there.
func (c *Calculator) PackagesFromMeasurement(total float64) int {
	if !(total > 0) || c.unitsPerPackage <= 0 {
		return 0
	}
	ratio := Round2(total / c.unitsPerPackage)
	if ratio >= maxPackages {
		return maxPackages
	}
	return int(math.Ceil(ratio))
}

// MeasurementFromPackages returns the coverage of n packages, or 0 unless n is
// a positive whole number.
func (c *Calculator) MeasurementFromPackages(n float64) float64 {
	if !IsPositiveInteger(n) {
		return 0
	}
	return math.Min(Round2(math.Min(n, maxPackages)*c.unitsPerPackage), math.MaxFloat64)
}

// MosaicMeasurementFromQty returns the coverage of qty pieces without margin.
// The piece count is capped at maxPackages.
func (c *Calculator) MosaicMeasurementFromQty(qty float64) float64 {
	if !(qty > 0) {
		return 0
	}
	return math.Min(Round2(math.Min(qty, maxPackages)*c.unitsPerPackage), math.MaxFloat64)
}

// MosaicQtyFromMeasurement returns the pieces needed to cover total without margin.
func (c *Calculator) MosaicQtyFromMeasurement(total float64) int {
	return c.PackagesFromMeasurement(total)
}

// ClampOrderQty forces candidate into the configured order bounds.
func (c *Calculator) ClampOrderQty(candidate int) int {
	if c.maxOrderQty > 0 && candidate > c.maxOrderQty {
		return c.maxOrderQty
	}
	if candidate < c.minOrderQty {
		return c.minOrderQty
	}
	return candidate
}
