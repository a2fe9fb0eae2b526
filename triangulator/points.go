// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// MaxIntegerCoordinate is the largest magnitude of an integer coordinate that
// converts to float64 without rounding.
const MaxIntegerCoordinate = 1 << 53

// IntegerCoordinateRangeError is returned by IntegerPoints for a coordinate
// whose magnitude exceeds MaxIntegerCoordinate.
type IntegerCoordinateRangeError struct {
	Index int
	Value int64
}

func (e *IntegerCoordinateRangeError) Error() string {
	return fmt.Sprintf("triangulator: point %d coordinate %d exceeds ±2^53", e.Index, e.Value)
}

// IntegerPoints returns an accessor over integer points. Conversion is exact,
// so every predicate decides on the integer geometry.
func IntegerPoints[T ~int | ~int8 | ~int16 | ~int32 | ~int64](xy [][2]T) (PointFunc, error) {
	pts := make([]r2.Point, len(xy))
	for i, p := range xy {
		for _, c := range p {
			if v := int64(c); v > MaxIntegerCoordinate || v < -MaxIntegerCoordinate {
				return nil, &IntegerCoordinateRangeError{Index: i, Value: v}
			}
		}
		pts[i] = r2.Point{X: float64(p[0]), Y: float64(p[1])}
	}
	return func(i int) r2.Point { return pts[i] }, nil
}
