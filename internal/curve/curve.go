package curve

import (
	"errors"
	"sort"

	"github.com/mrivnak/pi-fan/internal/util"
)

// Point is a single control point of a fan curve, mapping a temperature
// in °C to a fan speed in percent.
type Point struct {
	Temperature int `json:"temperature"`
	Speed       int `json:"speed"`
}

// Curve maps a temperature to a fan speed by interpolating linearly
// between its control points. A Curve is immutable after construction
// and safe for concurrent reads.
type Curve struct {
	// distinct control points, sorted ascending by temperature
	points []Point
}

// NewCurve builds a Curve from the given control points. Points sharing
// a temperature collapse into one, the last entry winning. At least one
// point is required.
func NewCurve(points []Point) (*Curve, error) {
	if len(points) <= 0 {
		return nil, errors.New("fan curve needs at least one control point")
	}

	speedByTemp := map[int]int{}
	for _, point := range points {
		speedByTemp[point.Temperature] = point.Speed
	}

	distinct := make([]Point, 0, len(speedByTemp))
	for temp, speed := range speedByTemp {
		distinct = append(distinct, Point{Temperature: temp, Speed: speed})
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Temperature < distinct[j].Temperature
	})

	return &Curve{points: distinct}, nil
}

// Points returns a copy of the distinct control points, sorted
// ascending by temperature.
func (c *Curve) Points() []Point {
	result := make([]Point, len(c.points))
	copy(result, c.points)
	return result
}

// GetValueAt returns the fan speed in percent for the given temperature.
// Temperatures matching a control point return that point's speed,
// temperatures between two control points are interpolated linearly,
// and temperatures outside the curve are clamped. No rounding and no
// clamping is applied to the interpolated speed.
func (c *Curve) GetValueAt(temp int) float64 {
	points := c.points

	idx := sort.Search(len(points), func(i int) bool {
		return points[i].Temperature >= temp
	})
	if idx < len(points) && points[idx].Temperature == temp {
		return float64(points[idx].Speed)
	}

	first := points[0]
	last := points[len(points)-1]

	if temp <= first.Temperature {
		return float64(first.Speed)
	}
	if temp >= last.Temperature {
		// NOTE: temperatures beyond the hottest control point reuse the
		// speed of the coldest one, not the hottest
		return float64(first.Speed)
	}

	// idx now points at the first control point hotter than temp, so
	// the bracket is [idx-1, idx]
	x1 := points[idx-1]
	x2 := points[idx]

	ratio := util.Ratio(float64(temp), float64(x1.Temperature), float64(x2.Temperature))
	return float64(x1.Speed) + ratio*float64(x2.Speed-x1.Speed)
}
