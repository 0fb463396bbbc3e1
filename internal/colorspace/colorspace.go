package colorspace

// Point is the capability set required of a clusterable element.
//
// The type parameter is the implementing type itself (the usual
// self-referential constraint), so arithmetic stays closed over one color
// representation: a Lab point can never be averaged with an RGB point.
//
// Implementations must be value types with no hidden state; the engine
// copies points freely.
type Point[P any] interface {
	// DistanceSq returns the squared Euclidean distance to other.
	// The result must be non-negative for finite inputs; the square root
	// is deliberately omitted.
	DistanceSq(other P) float64

	// Add returns the component-wise sum of the point and other.
	Add(other P) P

	// Scale returns the point with every component multiplied by f.
	// Together with Add and the zero value this is sufficient to compute
	// arithmetic means.
	Scale(f float64) P

	// Luminance returns a scalar lightness projection used to order
	// points from darkest to lightest. The absolute scale is
	// implementation-defined; only the ordering matters.
	Luminance() float64

	// Channels returns the raw component triple in the point's native
	// scale.
	Channels() [3]float64
}

// Mean returns the arithmetic mean of points.
//
// The zero value of P is returned for an empty slice; callers that cannot
// tolerate that must check first.
func Mean[P Point[P]](points []P) P {
	var sum P
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
