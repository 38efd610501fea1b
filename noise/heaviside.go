package noise

// Heaviside returns 0 for x < 0, 0.5 for x == 0, and 1 for x > 0.
func Heaviside(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 0:
		return 1
	default:
		return 0.5
	}
}

// HeavisideSlice applies [Heaviside] element-wise into a new slice.
func HeavisideSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = Heaviside(v)
	}
	return out
}
