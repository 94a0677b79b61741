package interp

// Linear blends x0 and x1 at t in [0, 1].
func Linear(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 evaluates the Catmull-Rom segment between x0 and x1 at t in
// [0, 1], using xm1 and x2 as the outer neighbors. The curve passes through
// x0 at t = 0 and x1 at t = 1 and reproduces linear ramps exactly.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	slope0 := 0.5 * (x1 - xm1)
	slope1 := 0.5 * (x2 - x0)
	d := x1 - x0
	a := slope0 + slope1 - 2*d
	b := 3*d - 2*slope0 - slope1
	return ((a*t+b)*t+slope0)*t + x0
}

// at evaluates the method's kernel for one tap along line.
func (m Method) at(line []float64, tp tap) float64 {
	if m == MethodCubic {
		return Hermite4(tp.frac, line[tp.idx[0]], line[tp.idx[1]], line[tp.idx[2]], line[tp.idx[3]])
	}
	return Linear(tp.frac, line[tp.idx[1]], line[tp.idx[2]])
}
