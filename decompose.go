package sprig

import "math"

// Decomposition accessors for callers that want named components instead of
// raw matrix fields. They cost several transcendental calls each; renderers
// should consume World or WorldGeoM directly.

// LocalTranslate returns the local translation (tx, ty).
func (t *Transform) LocalTranslate() (x, y float64, err error) {
	m, err := t.localCells()
	if err != nil {
		return 0, 0, err
	}
	return float64(m[itx]), float64(m[ity]), nil
}

// WorldTranslate returns the world translation (tx, ty).
func (t *Transform) WorldTranslate() (x, y float64, err error) {
	m, err := t.worldCells()
	if err != nil {
		return 0, 0, err
	}
	return float64(m[itx]), float64(m[ity]), nil
}

// LocalColumn returns the local (a, b) fields, the first column of the
// linear part.
func (t *Transform) LocalColumn() (a, b float64, err error) {
	m, err := t.localCells()
	if err != nil {
		return 0, 0, err
	}
	return float64(m[ia]), float64(m[ib]), nil
}

// WorldColumn returns the world (a, b) fields.
func (t *Transform) WorldColumn() (a, b float64, err error) {
	m, err := t.worldCells()
	if err != nil {
		return 0, 0, err
	}
	return float64(m[ia]), float64(m[ib]), nil
}

// LocalScale returns the local scale, assuming no shear.
func (t *Transform) LocalScale() (sx, sy float64, err error) {
	m, err := t.localCells()
	if err != nil {
		return 0, 0, err
	}
	sx, sy = decomposeScale(m)
	return sx, sy, nil
}

// WorldScale returns the world scale, assuming no shear.
func (t *Transform) WorldScale() (sx, sy float64, err error) {
	m, err := t.worldCells()
	if err != nil {
		return 0, 0, err
	}
	sx, sy = decomposeScale(m)
	return sx, sy, nil
}

// LocalRotation returns the local rotation in radians. It fails with
// ErrDegenerate when a and c are both zero.
func (t *Transform) LocalRotation() (float64, error) {
	m, err := t.localCells()
	if err != nil {
		return 0, err
	}
	return decomposeRotation(m)
}

// WorldRotation returns the world rotation in radians. It fails with
// ErrDegenerate when a and c are both zero.
func (t *Transform) WorldRotation() (float64, error) {
	m, err := t.worldCells()
	if err != nil {
		return 0, err
	}
	return decomposeRotation(m)
}

func decomposeScale(m []float32) (sx, sy float64) {
	a, b, c, d := float64(m[ia]), float64(m[ib]), float64(m[ic]), float64(m[id])
	return math.Sqrt(a*a + c*c), math.Sqrt(b*b + d*d)
}

// decomposeRotation recovers the angle from the (a, c) pair: acos of the
// normalized a, negated when atan(-c/a) is negative. The result lies in
// [-π, π]; angles outside (-π/2, π/2) are not guaranteed to round-trip.
func decomposeRotation(m []float32) (float64, error) {
	a, c := float64(m[ia]), float64(m[ic])
	if a == 0 && c == 0 {
		return 0, ErrDegenerate
	}
	r := math.Acos(a / math.Sqrt(a*a+c*c))
	if math.Atan(-c/a) < 0 {
		r = -r
	}
	return r, nil
}

// rotationAngle is the full-circle reading of the (a, c) pair, in (-π, π].
// Positive scale is assumed; a negative x scale reads as a half-turn.
func rotationAngle(m []float32) (float64, error) {
	a, c := float64(m[ia]), float64(m[ic])
	if a == 0 && c == 0 {
		return 0, ErrDegenerate
	}
	return math.Atan2(-c, a), nil
}
