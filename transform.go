package sprig

import (
	"errors"
	"math"
)

// Matrix layout for both blocks: [a, b, c, d, tx, ty]. As a 3x3 row-vector
// matrix:
//
//	| a   b   0 |
//	| c   d   0 |
//	| tx  ty  1 |
//
// A point maps as x' = a*x + c*y + tx, y' = b*x + d*y + ty.
const (
	ia = iota
	ib
	ic
	id
	itx
	ity
)

// Transform is a node's affine state: a local matrix relative to its parent
// and a world matrix derived from the parent chain by Update. Both live in
// blocks drawn from a Pool.
//
// Every method fails with ErrDestroyed once Destroy has been called, or once
// the pool has been Reset.
type Transform struct {
	pool  *Pool
	local Block
	world Block
}

// NewTransform allocates a transform from p with its local translation set
// to (x, y). World starts as the identity and is only written by Update.
func NewTransform(p *Pool, x, y float64) (*Transform, error) {
	local, err := p.Allocate()
	if err != nil {
		return nil, err
	}
	world, err := p.Allocate()
	if err != nil {
		_ = p.Free(local)
		return nil, err
	}

	t := &Transform{pool: p, local: local, world: world}
	setCells(local.Cells(), 1, 0, 0, 1, x, y)
	setCells(world.Cells(), 1, 0, 0, 1, 0, 0)
	return t, nil
}

// Destroy returns both blocks to the pool. The transform is unusable
// afterwards.
func (t *Transform) Destroy() error {
	if t.IsDestroyed() {
		t.pool = nil
		t.local = Block{}
		t.world = Block{}
		return ErrDestroyed
	}
	err := errors.Join(t.pool.Free(t.local), t.pool.Free(t.world))
	t.pool = nil
	t.local = Block{}
	t.world = Block{}
	return err
}

// IsDestroyed reports whether Destroy has been called or the pool has been
// Reset since the transform was created.
func (t *Transform) IsDestroyed() bool {
	return t.pool == nil || t.local.gen != t.pool.gen
}

// Pool returns the pool the transform's blocks came from, or nil once the
// transform is destroyed.
func (t *Transform) Pool() *Pool {
	if t.IsDestroyed() {
		return nil
	}
	return t.pool
}

func (t *Transform) localCells() ([]float32, error) {
	if t.IsDestroyed() {
		return nil, ErrDestroyed
	}
	return t.local.Cells(), nil
}

func (t *Transform) worldCells() ([]float32, error) {
	if t.IsDestroyed() {
		return nil, ErrDestroyed
	}
	return t.world.Cells(), nil
}

// Local returns a copy of the local matrix.
func (t *Transform) Local() ([6]float32, error) {
	m, err := t.localCells()
	if err != nil {
		return [6]float32{}, err
	}
	return [6]float32(m), nil
}

// World returns a copy of the world matrix as of the last Update.
func (t *Transform) World() ([6]float32, error) {
	m, err := t.worldCells()
	if err != nil {
		return [6]float32{}, err
	}
	return [6]float32(m), nil
}

// --- Local-space mutators ---

// Translate moves the transform by (x, y) measured in its own rotated and
// scaled frame.
func (t *Transform) Translate(x, y float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	a, b, c, d := float64(m[ia]), float64(m[ib]), float64(m[ic]), float64(m[id])
	m[itx] = float32(a*x + c*y + float64(m[itx]))
	m[ity] = float32(b*x + d*y + float64(m[ity]))
	return nil
}

// Scale scales (a, b) by x and (c, d) by y. Translation is untouched.
func (t *Transform) Scale(x, y float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	m[ia] = float32(float64(m[ia]) * x)
	m[ib] = float32(float64(m[ib]) * x)
	m[ic] = float32(float64(m[ic]) * y)
	m[id] = float32(float64(m[id]) * y)
	return nil
}

// Rotate composes a rotation by radians onto the linear part. Translation
// is untouched.
func (t *Transform) Rotate(radians float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	a, b, c, d := float64(m[ia]), float64(m[ib]), float64(m[ic]), float64(m[id])
	sin, cos := math.Sincos(radians)

	m[ia] = float32(a*cos + c*sin)
	m[ib] = float32(b*cos + d*sin)
	m[ic] = float32(-a*sin + c*cos)
	m[id] = float32(-b*sin + d*cos)
	return nil
}

// Transform composes the given matrix with the local matrix, the given
// matrix applying first. This is the general path; prefer Translate, Scale
// and Rotate where they fit.
func (t *Transform) Transform(a, b, c, d, tx, ty float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	r := multiplyAffine([6]float64{a, b, c, d, tx, ty}, loadCells(m))
	return t.SetTransform(r[ia], r[ib], r[ic], r[id], r[itx], r[ity])
}

// SetTransform overwrites all six local fields.
func (t *Transform) SetTransform(a, b, c, d, tx, ty float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	setCells(m, a, b, c, d, tx, ty)
	return nil
}

// LoadIdentity resets the local matrix to the identity.
func (t *Transform) LoadIdentity() error {
	return t.SetTransform(1, 0, 0, 1, 0, 0)
}

// SetRotation replaces the linear part with a pure rotation by radians.
// Unlike Rotate, any prior scale or shear is discarded. Translation is
// untouched.
func (t *Transform) SetRotation(radians float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	sin, cos := math.Sincos(radians)
	m[ia] = float32(cos)
	m[ib] = float32(sin)
	m[ic] = float32(-sin)
	m[id] = float32(cos)
	return nil
}

// SetScale replaces the current scale with (x, y) while keeping rotation.
// The (a, c) pair is rescaled to length x and the (b, d) pair to length y,
// the same pairs LocalScale measures. A zero-length pair is rebuilt as
// (x, 0) or (0, y).
func (t *Transform) SetScale(x, y float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	a, b, c, d := float64(m[ia]), float64(m[ib]), float64(m[ic]), float64(m[id])

	if n := math.Hypot(a, c); n != 0 {
		a, c = a/n*x, c/n*x
	} else {
		a, c = x, 0
	}
	if n := math.Hypot(b, d); n != 0 {
		b, d = b/n*y, d/n*y
	} else {
		b, d = 0, y
	}

	m[ia] = float32(a)
	m[ib] = float32(b)
	m[ic] = float32(c)
	m[id] = float32(d)
	return nil
}

// --- World update ---

// Update recomputes world from parent's world and this transform's local
// matrix. A nil parent stands for the root frame, making world equal local.
//
// The caller must update parents before children each frame; Update only
// reads parent's world as it currently is.
func (t *Transform) Update(parent *Transform) error {
	w, err := t.worldCells()
	if err != nil {
		return err
	}
	l := t.local.Cells()

	if parent == nil {
		copy(w, l)
		return nil
	}
	p, err := parent.worldCells()
	if err != nil {
		return err
	}
	storeCells(w, multiplyAffine(loadCells(p), loadCells(l)))
	return nil
}

// LocalToWorld maps a point in this transform's local space through the
// world matrix.
func (t *Transform) LocalToWorld(x, y float64) (float64, float64, error) {
	w, err := t.worldCells()
	if err != nil {
		return 0, 0, err
	}
	wx, wy := transformPoint(loadCells(w), x, y)
	return wx, wy, nil
}

// --- Matrix helpers ---

// multiplyAffine returns the row-vector product p × l:
//
//	a  = p.a*l.a + p.b*l.c
//	b  = p.a*l.b + p.b*l.d
//	c  = p.c*l.a + p.d*l.c
//	d  = p.c*l.b + p.d*l.d
//	tx = p.tx*l.a + p.ty*l.c + l.tx
//	ty = p.tx*l.b + p.ty*l.d + l.ty
func multiplyAffine(p, l [6]float64) [6]float64 {
	return [6]float64{
		p[ia]*l[ia] + p[ib]*l[ic],
		p[ia]*l[ib] + p[ib]*l[id],
		p[ic]*l[ia] + p[id]*l[ic],
		p[ic]*l[ib] + p[id]*l[id],
		p[itx]*l[ia] + p[ity]*l[ic] + l[itx],
		p[itx]*l[ib] + p[ity]*l[id] + l[ity],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[ia]*x + m[ic]*y + m[itx], m[ib]*x + m[id]*y + m[ity]
}

func loadCells(m []float32) [6]float64 {
	return [6]float64{
		float64(m[ia]), float64(m[ib]), float64(m[ic]),
		float64(m[id]), float64(m[itx]), float64(m[ity]),
	}
}

func storeCells(dst []float32, m [6]float64) {
	setCells(dst, m[ia], m[ib], m[ic], m[id], m[itx], m[ity])
}

func setCells(dst []float32, a, b, c, d, tx, ty float64) {
	dst[ia] = float32(a)
	dst[ib] = float32(b)
	dst[ic] = float32(c)
	dst[id] = float32(d)
	dst[itx] = float32(tx)
	dst[ity] = float32(ty)
}
