package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two components of a Transform's local matrix
// simultaneously. Create one via TweenTranslation, TweenRotation or
// TweenScale and call Update(dt) each frame, before the frame's world
// updates. If the target is destroyed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(t *Transform, v [2]float64) error
	target *Transform
	err    error
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values into the
// target's local matrix. A failed write stops the group; see Err.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDestroyed() {
		g.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if err := g.apply(g.target, vals); err != nil {
		g.err = err
		g.Done = true
		return
	}
	g.Done = allDone
}

// Err returns the error that stopped the group, if any.
func (g *TweenGroup) Err() error {
	return g.err
}

// TweenTranslation creates a TweenGroup that moves the local translation to
// (toX, toY). The linear part is left alone.
func TweenTranslation(t *Transform, toX, toY float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	x, y, err := t.LocalTranslate()
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 2, target: t, apply: applyTranslation}
	g.tweens[0] = gween.New(float32(x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(y), float32(toY), duration, fn)
	return g, nil
}

// TweenRotation creates a TweenGroup that turns the local rotation to the
// target angle in radians, keeping the current scale. The start angle is
// read over the full circle, so a node already past a quarter turn starts
// where it is rather than at its LocalRotation reading.
func TweenRotation(t *Transform, to float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	m, err := t.localCells()
	if err != nil {
		return nil, err
	}
	from, err := rotationAngle(m)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 1, target: t, apply: applyRotation}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	return g, nil
}

// TweenScale creates a TweenGroup that moves the local scale to (toX, toY),
// keeping the current rotation.
func TweenScale(t *Transform, toX, toY float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	sx, sy, err := t.LocalScale()
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 2, target: t, apply: applyScale}
	g.tweens[0] = gween.New(float32(sx), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(sy), float32(toY), duration, fn)
	return g, nil
}

func applyTranslation(t *Transform, v [2]float64) error {
	m, err := t.localCells()
	if err != nil {
		return err
	}
	m[itx] = float32(v[0])
	m[ity] = float32(v[1])
	return nil
}

func applyRotation(t *Transform, v [2]float64) error {
	sx, sy, err := t.LocalScale()
	if err != nil {
		return err
	}
	if err := t.SetRotation(v[0]); err != nil {
		return err
	}
	return t.SetScale(sx, sy)
}

func applyScale(t *Transform, v [2]float64) error {
	return t.SetScale(v[0], v[1])
}
