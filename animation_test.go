package sprig

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenTranslationReachesTarget(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 10, 20)
	mustDo(t, "Scale", tr.Scale(2, 2))

	g, err := TweenTranslation(tr, 100, 200, 1.0, ease.Linear)
	mustDo(t, "TweenTranslation", err)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	x, y, err := tr.LocalTranslate()
	mustDo(t, "LocalTranslate", err)
	if math.Abs(x-100) > 0.5 {
		t.Errorf("tx = %f, want ~100", x)
	}
	if math.Abs(y-200) > 0.5 {
		t.Errorf("ty = %f, want ~200", y)
	}
	sx, sy, err := tr.LocalScale()
	mustDo(t, "LocalScale", err)
	assertNear(t, "sx", sx, 2)
	assertNear(t, "sy", sy, 2)
}

func TestTweenTranslationMidpoint(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)

	g, err := TweenTranslation(tr, 100, 0, 1.0, ease.Linear)
	mustDo(t, "TweenTranslation", err)
	g.Update(0.5)

	if g.Done {
		t.Fatal("should not be Done at half duration")
	}
	x, _, err := tr.LocalTranslate()
	mustDo(t, "LocalTranslate", err)
	if math.Abs(x-50) > 1 {
		t.Errorf("tx at midpoint = %f, want ~50", x)
	}
}

func TestTweenRotationKeepsScale(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)
	mustDo(t, "Scale", tr.Scale(2, 3))

	g, err := TweenRotation(tr, 1.0, 0.5, ease.Linear)
	mustDo(t, "TweenRotation", err)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	r, err := tr.LocalRotation()
	mustDo(t, "LocalRotation", err)
	if math.Abs(r-1.0) > 0.01 {
		t.Errorf("rotation = %f, want ~1.0", r)
	}
	sx, sy, err := tr.LocalScale()
	mustDo(t, "LocalScale", err)
	if math.Abs(sx-2) > 0.01 || math.Abs(sy-3) > 0.01 {
		t.Errorf("scale = (%f, %f), want (2, 3)", sx, sy)
	}
}

func TestTweenRotationPastQuarterTurn(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)
	mustDo(t, "SetRotation", tr.SetRotation(2.0))
	mustDo(t, "SetScale", tr.SetScale(2, 2))

	g, err := TweenRotation(tr, 2.4, 1.0, ease.Linear)
	mustDo(t, "TweenRotation", err)
	g.Update(0.5)

	// midway between 2.0 and 2.4, not between -2.0 and 2.4
	m := mustLocal(t, tr)
	got := math.Atan2(float64(m[ib]), float64(m[ia]))
	if math.Abs(got-2.2) > 1e-4 {
		t.Errorf("rotation at midpoint = %f, want ~2.2", got)
	}
	sx, sy, err := tr.LocalScale()
	mustDo(t, "LocalScale", err)
	if math.Abs(sx-2) > 1e-4 || math.Abs(sy-2) > 1e-4 {
		t.Errorf("scale = (%f, %f), want (2, 2)", sx, sy)
	}
}

func TestTweenStopsAfterPoolReset(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)

	g, err := TweenTranslation(tr, 100, 100, 1.0, ease.Linear)
	mustDo(t, "TweenTranslation", err)
	p.Reset()
	other := newTestTransform(t, p, 3, 4)

	g.Update(0.5)
	if !g.Done {
		t.Error("expected Done after pool reset")
	}
	assertMatrix(t, "other.local", mustLocal(t, other), [6]float64{1, 0, 0, 1, 3, 4})
}

func TestTweenScaleKeepsRotation(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)
	mustDo(t, "Rotate", tr.Rotate(0.4))

	g, err := TweenScale(tr, 2.0, 3.0, 0.5, ease.Linear)
	mustDo(t, "TweenScale", err)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	sx, sy, err := tr.LocalScale()
	mustDo(t, "LocalScale", err)
	if math.Abs(sx-2.0) > 0.01 {
		t.Errorf("sx = %f, want ~2.0", sx)
	}
	if math.Abs(sy-3.0) > 0.01 {
		t.Errorf("sy = %f, want ~3.0", sy)
	}
	r, err := tr.LocalRotation()
	mustDo(t, "LocalRotation", err)
	if math.Abs(r-0.4) > 0.01 {
		t.Errorf("rotation = %f, want ~0.4", r)
	}
}

func TestTweenLeavesWorldForUpdate(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)

	g, err := TweenTranslation(tr, 50, 0, 1.0, ease.Linear)
	mustDo(t, "TweenTranslation", err)
	g.Update(1.0)

	assertMatrix(t, "world before Update", mustWorld(t, tr), [6]float64{1, 0, 0, 1, 0, 0})
	mustDo(t, "Update", tr.Update(nil))
	x, _, err := tr.WorldTranslate()
	mustDo(t, "WorldTranslate", err)
	if math.Abs(x-50) > 0.5 {
		t.Errorf("world tx = %f, want ~50", x)
	}
}

func TestTweenStopsOnDestroyedTarget(t *testing.T) {
	p := newTestPool(t, 2)
	tr := newTestTransform(t, p, 0, 0)

	g, err := TweenTranslation(tr, 100, 100, 1.0, ease.Linear)
	mustDo(t, "TweenTranslation", err)
	mustDo(t, "Destroy", tr.Destroy())

	// the freed blocks now belong to another transform
	other := newTestTransform(t, p, 7, 7)

	g.Update(0.5)
	if !g.Done {
		t.Error("expected Done after target destroyed")
	}
	if g.Err() != nil {
		t.Errorf("Err = %v, want nil", g.Err())
	}
	assertMatrix(t, "other.local", mustLocal(t, other), [6]float64{1, 0, 0, 1, 7, 7})
}

func TestTweenDoneIsNoop(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)

	g, err := TweenTranslation(tr, 10, 0, 0.5, ease.Linear)
	mustDo(t, "TweenTranslation", err)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}

	mustDo(t, "SetTransform", tr.SetTransform(1, 0, 0, 1, 99, 0))
	g.Update(0.5)
	x, _, err := tr.LocalTranslate()
	mustDo(t, "LocalTranslate", err)
	assertNear(t, "tx", x, 99)
}

func TestTweenConstructorsRejectDestroyed(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)
	mustDo(t, "Destroy", tr.Destroy())

	if _, err := TweenTranslation(tr, 1, 1, 1, ease.Linear); !errors.Is(err, ErrDestroyed) {
		t.Errorf("TweenTranslation err = %v, want ErrDestroyed", err)
	}
	if _, err := TweenRotation(tr, 1, 1, ease.Linear); !errors.Is(err, ErrDestroyed) {
		t.Errorf("TweenRotation err = %v, want ErrDestroyed", err)
	}
	if _, err := TweenScale(tr, 1, 1, 1, ease.Linear); !errors.Is(err, ErrDestroyed) {
		t.Errorf("TweenScale err = %v, want ErrDestroyed", err)
	}
}

func TestTweenRotationDegenerate(t *testing.T) {
	p := newTestPool(t, 1)
	tr := newTestTransform(t, p, 0, 0)
	mustDo(t, "Scale", tr.Scale(0, 1))

	if _, err := TweenRotation(tr, 1, 1, ease.Linear); !errors.Is(err, ErrDegenerate) {
		t.Errorf("TweenRotation err = %v, want ErrDegenerate", err)
	}
}
