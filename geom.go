package sprig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldGeoM returns the world matrix as an ebiten.GeoM, ready to Concat into
// DrawImageOptions.GeoM.
func (t *Transform) WorldGeoM() (ebiten.GeoM, error) {
	m, err := t.worldCells()
	if err != nil {
		return ebiten.GeoM{}, err
	}
	return cellsGeoM(m), nil
}

// LocalGeoM returns the local matrix as an ebiten.GeoM.
func (t *Transform) LocalGeoM() (ebiten.GeoM, error) {
	m, err := t.localCells()
	if err != nil {
		return ebiten.GeoM{}, err
	}
	return cellsGeoM(m), nil
}

func cellsGeoM(c []float32) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, float64(c[ia]))
	m.SetElement(1, 0, float64(c[ib]))
	m.SetElement(0, 1, float64(c[ic]))
	m.SetElement(1, 1, float64(c[id]))
	m.SetElement(0, 2, float64(c[itx]))
	m.SetElement(1, 2, float64(c[ity]))
	return m
}

// WorldMat3 returns the world matrix in column-vector form for GL-style
// consumers: columns (a, b, 0), (c, d, 0), (tx, ty, 1).
func (t *Transform) WorldMat3() (mgl32.Mat3, error) {
	m, err := t.worldCells()
	if err != nil {
		return mgl32.Mat3{}, err
	}
	return cellsMat3(m), nil
}

// LocalMat3 returns the local matrix in column-vector form.
func (t *Transform) LocalMat3() (mgl32.Mat3, error) {
	m, err := t.localCells()
	if err != nil {
		return mgl32.Mat3{}, err
	}
	return cellsMat3(m), nil
}

func cellsMat3(c []float32) mgl32.Mat3 {
	return mgl32.Mat3FromCols(
		mgl32.Vec3{c[ia], c[ib], 0},
		mgl32.Vec3{c[ic], c[id], 0},
		mgl32.Vec3{c[itx], c[ity], 1},
	)
}
