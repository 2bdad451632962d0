// pinwheels draws a grid of hubs, each with four blades parented to it.
// Hubs spin and pulse; blades inherit the hub's rotation and scale through
// Update and add their own spin on top. No external assets are required.
package main

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sprig"
	"github.com/tanema/gween/ease"
)

const (
	screenW = 960
	screenH = 540
	cols    = 6
	rows    = 3
	blades  = 4
	bladeW  = 36
	bladeH  = 8
)

type pinwheel struct {
	cx, cy float64
	hub    *sprig.Transform
	blades [blades]*sprig.Transform
	pulse  *sprig.TweenGroup
	grow   bool
	spin   float64
}

type game struct {
	pool   *sprig.Pool
	wheels []*pinwheel
	pixel  *ebiten.Image
}

func newGame() (*game, error) {
	pool, err := sprig.NewPool(sprig.PoolConfig{MaxTransforms: cols * rows * (blades + 1)})
	if err != nil {
		return nil, err
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	g := &game{pool: pool, pixel: pixel}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w := &pinwheel{
				cx:   (float64(c) + 0.5) * screenW / cols,
				cy:   (float64(r) + 0.5) * screenH / rows,
				spin: 0.01 + 0.01*float64((r*cols+c)%5),
			}
			if w.hub, err = sprig.NewTransform(pool, 0, 0); err != nil {
				return nil, err
			}
			for i := range w.blades {
				b, err := sprig.NewTransform(pool, 0, 0)
				if err != nil {
					return nil, err
				}
				if err := b.Rotate(float64(i) * 2 * math.Pi / blades); err != nil {
					return nil, err
				}
				if err := b.Translate(bladeW/2, 0); err != nil {
					return nil, err
				}
				w.blades[i] = b
			}
			g.wheels = append(g.wheels, w)
		}
	}
	return g, nil
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	for _, w := range g.wheels {
		if w.pulse == nil || w.pulse.Done {
			to := 0.6
			if w.grow = !w.grow; w.grow {
				to = 1.4
			}
			p, err := sprig.TweenScale(w.hub, to, to, 1.2, ease.InOutQuad)
			if err != nil {
				return err
			}
			w.pulse = p
		}
		w.pulse.Update(dt)
		if err := w.pulse.Err(); err != nil {
			return err
		}
		if err := w.hub.Rotate(w.spin); err != nil {
			return err
		}

		// parents before children
		if err := w.hub.Update(nil); err != nil {
			return err
		}
		for _, b := range w.blades {
			if err := b.Rotate(-w.spin / 2); err != nil {
				return err
			}
			if err := b.Update(w.hub); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 40, A: 255})

	var op ebiten.DrawImageOptions
	for _, w := range g.wheels {
		for i, b := range w.blades {
			geo, err := b.WorldGeoM()
			if err != nil {
				log.Printf("blade %d: %v", i, err)
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Scale(bladeW, bladeH)
			op.GeoM.Translate(-bladeW/2, -bladeH/2)
			op.GeoM.Concat(geo)
			op.GeoM.Translate(w.cx, w.cy)
			op.ColorScale.Reset()
			op.ColorScale.Scale(0.3+0.7*float32(i)/blades, 0.7, 1, 1)
			screen.DrawImage(g.pixel, &op)
		}
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("sprig: pinwheels")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
