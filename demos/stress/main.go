// stress fills a transform pool to capacity, spins every transform each
// frame, and recycles a slice of them per frame through Destroy and
// NewTransform. Pool stats are logged once a second.
//
//	go run ./demos/stress -config pool.toml
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sprig"
	"go.uber.org/zap"
)

const (
	screenW       = 1280
	screenH       = 720
	recyclePerTic = 100
	quadSize      = 6
)

type spinner struct {
	t     *sprig.Transform
	speed float64
}

type game struct {
	pool     *sprig.Pool
	logger   *zap.Logger
	root     *sprig.Transform
	spinners []spinner
	pixel    *ebiten.Image
	frame    int
}

func newSpinner(pool *sprig.Pool) (spinner, error) {
	t, err := sprig.NewTransform(pool, rand.Float64()*screenW, rand.Float64()*screenH)
	if err != nil {
		return spinner{}, err
	}
	return spinner{t: t, speed: (rand.Float64() - 0.5) * 0.2}, nil
}

func newGame(cfg sprig.PoolConfig, logger *zap.Logger) (*game, error) {
	cfg.Logger = logger
	pool, err := sprig.NewPool(cfg)
	if err != nil {
		return nil, err
	}
	root, err := sprig.NewTransform(pool, 0, 0)
	if err != nil {
		return nil, err
	}

	g := &game{pool: pool, logger: logger, root: root}
	for {
		s, err := newSpinner(pool)
		if err != nil {
			// full: the pool reports exhaustion instead of growing
			logger.Info("pool filled", zap.Int("spinners", len(g.spinners)), zap.Error(err))
			break
		}
		g.spinners = append(g.spinners, s)
	}

	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g, nil
}

func (g *game) Update() error {
	g.frame++

	// recycle: destroyed blocks are reused LIFO by the next NewTransform
	for i := 0; i < recyclePerTic && len(g.spinners) > 0; i++ {
		k := rand.IntN(len(g.spinners))
		if err := g.spinners[k].t.Destroy(); err != nil {
			return err
		}
		s, err := newSpinner(g.pool)
		if err != nil {
			return err
		}
		g.spinners[k] = s
	}

	if err := g.root.Update(nil); err != nil {
		return err
	}
	for _, s := range g.spinners {
		if err := s.t.Rotate(s.speed); err != nil {
			return err
		}
		if err := s.t.Update(g.root); err != nil {
			return err
		}
	}

	if g.frame%ebiten.TPS() == 0 {
		g.pool.LogStats()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 15, G: 15, B: 23, A: 255})

	var op ebiten.DrawImageOptions
	for _, s := range g.spinners {
		geo, err := s.t.WorldGeoM()
		if err != nil {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(quadSize, quadSize)
		op.GeoM.Translate(-quadSize/2, -quadSize/2)
		op.GeoM.Concat(geo)
		screen.DrawImage(g.pixel, &op)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	configPath := flag.String("config", "", "TOML pool config (max_transforms, debug)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := sprig.PoolConfig{Debug: true}
	if *configPath != "" {
		if cfg, err = sprig.LoadPoolConfig(*configPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("sprig: stress")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
