package sprig

import "go.uber.org/zap"

// SetDebugMode enables or disables stats logging.
func (p *Pool) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// SetLogger replaces the pool's logger. Nil restores the no-op logger.
func (p *Pool) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	p.logger = l
}

// LogStats writes the pool's bookkeeping at debug level. It does nothing
// unless debug mode is on; call it once per frame at most.
func (p *Pool) LogStats() {
	if !p.debug {
		return
	}
	s := p.Stats()
	p.logger.Debug("block pool",
		zap.Int("capacity", s.Capacity),
		zap.Int("bumped", s.Bumped),
		zap.Int("live", s.Live),
		zap.Int("free", s.Free))

	if s.Capacity > 0 && s.Live*10 >= s.Capacity*9 {
		p.logger.Warn("block pool above 90% of capacity",
			zap.Int("live", s.Live),
			zap.Int("capacity", s.Capacity))
	}
}
