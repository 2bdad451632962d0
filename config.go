package sprig

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// PoolConfig configures a Pool. The zero value selects DefaultMaxTransforms,
// debug off, and a no-op logger.
type PoolConfig struct {
	// MaxTransforms is the number of transforms that may be live at once.
	// Each transform holds two blocks.
	MaxTransforms int `toml:"max_transforms"`

	// Debug enables stats logging through Pool.LogStats.
	Debug bool `toml:"debug"`

	// Logger receives pool diagnostics. Nil means zap.NewNop().
	Logger *zap.Logger `toml:"-"`
}

// DecodePoolConfig parses a TOML pool configuration from r.
//
//	max_transforms = 20000
//	debug = true
func DecodePoolConfig(r io.Reader) (PoolConfig, error) {
	var cfg PoolConfig
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return PoolConfig{}, fmt.Errorf("parse pool config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return PoolConfig{}, fmt.Errorf("parse pool config: unknown key %q", undecoded[0].String())
	}
	if cfg.MaxTransforms < 0 {
		return PoolConfig{}, fmt.Errorf("parse pool config: max_transforms must not be negative, got %d", cfg.MaxTransforms)
	}
	return cfg, nil
}

// LoadPoolConfig reads a TOML pool configuration from path.
func LoadPoolConfig(path string) (PoolConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return PoolConfig{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodePoolConfig(f)
	if err != nil {
		return PoolConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
