package sprig

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// SlotSize is the number of float32 cells in every block: a, b, c, d, tx, ty.
const SlotSize = 6

// DefaultMaxTransforms is the number of simultaneously live transforms a pool
// holds when PoolConfig.MaxTransforms is not set.
const DefaultMaxTransforms = 10_000

// blocksPerTransform is the number of blocks each Transform owns (local, world).
const blocksPerTransform = 2

// slot states. A slot past the bump cursor has never been handed out and is
// neither live nor free.
const (
	slotUnused uint8 = iota
	slotLive
	slotFree
)

// Block is a fixed-size view into a Pool's backing store. The zero Block is
// not owned by any pool. A Block is tied to the pool generation it was
// allocated in; Reset starts a new generation and orphans every earlier Block.
type Block struct {
	pool *Pool
	off  int32
	gen  uint32
}

// Offset returns the index of the block's first cell in the backing store.
func (b Block) Offset() int {
	return int(b.off)
}

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool {
	return b.pool == nil
}

// Cells returns the block's SlotSize cells. The slice aliases the backing
// store and is capped so appends cannot spill into a neighbouring block.
// The zero Block and blocks orphaned by Reset have no cells; Cells returns
// nil for them.
func (b Block) Cells() []float32 {
	if b.pool == nil || b.gen != b.pool.gen {
		return nil
	}
	off := int(b.off)
	return b.pool.store[off : off+SlotSize : off+SlotSize]
}

// PoolStats is a snapshot of a pool's bookkeeping.
type PoolStats struct {
	Capacity int // total blocks the backing store can hold
	Bumped   int // blocks carved by bump allocation so far
	Live     int // blocks currently handed out
	Free     int // blocks waiting on the free list
}

// Pool hands out fixed-size blocks from one preallocated backing store.
// Freed blocks are reused LIFO before any new bump allocation. The store
// never grows.
//
// A Pool is not safe for concurrent use; the frame update phase is expected
// to own it.
type Pool struct {
	store    []float32
	bump     int32   // cell offset of the next unbumped slot
	freeList []int32 // cell offsets, most recently freed last
	state    []uint8 // per-slot lifecycle, indexed by off/SlotSize
	live     int
	gen      uint32 // bumped by Reset

	debug  bool
	logger *zap.Logger
}

// NewPool creates a pool sized for cfg.MaxTransforms transforms.
func NewPool(cfg PoolConfig) (*Pool, error) {
	n := cfg.MaxTransforms
	if n == 0 {
		n = DefaultMaxTransforms
	}
	if n < 0 {
		return nil, fmt.Errorf("sprig: invalid max transforms %d", n)
	}
	// offsets are int32; check before multiplying so large n cannot wrap
	if n > math.MaxInt32/(blocksPerTransform*SlotSize) {
		return nil, fmt.Errorf("sprig: max transforms %d exceeds addressable store", n)
	}
	slots := n * blocksPerTransform
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		store:    make([]float32, slots*SlotSize),
		freeList: make([]int32, 0, 64),
		state:    make([]uint8, slots),
		debug:    cfg.Debug,
		logger:   logger,
	}, nil
}

// Allocate returns a block, reusing the most recently freed one if any.
// The contents of a reused block are whatever its previous owner left.
func (p *Pool) Allocate() (Block, error) {
	if n := len(p.freeList); n > 0 {
		off := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		p.state[off/SlotSize] = slotLive
		p.live++
		return Block{pool: p, off: off, gen: p.gen}, nil
	}
	if int(p.bump)+SlotSize > len(p.store) {
		p.logger.Warn("block pool exhausted",
			zap.Int("capacity", len(p.state)),
			zap.Int("live", p.live))
		return Block{}, ErrCapacityExhausted
	}
	off := p.bump
	p.bump += SlotSize
	p.state[off/SlotSize] = slotLive
	p.live++
	return Block{pool: p, off: off, gen: p.gen}, nil
}

// Free returns b to the free list. Freeing a block twice, freeing a block
// from another pool or freeing one handed out before the last Reset is
// rejected and leaves the free list untouched.
func (p *Pool) Free(b Block) error {
	if b.pool != p || b.gen != p.gen || b.off < 0 || b.off%SlotSize != 0 || b.off >= p.bump {
		p.logger.Warn("rejected foreign block", zap.Int("offset", int(b.off)))
		return fmt.Errorf("free offset %d: %w", b.off, ErrForeignBlock)
	}
	slot := b.off / SlotSize
	if p.state[slot] == slotFree {
		p.logger.Warn("rejected double free", zap.Int("offset", int(b.off)))
		return fmt.Errorf("free offset %d: %w", b.off, ErrDoubleFree)
	}
	p.state[slot] = slotFree
	p.freeList = append(p.freeList, b.off)
	p.live--
	return nil
}

// Reset returns every block to the pool at once. Blocks handed out before
// the reset are orphaned. Free rejects them with ErrForeignBlock and
// transforms built on them report ErrDestroyed.
func (p *Pool) Reset() {
	p.gen++
	clear(p.state)
	p.freeList = p.freeList[:0]
	p.bump = 0
	p.live = 0
}

// Capacity returns the total number of blocks the pool can hold.
func (p *Pool) Capacity() int {
	return len(p.state)
}

// Live returns the number of blocks currently handed out.
func (p *Pool) Live() int {
	return p.live
}

// Stats returns a snapshot of the pool's bookkeeping.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Capacity: len(p.state),
		Bumped:   int(p.bump) / SlotSize,
		Live:     p.live,
		Free:     len(p.freeList),
	}
}
