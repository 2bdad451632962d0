// Package sprig provides pooled 2D affine transforms for scene-graph-style
// rendering.
//
// Every [Transform] owns two 2x3 affine matrices: a local matrix relative to
// its parent and a world matrix accumulated through the parent chain. Both
// are packed as six float32 cells [a, b, c, d, tx, ty] inside blocks handed
// out by a [Pool], one preallocated backing store with a LIFO free list, so
// creating and destroying transforms does not touch the heap.
//
// # Quick start
//
//	pool, err := sprig.NewPool(sprig.PoolConfig{MaxTransforms: 1000})
//	// ...
//	parent, _ := sprig.NewTransform(pool, 100, 50)
//	child, _ := sprig.NewTransform(pool, 10, 0)
//	_ = child.Rotate(math.Pi / 4)
//
//	// once per frame, parents before children
//	_ = parent.Update(nil)
//	_ = child.Update(parent)
//
//	geo, _ := child.WorldGeoM()
//	op.GeoM.Concat(geo)
//
//	// on node removal
//	_ = child.Destroy()
//
// # Matrix convention
//
// As a 3x3 row-vector matrix the six cells read
//
//	| a   b   0 |
//	| c   d   0 |
//	| tx  ty  1 |
//
// and a point maps as x' = a*x + c*y + tx, y' = b*x + d*y + ty. The local
// mutators ([Transform.Translate], [Transform.Scale], [Transform.Rotate],
// [Transform.Transform]) pre-multiply their operand onto the local matrix,
// and [Transform.Update] sets world to parent.world × local.
//
// # Ordering
//
// The package does not own a hierarchy. Whoever walks the scene calls Update
// on parents before children each frame; a child updated first reads its
// parent's world from the previous frame.
//
// # Concurrency
//
// Pools and transforms are not safe for concurrent use. Drive them from one
// goroutine, typically the frame update.
package sprig
