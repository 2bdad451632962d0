package sprig

import "errors"

var (
	// ErrCapacityExhausted indicates the pool's backing store is full and its
	// free list is empty.
	ErrCapacityExhausted = errors.New("sprig: block pool capacity exhausted")

	// ErrDoubleFree indicates a block was freed while already on the free list.
	ErrDoubleFree = errors.New("sprig: block already free")

	// ErrForeignBlock indicates a block that this pool never handed out.
	ErrForeignBlock = errors.New("sprig: block not owned by this pool")

	// ErrDestroyed indicates an operation on a Transform after Destroy or
	// after its pool was Reset.
	ErrDestroyed = errors.New("sprig: transform destroyed")

	// ErrDegenerate indicates a rotation was requested from a matrix whose
	// first column (a, c) is the zero vector.
	ErrDegenerate = errors.New("sprig: degenerate matrix, rotation undefined")
)
