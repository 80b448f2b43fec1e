// Package engine implements the match-3 board simulation: the grid model, match
// detection, board generation, swaps and cascade resolution.
//
// The package is UI-agnostic, synchronous and deterministic for a given random
// source. A turn is fully resolved before Play returns; callers that animate a
// cascade iterate the returned rounds at their own pace.
package engine
