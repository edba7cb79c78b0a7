// Package supertile computes routing layouts for hexagonal supertiles.
//
// # Overview
//
// A supertile is a ring of six wire tiles around one logic core. The caller
// names the core kind and the ring positions where the supertile's inputs
// and output must leave; this package places the core, routes each signal
// around the ring, and names the wire tile every slot needs:
//
//	  5    0
//	4  Core  1
//	  3    2
//
// The pipeline for one request is:
//
//  1. Validate positions (range, duplicates, input/output overlap)
//  2. Resolve the kind through a [Catalog] and check its arity
//  3. Orient the core ([orient.Resolve]) or synthesize a wire core
//  4. Route the output and input paths ([route.Route])
//  5. Group each slot's marked ports ([tile.Aggregate])
//  6. Name each slot's tile ([wire.Classify])
//
// # Procedures
//
// Every [Kind] maps onto one of four procedures:
//
//   - [StrictY]: two inputs, one output, exact orientation match required
//   - [BestEffortY]: two inputs, one output, always finds an orientation
//   - [WireThrough]: one input, one output, the core is itself a wire
//   - [Sink]: one input, no output, the core absorbs the signal
//
// # Failures
//
// [ComputeLayout] returns either a complete [Supertile] or the first error
// met, carrying one of the codes INVALID_REQUEST, NO_VALID_ORIENTATION,
// IMPOSSIBLE_ROUTING or UNSUPPORTED_WIRE from package errors. No partial
// layout is ever returned.
//
// # Concurrency
//
// A computation owns its ring state and touches nothing global, so
// independent layouts may be computed from many goroutines at once.
package supertile
