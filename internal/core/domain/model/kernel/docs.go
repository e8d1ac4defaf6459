// Package kernel provides the shared domain primitives of the ordering system.
//
// Currently it holds UUID, the identity value object used by every aggregate
// (users, products, orders). Primitives here are immutable and validate their
// own invariants, so domain objects built on them are always in a valid state.
package kernel
