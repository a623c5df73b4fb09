// Package mla implements a multi-level array: a sparse, append-only ordered map
// from an index pair (I, J) to a progression length.
//
// The structure is a tree of fixed fan-out built purely by tail appends:
//
//	              ┌──────────────── root (level 2) ───────────────┐
//	              │ first(c0) │ first(c1) │ ...                    │
//	              └─────┬─────┴─────┬─────┴────────────────────────┘
//	          ┌─────────┘           └─────────┐
//	   ┌── level 1 ──┐                 ┌── level 1 ──┐
//	   │ first(l0).. │                 │ first(lK).. │
//	   └──┬──────────┘                 └──┬──────────┘
//	  ┌───┴───┐                       ┌───┴───┐
//	  │ leaf  │ ... full, never        │ leaf  │ <- tail
//	  └───────┘     revisited          └───────┘
//
// Every child slot is annotated with the first entry of its subtree, so a
// lookup binary-searches each level without descending speculatively.
// A full node is never modified again, which makes appends amortized O(1).
//
// Keys must be appended in Key order (J ascending, then I descending). Append
// rejects keys that would break that order. Lookups of absent keys return
// DefaultLength: an index pair with no recorded extension is a two-term
// progression.
//
// Array is not safe for concurrent use.
package mla
