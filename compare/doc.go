// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package compare turns two survey rows into the three dashboard views.

# Views

	Overview(store, pair)                    national numbers, top regions, difference
	Comparison(store, pair, view)            per-region values for both candidates
	Advantage(store, pair, view, palette)    per-region signed difference

Every function is pure: it reads the immutable store and returns a fresh
value. Nothing is cached between calls.

# Ties

A difference of exactly zero favors the first candidate of the pair, in the
overview and in the advantage series alike.

# Region Order

Comparison and Advantage emit points in the order of the selected region
list (major or detailed). Points are never re-sorted.
*/
package compare
