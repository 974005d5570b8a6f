// Package legality decides whether a candidate qualitative state is physically
// consistent with a quantity.Model.
//
// A Checker runs four stages in a fixed order and stops at the first failure:
//
//  1. Bounds          — magnitude index + derivative stays inside the landmark range,
//     and the derivative belongs to the declared derivative space.
//  2. Correspondences — every value correspondence holds in both directions.
//  3. Influences      — each influenced quantity's derivative lies in the range
//     spanned by the signed contributions of its influences.
//  4. Proportionality — proportional pairs move their derivatives in lockstep.
//
// Each stage is exported on its own so callers and tests can exercise it in
// isolation; Check reports which stage rejected a state.
//
// A Checker is immutable after New and safe for concurrent use.
package legality
