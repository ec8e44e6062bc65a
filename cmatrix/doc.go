// SPDX-License-Identifier: MIT
// Package cmatrix provides the dense complex matrix primitives used by
// the montrealer evaluators: a row-major complex128 Dense type with
// checked accessors, centralized validators with an explicit numeric
// policy, deterministic fixture builders (all-ones, random unitaries,
// Hermitized/symmetrized blocks, adjacency assemblies), and a bridge to
// gonum's mat.CDense for interop with the wider linear-algebra
// ecosystem.
//
// Design rules:
//
//   - Shape invariants are rejected at the boundary: constructors refuse
//     ragged or empty input, evaluator-facing validators refuse
//     non-square, odd-dimension or asymmetric matrices before any
//     algorithm runs.
//   - Public indexers return sentinel errors, never panic; hot paths use
//     Raw() to read the backing slice directly.
//   - Randomized builders take an explicit math/rand/v2 Source, so every
//     fixture is reproducible from its seed.
package cmatrix
