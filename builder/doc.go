// SPDX-License-Identifier: MIT
// Package builder generates synthetic connectivity matrices for benchmarks,
// fixtures and the `generate` command, using the same “functional‐options”
// building blocks throughout.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMatrix(n, bopts, cons...): allocate, draw polarities, apply constructors.
//     – RandomConnectome(n, p, opts...): random sparse matrix as string records.
//   - Constructors:
//     – RandomSparse(p):  independent directed connections, no diagonal.
//     – Polarities(...):  pin which nodes are inhibitory.
//     – Edges(...):       explicit connections.
//     – Star(hub), Ring(), Wheel(): fixed topologies with known motif counts.
//   - Configuration primitives:
//     – BuilderOption:    WithSeed, WithRand, WithWeightFn, WithInhibitoryFraction, WithFormat.
//   - Magnitude distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, LogNormalWeightFn.
//   - Output:
//     – Matrix.Records(), Matrix.WriteCSV(w), WriteCSV(w, records).
//
// Guarantees:
//
//   - Dale's Law by construction: all outgoing weights of a node share its sign.
//   - Determinism: a fixed seed and constructor order give identical matrices.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrOptionViolation, ErrConstructFailed).
//
// Complexity: BuildMatrix and RandomSparse are O(n²) time and memory.
package builder
