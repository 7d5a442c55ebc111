// SPDX-License-Identifier: MIT
// Package neuromotif is an in-memory census of connectivity motifs in
// neuronal networks: chains, convergent and divergent pairs, and reciprocal
// pairs, optionally split by the excitatory/inhibitory polarity of the
// neurons involved.
//
// What is inside:
//
//	core/     - index-addressed directed graph with ordered adjacency and Dale's Law polarity
//	loader/   - square weight matrix (CSV rows) → core.Graph
//	motif/    - motif shapes, the enumerator, Basic and ByPolarity classifiers
//	census/   - ordered tallies, sequential and sharded runs, text/table reports
//	source/   - local file, stdin and S3 matrix sources
//	builder/  - seeded synthetic connectomes and fixture topologies
//	config/   - defaults → YAML → .env / NEUROMOTIF_* env → flags
//	logger/   - zap diagnostics on stderr
//	cli/      - cobra commands; cmd/neuromotif is the binary
//
// Quick example (rows = source neuron, columns = target):
//
//	0,1,0
//	0,0,-1     →   chain: 0 → 1 → 2 (Chain)
//	0,0,0
//
// Node 2 has no output, so its polarity stays undetermined and a ByPolarity
// census of this matrix fails; the Basic census reports "Chain: 1".
//
//	go install github.com/katalvlaran/neuromotif/cmd/neuromotif@latest
package neuromotif
