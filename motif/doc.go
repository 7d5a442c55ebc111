// SPDX-License-Identifier: MIT
// Package motif implements the motif census over a core.Graph: enumeration of
// canonical two- and three-node connection patterns and their classification.
//
// What:
//
//   - Enumerate(g, fn): streams every occurrence of
//     Chain a→b→c, Convergent a→b←c, Divergent a←b→c and Reciprocal a↔b
//     to fn, exactly once, in a fixed order (anchor index ascending; per anchor
//     Convergent, Divergent, Chain, Reciprocal).
//   - Classifiers: Basic() (shape only, 4 categories) and ByPolarity(g)
//     (shape × anchor polarity, 12 categories).
//
// Occurrence model:
//
//   - Motifs are defined by node identity, not isomorphism class: the same
//     pattern anchored at different nodes is counted once per anchor.
//   - Convergent/Divergent pairs are unordered; the endpoint discovered first
//     is A. Reciprocal pairs are emitted from the lower index only.
//   - Chains never close on themselves: a→b→a is a Reciprocal, not a Chain.
//
// Complexity:
//
//   - Enumerate: Time O(Σ deg_in² + deg_out² + deg_in·deg_out), Memory O(1).
//   - Classify:  O(1).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrBadRange             EnumerateRange bounds invalid
//   - ErrUndeterminedPolarity ByPolarity reached an anchor without polarity
//   - ErrUnknownShape         Shape.Kind outside the four kinds
//   - ErrUnknownMode          ParseMode / NewClassifier got an unknown mode
//   - handler errors          returned unchanged by Enumerate
package motif
