// SPDX-License-Identifier: MIT
// Package: neuromotif/loader
//
// options.go - functional options and the connected-cell predicates.

package loader

import (
	"fmt"
	"strconv"
	"strings"
)

// ZeroPolicy decides which cell strings count as "no connection".
type ZeroPolicy int

const (
	// ZeroLiteral treats only "", "0" and "0.0" as unconnected. Any other
	// spelling of zero ("0.00", "-0", "0e0") is a connection whose weight
	// leaves polarity unchanged. This is the historical behavior and the default.
	ZeroLiteral ZeroPolicy = iota

	// ZeroNumeric treats "" and every string that parses to ±0 as unconnected.
	ZeroNumeric
)

// String returns the config spelling of the policy.
func (p ZeroPolicy) String() string {
	if p == ZeroNumeric {
		return "numeric"
	}

	return "literal"
}

// ParseZeroPolicy maps "literal" / "numeric" (case-insensitive) to a ZeroPolicy.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return ZeroLiteral, nil
	case "numeric":
		return ZeroNumeric, nil
	default:
		return ZeroLiteral, fmt.Errorf("loader: unknown zero policy %q", s)
	}
}

// connected reports whether field denotes an edge under policy p.
// For ZeroNumeric an unparsable field counts as connected so that the
// caller's parse step reports it as ErrBadWeight.
func (p ZeroPolicy) connected(field string) bool {
	if field == "" {
		return false
	}
	if p == ZeroNumeric {
		w, err := strconv.ParseFloat(field, 64)
		return err != nil || w != 0
	}

	return field != "0" && field != "0.0"
}

// Stats reports what a Load call consumed.
type Stats struct {
	Rows          int // rows read
	Edges         int // edges added to the graph
	SkippedLoops  int // connected diagonal cells (polarity only, no edge)
	ZeroConnected int // connected cells whose numeric weight is zero
}

// Options holds configurable parameters for Load.
type Options struct {
	// ZeroPolicy selects the connected-cell predicate. Default ZeroLiteral.
	ZeroPolicy ZeroPolicy

	// Stats, if non-nil, is filled in on success.
	Stats *Stats
}

// Option configures Load.
type Option func(*Options)

// DefaultOptions returns Options with ZeroLiteral and no stats sink.
func DefaultOptions() Options {
	return Options{ZeroPolicy: ZeroLiteral}
}

// WithZeroPolicy selects the connected-cell predicate.
func WithZeroPolicy(p ZeroPolicy) Option {
	return func(o *Options) {
		o.ZeroPolicy = p
	}
}

// WithStats installs a Stats sink filled in after a successful load.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
