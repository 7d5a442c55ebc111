// SPDX-License-Identifier: MIT
// Package motif - category enums and classifiers.
//
// Two mutually exclusive schemes:
//   - Basic:      the shape tag alone (4 categories).
//   - ByPolarity: shape refined by the polarity of its anchor node(s) (12 categories).
//
// Ordinals are dense, start at 0 and follow definition order; reports print
// categories in ordinal order.
package motif

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/neuromotif/core"
)

// Category is a classification bucket with a dense ordinal.
type Category interface {
	Ordinal() int
	String() string
}

// Mode selects the classification scheme.
type Mode int

const (
	// ModeBasic classifies by shape only.
	ModeBasic Mode = iota
	// ModeByPolarity classifies by shape and anchor polarity.
	ModeByPolarity
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	if m == ModeByPolarity {
		return "polarity"
	}

	return "basic"
}

// ParseMode maps "basic" / "polarity" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return ModeBasic, nil
	case "polarity", "by-polarity", "category":
		return ModeByPolarity, nil
	default:
		return ModeBasic, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// BasicCategory is the shape-only scheme.
type BasicCategory int

const (
	BasicChain BasicCategory = iota
	BasicConvergent
	BasicDivergent
	BasicReciprocal
)

var basicNames = [...]string{"Chain", "Convergent", "Divergent", "Reciprocal"}

// Ordinal implements Category.
func (c BasicCategory) Ordinal() int { return int(c) }

// String implements Category.
func (c BasicCategory) String() string {
	if c < 0 || int(c) >= len(basicNames) {
		return fmt.Sprintf("BasicCategory(%d)", int(c))
	}

	return basicNames[c]
}

// PolarityCategory is the polarity-refined scheme.
type PolarityCategory int

const (
	ChainEE PolarityCategory = iota
	ChainEI
	ChainIE
	ChainII
	ConvergentEE
	ConvergentII
	ConvergentEI
	DivergentE
	DivergentI
	ReciprocalEE
	ReciprocalII
	ReciprocalEI
)

var polarityNames = [...]string{
	"ChainEE", "ChainEI", "ChainIE", "ChainII",
	"ConvergentEE", "ConvergentII", "ConvergentEI",
	"DivergentE", "DivergentI",
	"ReciprocalEE", "ReciprocalII", "ReciprocalEI",
}

// Ordinal implements Category.
func (c PolarityCategory) Ordinal() int { return int(c) }

// String implements Category.
func (c PolarityCategory) String() string {
	if c < 0 || int(c) >= len(polarityNames) {
		return fmt.Sprintf("PolarityCategory(%d)", int(c))
	}

	return polarityNames[c]
}

// BasicCategories lists the Basic scheme in ordinal order.
func BasicCategories() []Category {
	out := make([]Category, len(basicNames))
	for i := range basicNames {
		out[i] = BasicCategory(i)
	}

	return out
}

// PolarityCategories lists the ByPolarity scheme in ordinal order.
func PolarityCategories() []Category {
	out := make([]Category, len(polarityNames))
	for i := range polarityNames {
		out[i] = PolarityCategory(i)
	}

	return out
}

// Classifier maps a Shape to its Category.
type Classifier interface {
	// Classify returns the category of s, or an error for shapes that cannot be
	// classified (unknown kind, undetermined anchor polarity).
	Classify(s Shape) (Category, error)

	// Categories lists every category of the scheme in ordinal order.
	Categories() []Category

	// Mode reports the scheme.
	Mode() Mode
}

// NewClassifier returns the classifier for mode; g is needed for ModeByPolarity only.
func NewClassifier(mode Mode, g *core.Graph) (Classifier, error) {
	switch mode {
	case ModeBasic:
		return Basic(), nil
	case ModeByPolarity:
		return ByPolarity(g)
	default:
		return nil, fmt.Errorf("NewClassifier(%d): %w", int(mode), ErrUnknownMode)
	}
}

// basicClassifier needs no graph.
type basicClassifier struct{}

// Basic returns the shape-only classifier.
func Basic() Classifier { return basicClassifier{} }

func (basicClassifier) Classify(s Shape) (Category, error) {
	switch s.Kind {
	case Chain:
		return BasicChain, nil
	case Convergent:
		return BasicConvergent, nil
	case Divergent:
		return BasicDivergent, nil
	case Reciprocal:
		return BasicReciprocal, nil
	default:
		return nil, fmt.Errorf("Classify(%s): %w", s, ErrUnknownShape)
	}
}

func (basicClassifier) Categories() []Category { return BasicCategories() }

func (basicClassifier) Mode() Mode { return ModeBasic }

// polarityClassifier resolves anchors against the graph's inferred polarities.
type polarityClassifier struct {
	g *core.Graph
}

// ByPolarity returns the polarity-refined classifier for shapes of g.
//
// Anchors inspected per shape:
//
//	Chain(a,_,c)      a (source), c (sink)   EE / EI / IE / II (ordered)
//	Convergent(a,_,c) a, c                   EE / EI / II      (unordered)
//	Divergent(_,b,_)  b (shared source)      E / I
//	Reciprocal(a,b)   a, b                   EE / EI / II      (unordered)
func ByPolarity(g *core.Graph) (Classifier, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return polarityClassifier{g: g}, nil
}

func (c polarityClassifier) Classify(s Shape) (Category, error) {
	switch s.Kind {
	case Chain:
		pa, pc, err := c.pair(s, s.A, s.C)
		if err != nil {
			return nil, err
		}
		switch {
		case pa == core.Excitatory && pc == core.Excitatory:
			return ChainEE, nil
		case pa == core.Excitatory:
			return ChainEI, nil
		case pc == core.Excitatory:
			return ChainIE, nil
		default:
			return ChainII, nil
		}

	case Convergent:
		pa, pc, err := c.pair(s, s.A, s.C)
		if err != nil {
			return nil, err
		}
		switch {
		case pa != pc:
			return ConvergentEI, nil
		case pa == core.Excitatory:
			return ConvergentEE, nil
		default:
			return ConvergentII, nil
		}

	case Divergent:
		pb, err := c.anchor(s, s.B)
		if err != nil {
			return nil, err
		}
		if pb == core.Excitatory {
			return DivergentE, nil
		}
		return DivergentI, nil

	case Reciprocal:
		pa, pb, err := c.pair(s, s.A, s.B)
		if err != nil {
			return nil, err
		}
		switch {
		case pa != pb:
			return ReciprocalEI, nil
		case pa == core.Excitatory:
			return ReciprocalEE, nil
		default:
			return ReciprocalII, nil
		}
	}

	return nil, fmt.Errorf("Classify(%s): %w", s, ErrUnknownShape)
}

func (polarityClassifier) Categories() []Category { return PolarityCategories() }

func (polarityClassifier) Mode() Mode { return ModeByPolarity }

// anchor returns the polarity of node i, which must be determined.
func (c polarityClassifier) anchor(s Shape, i int) (core.Polarity, error) {
	p, err := c.g.Polarity(i)
	if err != nil {
		return core.Undetermined, fmt.Errorf("Classify(%s): node %d: %w", s, i, err)
	}
	if p == core.Undetermined {
		return core.Undetermined, fmt.Errorf("Classify(%s): node %d: %w", s, i, ErrUndeterminedPolarity)
	}

	return p, nil
}

// pair resolves two anchors; after it returns nil both are E or I.
func (c polarityClassifier) pair(s Shape, i, j int) (core.Polarity, core.Polarity, error) {
	pi, err := c.anchor(s, i)
	if err != nil {
		return core.Undetermined, core.Undetermined, err
	}
	pj, err := c.anchor(s, j)
	if err != nil {
		return core.Undetermined, core.Undetermined, err
	}

	return pi, pj, nil
}
