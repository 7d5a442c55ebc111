// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by connectome builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMatrix is the canonical name for the BuildMatrix orchestrator.
	MethodBuildMatrix = "BuildMatrix"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodEdges is the canonical name for the Edges constructor.
	MethodEdges = "Edges"
	// MethodPolarities is the canonical name for the Polarities constructor.
	MethodPolarities = "Polarities"
)

//-----------------------------------------------------------------------------
// Domains
//-----------------------------------------------------------------------------

const (
	// MinNodes is the smallest connectome BuildMatrix accepts.
	MinNodes = 1

	// MinProbability and MaxProbability bound connection probabilities.
	MinProbability = 0.0
	MaxProbability = 1.0

	// DefaultInhibitoryFraction is the share of inhibitory neurons drawn when
	// no WithInhibitoryFraction option is given (the classic cortical 80/20 split).
	DefaultInhibitoryFraction = 0.2
)
