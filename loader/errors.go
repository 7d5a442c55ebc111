// SPDX-License-Identifier: MIT
// Package: neuromotif/loader
//
// errors.go - sentinel errors for the loader package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach the offending row/node/field with %w wrapping.
//   • Every error is fatal for the load: no partial graph is returned.

package loader

import "errors"

// ErrRaggedRow indicates a row whose column count differs from the width
// established by the first row.
var ErrRaggedRow = errors.New("loader: row has wrong number of columns")

// ErrNonSquare indicates the row count does not equal the column count.
var ErrNonSquare = errors.New("loader: matrix is not square")

// ErrBadWeight indicates a connected cell that is not a finite number.
var ErrBadWeight = errors.New("loader: cannot parse connection weight")

// ErrNilReader indicates a nil RowReader was passed to Load.
var ErrNilReader = errors.New("loader: row reader is nil")

// ErrRead wraps a failure of the underlying row source.
var ErrRead = errors.New("loader: reading row")
