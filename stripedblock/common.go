// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package stripedblock analyzes striped block groups. A block group is a
// logical contiguous byte range cut into fixed-size cells and dealt
// round-robin across data units, with parity units computed per stripe. The
// functions here map the group onto the per-unit internal blocks that store
// it: which units are located, how many bytes each one holds, and where a
// byte of an internal block lands in the group. Pure layout math over
// caller-supplied metadata; no buffer data is touched and nothing is
// retained.
package stripedblock

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the default stripedblock errs class.
	Error = errs.Class("stripedblock")

	// ErrInvalidStripeGeometry is the class of errors returned when the
	// stripe size derived from the cell size and data unit count is not
	// positive.
	ErrInvalidStripeGeometry = errs.Class("invalid stripe geometry")
)
